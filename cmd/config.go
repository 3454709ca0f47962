package cmd

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	BackendAPIURL          string
	MinimumPayout          string
	OrderSyncSchedule      string
	SessionRefreshSchedule string
}
