package main

import (
	"fmt"
	"log/slog"
	"os"

	"riderhub/cmd"
	httpin "riderhub/internal/adapters/in/http"
	"riderhub/internal/adapters/out/postgres/accountrepo"
	"riderhub/internal/adapters/out/postgres/orderrepo"
	"riderhub/internal/adapters/out/postgres/secretstore"
	"riderhub/internal/adapters/out/postgres/ticketrepo"
	"riderhub/internal/adapters/out/postgres/walletrepo"
	"riderhub/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	root, err := cmd.NewCompositionRoot(configs, db)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	jobManager := jobs.NewJobManager(
		root.CreateSyncOrdersCommandHandler(),
		root.CreateRefreshSessionCommandHandler(),
		configs.OrderSyncSchedule,
		configs.SessionRefreshSchedule,
		slog.New(slog.NewTextHandler(os.Stdout, nil)),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		BackendAPIURL:          goDotEnvVariable("BACKEND_API_URL"),
		MinimumPayout:          goDotEnvVariable("MINIMUM_PAYOUT"),
		OrderSyncSchedule:      goDotEnvVariable("ORDER_SYNC_SCHEDULE"),
		SessionRefreshSchedule: goDotEnvVariable("SESSION_REFRESH_SCHEDULE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&walletrepo.WalletDTO{},
		&walletrepo.TransactionDTO{},
		&ticketrepo.TicketDTO{},
		&ticketrepo.ResponseDTO{},
		&accountrepo.ProfileDTO{},
		&accountrepo.DocumentDTO{},
		&accountrepo.RatingDTO{},
		&secretstore.SessionDTO{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	server := httpin.NewServer(httpin.Handlers{
		Login:           root.CreateLoginCommandHandler(),
		SendOTP:         root.CreateSendOTPCommandHandler(),
		LoginWithOTP:    root.CreateLoginWithOTPCommandHandler(),
		RefreshSession:  root.CreateRefreshSessionCommandHandler(),
		Logout:          root.CreateLogoutCommandHandler(),
		AcceptOrder:     root.CreateAcceptOrderCommandHandler(),
		RejectOrder:     root.CreateRejectOrderCommandHandler(),
		AdvanceOrder:    root.CreateAdvanceOrderCommandHandler(),
		SyncOrders:      root.CreateSyncOrdersCommandHandler(),
		PostEarning:     root.CreatePostEarningCommandHandler(),
		RequestPayout:   root.CreateRequestPayoutCommandHandler(),
		SettlePayout:    root.CreateSettlePayoutCommandHandler(),
		CreateTicket:    root.CreateCreateTicketCommandHandler(),
		ReplyTicket:     root.CreateReplyTicketCommandHandler(),
		UpdateProfile:   root.CreateUpdateProfileCommandHandler(),
		SetAvailability: root.CreateSetAvailabilityCommandHandler(),
		UploadDocument:  root.CreateUploadDocumentCommandHandler(),
		SubmitRating:    root.CreateSubmitRatingCommandHandler(),

		ActiveOrders:    root.CreateGetActiveOrdersQueryHandler(),
		OrderHistory:    root.CreateGetOrderHistoryQueryHandler(),
		Wallet:          root.CreateGetWalletQueryHandler(),
		Transactions:    root.CreateGetTransactionsQueryHandler(),
		EarningsSummary: root.CreateGetEarningsSummaryQueryHandler(),
		Tickets:         root.CreateGetTicketsQueryHandler(),
		Profile:         root.CreateGetProfileQueryHandler(),
	})

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
