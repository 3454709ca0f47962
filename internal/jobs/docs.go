// Package jobs provides scheduled background tasks for the partner app.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required while a partner is on shift.
//
// # Available Jobs
//
// 1. OrderSyncJob - Pulls backend-assigned orders into the local store
// 2. SessionRefreshJob - Rotates the stored access token before it expires
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(syncHandler, refreshHandler, syncSchedule, refreshSchedule, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Both jobs take a six-field cron expression (seconds included) supplied
// through configuration, so the polling cadence can be tuned per deployment.
//
// # Error Handling
//
// - Both jobs skip runs while no session is stored (partner not signed in)
// - Other errors are logged as they indicate connectivity or storage issues
// - Failed job starts will stop any already running jobs
package jobs
