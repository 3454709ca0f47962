package jobs

import (
	"fmt"
	"log/slog"

	"riderhub/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderSyncJob      *OrderSyncJob
	sessionRefreshJob *SessionRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers and cron schedules as dependencies.
func NewJobManager(
	syncOrdersHandler commands.SyncOrdersCommandHandler,
	refreshSessionHandler commands.RefreshSessionCommandHandler,
	syncSchedule string,
	refreshSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderSyncJob:      NewOrderSyncJob(syncOrdersHandler, syncSchedule, logger),
		sessionRefreshJob: NewSessionRefreshJob(refreshSessionHandler, refreshSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderSyncJob.Start(); err != nil {
		return fmt.Errorf("failed to start order sync job: %w", err)
	}

	if err := jm.sessionRefreshJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.orderSyncJob.Stop()
		return fmt.Errorf("failed to start session refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.sessionRefreshJob.Stop()
	jm.orderSyncJob.Stop()
}
