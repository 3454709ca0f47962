package jobs

import (
	"context"
	"errors"
	"log/slog"

	"riderhub/internal/core/application/usecases/commands"
	"riderhub/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// SessionRefreshJob rotates the stored access token before it expires so
// authenticated backend calls keep working during long shifts.
type SessionRefreshJob struct {
	handler  commands.RefreshSessionCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSessionRefreshJob creates a job that runs RefreshSessionCommandHandler
// on the given cron schedule (with seconds field).
func NewSessionRefreshJob(handler commands.RefreshSessionCommandHandler, schedule string, logger *slog.Logger) *SessionRefreshJob {
	return &SessionRefreshJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "session_refresh_job"),
	}
}

// Start begins the session refresh job.
func (j *SessionRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewRefreshSessionCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Not being signed in yet is expected, not a failure
			if !errors.Is(err, ports.ErrSessionNotFound) {
				j.logger.ErrorContext(ctx, "Session refresh job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session refresh job started", "schedule", j.schedule)
	return nil
}

// Stop stops the session refresh job.
func (j *SessionRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Session refresh job stopped")
}
