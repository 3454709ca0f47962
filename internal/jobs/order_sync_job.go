package jobs

import (
	"context"
	"errors"
	"log/slog"

	"riderhub/internal/core/application/usecases/commands"
	"riderhub/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// OrderSyncJob periodically pulls backend-assigned orders into the local
// store so the partner sees new work without a manual refresh.
type OrderSyncJob struct {
	handler  commands.SyncOrdersCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderSyncJob creates a job that runs SyncOrdersCommandHandler on the
// given cron schedule (with seconds field).
func NewOrderSyncJob(handler commands.SyncOrdersCommandHandler, schedule string, logger *slog.Logger) *OrderSyncJob {
	return &OrderSyncJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_sync_job"),
	}
}

// Start begins the order sync job.
func (j *OrderSyncJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewSyncOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Not being signed in yet is expected, not a failure
			if !errors.Is(err, ports.ErrSessionNotFound) {
				j.logger.ErrorContext(ctx, "Order sync job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order sync job started", "schedule", j.schedule)
	return nil
}

// Stop stops the order sync job.
func (j *OrderSyncJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order sync job stopped")
}
