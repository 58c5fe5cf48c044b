package jobs

import (
	"context"
	"log/slog"
	"time"

	"bookstore/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AbandonedOrderJob periodically deletes carts the customer walked away
// from. Runs hourly and removes in_progress orders untouched for longer
// than the configured retention period.
type AbandonedOrderJob struct {
	handler   commands.PurgeAbandonedOrdersCommandHandler
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewAbandonedOrderJob creates a new job for purging abandoned carts.
// Uses PurgeAbandonedOrdersCommandHandler with the given retention period.
func NewAbandonedOrderJob(
	handler commands.PurgeAbandonedOrdersCommandHandler,
	retention time.Duration,
	logger *slog.Logger,
) *AbandonedOrderJob {
	return &AbandonedOrderJob{
		handler:   handler,
		retention: retention,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "abandoned_order_job"),
	}
}

// Start begins the abandoned order job to run at the top of every hour.
func (j *AbandonedOrderJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewPurgeAbandonedOrdersCommand(j.retention)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Abandoned order job misconfigured", "error", cmdErr)
			return
		}

		purged, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Abandoned order job failed", "error", handleErr)
			return
		}

		if purged > 0 {
			j.logger.InfoContext(ctx, "Purged abandoned orders", "count", purged)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Abandoned order job started (running hourly)")
	return nil
}

// Stop stops the abandoned order job.
func (j *AbandonedOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Abandoned order job stopped")
}
