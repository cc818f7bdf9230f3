package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ResourceReconciliationJob periodically realigns resource availability with
// the set of non-terminal orders. It repairs drift left by out-of-band data
// changes: a resource claimed by an active order is marked busy, everything
// else active is marked available.
type ResourceReconciliationJob struct {
	handler commands.ReconcileResourcesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewResourceReconciliationJob creates a new job for reconciling resource
// availability. Uses ReconcileResourcesCommandHandler to repair drift every minute.
func NewResourceReconciliationJob(
	handler commands.ReconcileResourcesCommandHandler,
	logger *slog.Logger,
) *ResourceReconciliationJob {
	return &ResourceReconciliationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "resource_reconciliation_job"),
	}
}

// Start begins the reconciliation job to run at the start of every minute.
func (j *ResourceReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewReconcileResourcesCommand()

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Resource reconciliation job failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Resource reconciliation job started (running every minute)")
	return nil
}

// Stop stops the reconciliation job.
func (j *ResourceReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Resource reconciliation job stopped")
}
