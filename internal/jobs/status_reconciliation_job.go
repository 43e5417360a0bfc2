package jobs

import (
	"context"
	"log/slog"

	"parcelrelay/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StatusReconciliationJob periodically fast-forwards parcels whose stored
// status lags behind the state of their order. The write path keeps both in
// sync transactionally, so a non-empty run indicates drift worth logging.
type StatusReconciliationJob struct {
	handler  commands.ReconcileParcelStatusCommandHandler
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewStatusReconciliationJob creates the reconciliation job. The schedule is
// a six-field cron expression with a seconds column.
func NewStatusReconciliationJob(
	handler commands.ReconcileParcelStatusCommandHandler,
	schedule string,
	logger *slog.Logger,
) *StatusReconciliationJob {
	return &StatusReconciliationJob{
		handler:  handler,
		cron:     cron.New(cron.WithSeconds()),
		schedule: schedule,
		logger:   logger.With("component", "status_reconciliation_job"),
	}
}

// Start schedules the reconciliation job.
func (j *StatusReconciliationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewReconcileParcelStatusCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Parcel status reconciliation failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Parcel status reconciliation job started", "schedule", j.schedule)
	return nil
}

// Stop stops the reconciliation job.
func (j *StatusReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Parcel status reconciliation job stopped")
}
