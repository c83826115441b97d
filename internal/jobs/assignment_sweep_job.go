package jobs

import (
	"context"
	"errors"
	"log/slog"

	"github.com/robfig/cron/v3"

	"fulfillment/internal/core/application/usecases/commands"
)

// AssignmentSweepJob periodically re-runs courier dispatch for paid orders
// that did not get a courier at payment time.
type AssignmentSweepJob struct {
	handler commands.AssignCouriersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAssignmentSweepJob creates a job that sweeps unassigned paid orders
// every thirty seconds.
func NewAssignmentSweepJob(handler commands.AssignCouriersCommandHandler, logger *slog.Logger) *AssignmentSweepJob {
	return &AssignmentSweepJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "assignment_sweep_job"),
	}
}

// Start schedules the sweep.
func (j *AssignmentSweepJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAssignCouriersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty backlog and an empty courier pool are expected outcomes.
			if !errors.Is(err, commands.ErrNoPendingAssignments) &&
				!errors.Is(err, commands.ErrNoCouriersAvailable) {
				j.logger.ErrorContext(ctx, "Assignment sweep failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Assignment sweep started (running every thirty seconds)")
	return nil
}

// Stop stops the sweep.
func (j *AssignmentSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Assignment sweep stopped")
}
