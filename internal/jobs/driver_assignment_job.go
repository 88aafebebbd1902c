package jobs

import (
	"context"
	"errors"
	"log/slog"

	"foodorder/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DriverAssignmentJob periodically dispatches free drivers to ready orders.
// Runs every 15 seconds so an order never waits long once the kitchen marks
// it ready.
type DriverAssignmentJob struct {
	handler commands.AssignDriversCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDriverAssignmentJob creates the auto-dispatch job.
func NewDriverAssignmentJob(handler commands.AssignDriversCommandHandler, logger *slog.Logger) *DriverAssignmentJob {
	return &DriverAssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "driver_assignment_job"),
	}
}

// Start schedules the job to run every 15 seconds.
func (j *DriverAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("*/15 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAssignDriversCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// No ready orders or no free drivers are quiet outcomes,
			// not failures.
			if !errors.Is(err, commands.ErrNoReadyOrderFound) && !errors.Is(err, commands.ErrNoFreeDriversFound) {
				j.logger.ErrorContext(ctx, "Driver assignment job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Driver assignment job started (running every 15 seconds)")
	return nil
}

// Stop stops the driver assignment job.
func (j *DriverAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Driver assignment job stopped")
}
