package jobs

import (
	"fmt"
	"log/slog"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	driverAssignmentJob *DriverAssignmentJob
	menuCacheWarmJob    *MenuCacheWarmJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the handlers as dependencies to wire up the job execution.
func NewJobManager(
	assignDriversHandler commands.AssignDriversCommandHandler,
	getMenuHandler queries.GetMenuQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		driverAssignmentJob: NewDriverAssignmentJob(assignDriversHandler, logger),
		menuCacheWarmJob:    NewMenuCacheWarmJob(getMenuHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.driverAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start driver assignment job: %w", err)
	}

	if err := jm.menuCacheWarmJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.driverAssignmentJob.Stop()
		return fmt.Errorf("failed to start menu cache warm job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.menuCacheWarmJob.Stop()
	jm.driverAssignmentJob.Stop()
}
