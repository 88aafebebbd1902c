// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the service.
//
// # Available Jobs
//
// 1. DriverAssignmentJob - Runs every 15 seconds to dispatch free drivers to ready orders
// 2. MenuCacheWarmJob - Runs every minute to keep the public menu warm in the cache
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(assignDriversHandler, getMenuHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Assignment job ignores expected business outcomes (no ready orders, no free drivers)
// - Cache warm job logs all errors as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
