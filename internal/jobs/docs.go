// Package jobs provides scheduled background tasks for the delivery tracking
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the service.
//
// # Available Jobs
//
// 1. DriverAssignmentJob - Runs every second to assign pending deliveries to
// available drivers
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(assignDriverHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The assignment job uses the cron expression "* * * * * *" which means it
// runs every second. This frequency keeps the pending backlog short without
// requiring a notification channel between delivery creation and assignment.
//
// # Error Handling
//
// The assignment job ignores expected business errors (no pending deliveries,
// no available drivers); everything else is logged as a system issue.
package jobs
