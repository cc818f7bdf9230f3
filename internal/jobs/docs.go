// Package jobs provides scheduled background tasks for the logistics system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the back office.
//
// # Available Jobs
//
// 1. ResourceReconciliationJob - Runs every minute to realign driver, truck,
// and trailer availability with the set of non-terminal orders.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(reconcileHandler, logger)
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
// The reconciliation job uses the cron expression "0 * * * * *" which means
// it runs at the start of every minute. Availability drift only appears after
// out-of-band data changes, so a minute of staleness is acceptable.
//
// # Error Handling
//
// Reconciliation failures are logged and retried on the next tick; a single
// failed run leaves the previous availability state in place.
package jobs
