// Package jobs provides scheduled background tasks for the tracking service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for cold-chain monitoring.
//
// # Available Jobs
//
// 1. ComplianceWatchJob - Periodically scans for active shipments whose current
// temperature is outside the configured safe range and logs them.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(nonCompliantHandler, "*/30 * * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The compliance watch only reads, so a failed scan is logged and retried on
// the next tick; it never mutates shipment state.
package jobs
