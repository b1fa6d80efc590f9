// Package jobs provides scheduled background tasks for the order system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// for periodic operational reporting.
//
// # Available Jobs
//
// 1. DispatchQueueJob - Runs every minute to report how many orders are waiting for a driver
// 2. OverdueLoanScanJob - Runs daily to report loans out past their due date
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(unassignedOrdersHandler, overdueLoansHandler, log)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Both jobs are read-only: they surface queue depth and overdue counts in the
// logs for operators, and never mutate state. Query failures are logged and
// the next tick retries from scratch. Failed job starts will stop any already
// running jobs.
package jobs
