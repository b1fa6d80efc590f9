package jobs

import (
	"fmt"

	"pedidos/internal/core/application/usecases/queries"
	"pedidos/internal/pkg/logger"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dispatchQueueJob   *DispatchQueueJob
	overdueLoanScanJob *OverdueLoanScanJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	unassignedOrdersHandler queries.GetUnassignedOrdersQueryHandler,
	overdueLoansHandler queries.GetOverdueLoansQueryHandler,
	log *logger.Logger,
) *JobManager {
	return &JobManager{
		dispatchQueueJob:   NewDispatchQueueJob(unassignedOrdersHandler, log),
		overdueLoanScanJob: NewOverdueLoanScanJob(overdueLoansHandler, log),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dispatchQueueJob.Start(); err != nil {
		return fmt.Errorf("failed to start dispatch queue job: %w", err)
	}

	if err := jm.overdueLoanScanJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.dispatchQueueJob.Stop()
		return fmt.Errorf("failed to start overdue loan scan job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueLoanScanJob.Stop()
	jm.dispatchQueueJob.Stop()
}
