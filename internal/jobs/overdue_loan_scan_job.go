package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"pedidos/internal/core/application/usecases/queries"
	"pedidos/internal/pkg/logger"
)

// OverdueLoanScanJob reports loans that are out past their due date.
// Runs once a day in the early morning; overdue status is derived at scan
// time, so nothing is ever written back.
type OverdueLoanScanJob struct {
	handler queries.GetOverdueLoansQueryHandler
	cron    *cron.Cron
	log     *logger.Logger
}

// NewOverdueLoanScanJob creates the daily overdue loan scan.
func NewOverdueLoanScanJob(handler queries.GetOverdueLoansQueryHandler, log *logger.Logger) *OverdueLoanScanJob {
	return &OverdueLoanScanJob{
		handler: handler,
		cron:    cron.New(),
		log:     log,
	}
}

// Start begins the overdue loan scan, running daily at 06:00.
func (j *OverdueLoanScanJob) Start() error {
	_, err := j.cron.AddFunc("0 6 * * *", func() {
		ctx := j.log.WithField(context.Background(), "component", "overdue_loan_scan_job")

		query, err := queries.NewGetOverdueLoansQuery(time.Now())
		if err != nil {
			j.log.Error(ctx, "overdue loan scan failed to build query", err)
			return
		}

		loans, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.log.Error(ctx, "overdue loan scan failed", err)
			return
		}

		ctx = j.log.WithField(ctx, "overdue_loans", len(loans))
		j.log.Info(ctx, "overdue loan scan finished")
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.log.Info(context.Background(), "overdue loan scan job started (running daily)")
	return nil
}

// Stop stops the overdue loan scan job.
func (j *OverdueLoanScanJob) Stop() {
	j.cron.Stop()
	j.log.Info(context.Background(), "overdue loan scan job stopped")
}
