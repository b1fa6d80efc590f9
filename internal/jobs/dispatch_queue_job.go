package jobs

import (
	"context"

	"github.com/robfig/cron/v3"

	"pedidos/internal/core/application/usecases/queries"
	"pedidos/internal/pkg/logger"
)

// DispatchQueueJob reports the number of orders waiting for a driver.
// Runs every minute so operators can watch the queue depth in the logs.
type DispatchQueueJob struct {
	handler queries.GetUnassignedOrdersQueryHandler
	cron    *cron.Cron
	log     *logger.Logger
}

// NewDispatchQueueJob creates the dispatch queue reporting job.
func NewDispatchQueueJob(handler queries.GetUnassignedOrdersQueryHandler, log *logger.Logger) *DispatchQueueJob {
	return &DispatchQueueJob{
		handler: handler,
		cron:    cron.New(),
		log:     log,
	}
}

// Start begins the dispatch queue job, running every minute.
func (j *DispatchQueueJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := j.log.WithField(context.Background(), "component", "dispatch_queue_job")
		query := queries.NewGetUnassignedOrdersQuery()

		orders, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.log.Error(ctx, "dispatch queue scan failed", err)
			return
		}

		ctx = j.log.WithField(ctx, "waiting_orders", len(orders))
		j.log.Info(ctx, "dispatch queue scanned")
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.log.Info(context.Background(), "dispatch queue job started (running every minute)")
	return nil
}

// Stop stops the dispatch queue job.
func (j *DispatchQueueJob) Stop() {
	j.cron.Stop()
	j.log.Info(context.Background(), "dispatch queue job stopped")
}
