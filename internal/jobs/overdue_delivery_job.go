package jobs

import (
	"context"
	"log/slog"
	"time"

	"fooddelivery/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OverdueDeliveryJob periodically reports orders whose expected delivery
// time has passed without the courier closing them. Observability only: it
// never mutates order state.
type OverdueDeliveryJob struct {
	handler queries.GetOverdueOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueDeliveryJob creates the overdue delivery watcher.
func NewOverdueDeliveryJob(handler queries.GetOverdueOrdersQueryHandler, logger *slog.Logger) *OverdueDeliveryJob {
	return &OverdueDeliveryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "overdue_delivery_job"),
	}
}

// Start begins the watch, running once a minute.
func (j *OverdueDeliveryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		query, err := queries.NewGetOverdueOrdersQuery(time.Now().UTC())
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue delivery check failed to build query", "error", err)
			return
		}

		overdue, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue delivery check failed", "error", err)
			return
		}

		for _, o := range overdue {
			j.logger.WarnContext(ctx, "Order delivery is overdue",
				"order_id", o.ID.String(),
				"courier_id", courierIDForLog(o),
				"expected_time_of_delivery", o.ExpectedTimeOfDelivery,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue delivery job started (running every minute)")
	return nil
}

// Stop stops the overdue delivery job.
func (j *OverdueDeliveryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue delivery job stopped")
}

func courierIDForLog(o queries.OrderResponse) string {
	if o.CourierID == nil {
		return ""
	}
	return o.CourierID.String()
}
