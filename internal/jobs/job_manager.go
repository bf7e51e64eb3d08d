// Package jobs provides the scheduled background tasks of the service,
// built on github.com/robfig/cron/v3. The only job today is the overdue
// delivery watcher; the JobManager keeps a single start/stop surface for
// main as more jobs appear.
package jobs

import (
	"fmt"
	"log/slog"

	"fooddelivery/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	overdueDeliveryJob *OverdueDeliveryJob
}

// NewJobManager creates a job manager wired with the required query handlers.
func NewJobManager(
	overdueOrdersHandler queries.GetOverdueOrdersQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		overdueDeliveryJob: NewOverdueDeliveryJob(overdueOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueDeliveryJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue delivery job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueDeliveryJob.Stop()
}
