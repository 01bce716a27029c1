// Package jobs provides scheduled background tasks for the ordering system.
//
// The only job today is AutoDispatchJob, a cron-based sweep (every second)
// that offers ready orders to registered couriers: for each courier it runs
// the dispatch selection and, when an order is picked, starts the delivery to
// the customer's registered address. Expected business misses, such as no
// ready order or an unaffiliated courier, are not treated as failures.
package jobs

import (
	"fmt"
	"log/slog"

	"myfood/internal/core/application/usecases/commands"
	"myfood/internal/core/application/usecases/queries"
	"myfood/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	autoDispatchJob *AutoDispatchJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	selectHandler queries.SelectOrderForCourierQueryHandler,
	deliveryHandler commands.CreateDeliveryCommandHandler,
	registry ports.Registry,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		autoDispatchJob: NewAutoDispatchJob(selectHandler, deliveryHandler, registry, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.autoDispatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start auto dispatch job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.autoDispatchJob.Stop()
}
