package jobs

import (
	"context"
	"errors"
	"log/slog"

	"myfood/internal/core/application/usecases/commands"
	"myfood/internal/core/application/usecases/queries"
	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/core/domain/model/order"
	"myfood/internal/core/domain/services"
	"myfood/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// AutoDispatchJob periodically offers ready orders to registered couriers.
// For every courier it asks the dispatch selection which order to pick up and
// starts the delivery to the customer's registered address.
type AutoDispatchJob struct {
	selectHandler   queries.SelectOrderForCourierQueryHandler
	deliveryHandler commands.CreateDeliveryCommandHandler
	registry        ports.Registry
	cron            *cron.Cron
	logger          *slog.Logger
}

// NewAutoDispatchJob creates a job that dispatches ready orders every second.
func NewAutoDispatchJob(
	selectHandler queries.SelectOrderForCourierQueryHandler,
	deliveryHandler commands.CreateDeliveryCommandHandler,
	registry ports.Registry,
	logger *slog.Logger,
) *AutoDispatchJob {
	return &AutoDispatchJob{
		selectHandler:   selectHandler,
		deliveryHandler: deliveryHandler,
		registry:        registry,
		cron:            cron.New(cron.WithSeconds()),
		logger:          logger.With("component", "auto_dispatch_job"),
	}
}

// Start begins the dispatch job to run every second.
func (j *AutoDispatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		j.dispatchAll(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Auto dispatch job started (running every second)")
	return nil
}

// Stop stops the dispatch job.
func (j *AutoDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Auto dispatch job stopped")
}

func (j *AutoDispatchJob) dispatchAll(ctx context.Context) {
	couriers, err := j.registry.Couriers(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to list couriers", "error", err)
		return
	}

	for _, courier := range couriers {
		if err = j.dispatch(ctx, courier.ID); err != nil && !isExpectedMiss(err) {
			j.logger.ErrorContext(ctx, "Auto dispatch failed",
				"courier_id", int(courier.ID),
				"error", err,
			)
		}
	}
}

func (j *AutoDispatchJob) dispatch(ctx context.Context, courierID kernel.UserID) error {
	query, err := queries.NewSelectOrderForCourierQuery(courierID)
	if err != nil {
		return err
	}

	number, err := j.selectHandler.Handle(ctx, query)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateDeliveryCommand(number, courierID, "")
	if err != nil {
		return err
	}

	if _, err = j.deliveryHandler.Handle(ctx, cmd); err != nil {
		return err
	}

	j.logger.InfoContext(ctx, "Order dispatched",
		"order_number", number.Int(),
		"courier_id", int(courierID),
	)
	return nil
}

// isExpectedMiss filters the business scenarios a dispatch sweep routinely
// hits: nothing ready, an unaffiliated courier, or another courier winning
// the order between selection and binding.
func isExpectedMiss(err error) bool {
	return errors.Is(err, services.ErrNoReadyOrder) ||
		errors.Is(err, queries.ErrCourierHasNoCompany) ||
		errors.Is(err, order.ErrDeliveryInProgress) ||
		errors.Is(err, order.ErrOrderNotReady)
}
