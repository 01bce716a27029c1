package commands

import (
	"context"
	"fmt"
	"slices"

	"myfood/internal/core/domain/model/delivery"
	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/core/domain/model/order"
	"myfood/internal/core/domain/model/registry"
	"myfood/internal/core/ports"
	"myfood/internal/pkg/errs"
)

var (
	// ErrCourierInvalid is returned when the courier identity does not resolve
	// to a registered courier.
	ErrCourierInvalid = fmt.Errorf("%w: courier cannot take this order", errs.ErrValueIsInvalid)

	// ErrCourierNotAffiliated is returned when the courier is registered but
	// does not work for the order's company.
	ErrCourierNotAffiliated = fmt.Errorf("%w: courier is not affiliated with the order's company", errs.ErrNotAuthorized)
)

// CreateDeliveryCommandHandler handles delivery creation. It is the only path
// that moves an order into Delivering: the delivery record and the order
// transition are committed in one transaction.
//
// Example:
//
//	handler := NewCreateDeliveryCommandHandler(uowFactory, registry)
//	cmd, _ := NewCreateDeliveryCommand(orderNumber, courierID, "")
//
//	deliveryID, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrDeliveryInProgress):
//	    // Someone already took this order
//	case errors.Is(err, ErrCourierInvalid):
//	    // Not a registered courier
//	case errors.Is(err, ErrCourierNotAffiliated):
//	    // A courier, but one who does not work for this company
//	}
type CreateDeliveryCommandHandler struct {
	uowFactory UoWFactory
	registry   ports.Registry
}

// NewCreateDeliveryCommandHandler creates a handler for delivery creation.
// Requires a cross-aggregate UoWFactory and a Registry for courier checks.
func NewCreateDeliveryCommandHandler(uowFactory UoWFactory, registry ports.Registry) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
		registry:   registry,
	}
}

// Handle processes the delivery creation command and returns the id assigned
// to the new delivery.
//
// Checks run in a fixed sequence:
//  1. The order must resolve
//  2. A Delivering order fails with order.ErrDeliveryInProgress
//  3. Any state other than Ready fails with order.ErrOrderNotReady
//  4. The courier must resolve to a registered courier (ErrCourierInvalid)
//  5. The courier must be affiliated with the order's company
//     (ErrCourierNotAffiliated)
//
// The delivery id comes from the storage-owned sequence, so a failed creation
// still consumes an id. An empty destination falls back to the ordering
// customer's registered address.
func (h CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) (kernel.DeliveryID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	deliveryRepo := uow.DeliveryRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderNumber())
	if err != nil {
		return 0, err
	}

	if aggregate.Status() == order.Delivering {
		return 0, order.ErrDeliveryInProgress
	}
	if aggregate.Status() != order.Ready {
		return 0, order.ErrOrderNotReady
	}

	courier, err := h.registry.GetUser(ctx, cmd.CourierID())
	if err != nil || courier.Kind != registry.Courier {
		return 0, ErrCourierInvalid
	}

	companies, err := h.registry.CourierCompanies(ctx, cmd.CourierID())
	if err != nil {
		return 0, err
	}
	if !slices.Contains(companies, aggregate.CompanyID()) {
		return 0, ErrCourierNotAffiliated
	}

	destination, err := h.resolveDestination(ctx, cmd.Destination(), aggregate.CustomerID())
	if err != nil {
		return 0, err
	}

	id, err := deliveryRepo.NextID(ctx)
	if err != nil {
		return 0, err
	}

	record, err := delivery.NewDelivery(id, aggregate.Number(), cmd.CourierID(), destination)
	if err != nil {
		return 0, err
	}

	if err = deliveryRepo.Add(ctx, record); err != nil {
		return 0, err
	}

	if err = aggregate.StartDelivery(); err != nil {
		return 0, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}

func (h CreateDeliveryCommandHandler) resolveDestination(
	ctx context.Context,
	requested string,
	customerID kernel.UserID,
) (string, error) {
	if requested != "" {
		return requested, nil
	}

	customer, err := h.registry.GetUser(ctx, customerID)
	if err != nil {
		return "", err
	}

	return customer.Address, nil
}
