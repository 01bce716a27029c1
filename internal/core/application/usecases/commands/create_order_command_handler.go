package commands

import (
	"context"
	"errors"
	"fmt"

	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/core/domain/model/order"
	"myfood/internal/core/ports"
	"myfood/internal/pkg/errs"
)

var (
	// ErrOwnerCannotOrder is returned when the ordering identity does not
	// resolve, or resolves to the owner of the target company. Owning an
	// unrelated company does not disqualify a user from ordering.
	ErrOwnerCannotOrder = fmt.Errorf("%w: the company's owner cannot place orders at it", errs.ErrNotAuthorized)

	// ErrOpenOrderExists is returned when the customer already holds an open
	// order against the same company.
	ErrOpenOrderExists = fmt.Errorf("%w: customer already has an open order at this company", errs.ErrConflict)
)

// CreateOrderCommandHandler handles the business logic for opening orders.
// Resolves the ordering identities through the registry and enforces the one
// open order per customer and company rule.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, registry)
//	cmd, _ := NewCreateOrderCommand(customerID, companyID)
//
//	number, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrOwnerCannotOrder):
//	    // The acting user owns this company and may not order from it
//	case errors.Is(err, ErrOpenOrderExists):
//	    // The customer already has an open basket here
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	registry   ports.Registry
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence and a Registry for
// identity resolution.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, registry ports.Registry) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		registry:   registry,
	}
}

// Handle processes the order creation command and returns the number assigned
// to the new order.
//
// Business rules:
//   - The customer identity must resolve and must not own the target company
//     (ErrOwnerCannotOrder); owners of other companies may order
//   - The company identity must resolve
//   - At most one open order per customer and company (ErrOpenOrderExists)
//   - The order number comes from the storage-owned sequence, so a failed
//     creation still consumes a number
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.OrderNumber, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	if _, err := h.registry.GetUser(ctx, cmd.CustomerID()); err != nil {
		return 0, ErrOwnerCannotOrder
	}

	company, err := h.registry.GetCompany(ctx, cmd.CompanyID())
	if err != nil {
		return 0, err
	}
	if company.OwnerID == cmd.CustomerID() {
		return 0, ErrOwnerCannotOrder
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	_, err = orderRepo.GetOpen(ctx, cmd.CustomerID(), cmd.CompanyID())
	if err == nil {
		return 0, ErrOpenOrderExists
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return 0, err
	}

	number, err := orderRepo.NextNumber(ctx)
	if err != nil {
		return 0, err
	}

	aggregate, err := order.NewOrder(number, cmd.CustomerID(), cmd.CompanyID())
	if err != nil {
		return 0, err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return number, nil
}
