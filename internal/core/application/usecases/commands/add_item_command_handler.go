package commands

import (
	"context"
	"fmt"

	"myfood/internal/core/domain/model/order"
	"myfood/internal/core/ports"
	"myfood/internal/pkg/errs"
)

// ErrProductNotOffered is returned when the product exists but belongs to a
// different company than the order was placed against.
var ErrProductNotOffered = fmt.Errorf("%w: product does not belong to the order's company", errs.ErrValueIsInvalid)

// AddItemCommandHandler handles adding a catalog product to an open order.
// The product is snapshotted into the basket, so later catalog changes never
// alter the order's total.
type AddItemCommandHandler struct {
	uowFactory OrderUoWFactory
	registry   ports.Registry
}

// NewAddItemCommandHandler creates a handler for basket addition operations.
func NewAddItemCommandHandler(uowFactory OrderUoWFactory, registry ports.Registry) AddItemCommandHandler {
	return AddItemCommandHandler{
		uowFactory: uowFactory,
		registry:   registry,
	}
}

// Handle processes the addition command.
//
// Business rules:
//   - The order must resolve
//   - The product must resolve and be offered by the order's company (ErrProductNotOffered)
//   - The order must still be Open; the aggregate rejects later states
func (h AddItemCommandHandler) Handle(ctx context.Context, cmd AddItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	product, err := h.registry.GetProduct(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderNumber())
	if err != nil {
		return err
	}

	if product.CompanyID != aggregate.CompanyID() {
		return ErrProductNotOffered
	}

	item, err := order.NewItem(product.ID, product.Name, product.Price)
	if err != nil {
		return err
	}

	if err = aggregate.AddItem(item); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
