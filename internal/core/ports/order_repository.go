// Package ports defines the repository and collaborator interfaces of the
// ordering core. These interfaces establish contracts between the domain layer
// and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// NextNumber allocates the next order number from the sequence owned by
	// storage. Numbers are monotonic and never reused, even when the creation
	// that allocated one fails.
	NextNumber(ctx context.Context) (kernel.OrderNumber, error)

	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, including its
	// basket contents and running total.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its number.
	// Returns the complete order with its basket and current status.
	Get(ctx context.Context, number kernel.OrderNumber) (*order.Order, error)

	// GetOpen retrieves the open order a customer holds against a company.
	// At most one such order exists at a time.
	GetOpen(ctx context.Context, customerID kernel.UserID, companyID kernel.CompanyID) (*order.Order, error)

	// GetAllReady retrieves every order in Ready status for the given
	// companies, ordered by ascending order number. Used by dispatch to build
	// the candidate set for a courier.
	GetAllReady(ctx context.Context, companyIDs []kernel.CompanyID) ([]*order.Order, error)
}
