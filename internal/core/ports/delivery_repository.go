package ports

import (
	"context"

	"myfood/internal/core/domain/model/delivery"
	"myfood/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery records.
// Deliveries are immutable, so the contract has no update method.
type DeliveryRepository interface {
	// NextID allocates the next delivery id from the sequence owned by
	// storage. IDs are monotonic and 1-based; an id allocated by a failed
	// creation attempt is never reused.
	NextID(ctx context.Context) (kernel.DeliveryID, error)

	// Add persists a new delivery record.
	// The delivery must be valid and its order must not already have one.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery by its id.
	Get(ctx context.Context, id kernel.DeliveryID) (*delivery.Delivery, error)

	// GetByOrder retrieves the delivery bound to the given order, if any.
	GetByOrder(ctx context.Context, number kernel.OrderNumber) (*delivery.Delivery, error)
}
