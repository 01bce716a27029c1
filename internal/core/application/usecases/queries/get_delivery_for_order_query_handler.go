package queries

import (
	"context"

	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDeliveryForOrderQueryHandler resolves which delivery, if any, is bound
// to an order. At most one delivery exists per order.
type GetDeliveryForOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryForOrderQueryHandler creates a handler for delivery lookups by order.
func NewGetDeliveryForOrderQueryHandler(db *gorm.DB) GetDeliveryForOrderQueryHandler {
	return GetDeliveryForOrderQueryHandler{db: db}
}

// Handle executes the lookup and returns the delivery id.
// Fails with an object not found error when the order has no delivery.
func (h GetDeliveryForOrderQueryHandler) Handle(ctx context.Context, query GetDeliveryForOrderQuery) (kernel.DeliveryID, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var id int
	err := h.db.WithContext(ctx).Raw(`
		SELECT id
		FROM deliveries
		WHERE order_number = ?
	`, query.OrderNumber().Int()).Scan(&id).Error
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, errs.NewObjectNotFoundError("delivery for order", query.OrderNumber().Int())
	}

	return kernel.DeliveryID(id), nil
}
