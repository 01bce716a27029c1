package queries

import (
	"context"
	"fmt"

	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/core/ports"
	"myfood/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderNumberQueryHandler resolves order numbers by position within a
// company's creation-ordered list.
type GetOrderNumberQueryHandler struct {
	db       *gorm.DB
	registry ports.Registry
}

// NewGetOrderNumberQueryHandler creates a handler for order number lookups.
func NewGetOrderNumberQueryHandler(db *gorm.DB, registry ports.Registry) GetOrderNumberQueryHandler {
	return GetOrderNumberQueryHandler{db: db, registry: registry}
}

// Handle executes the lookup and returns the order number at the requested
// position. The customer must resolve; an index past the end of the list
// fails with an out of range error.
func (h GetOrderNumberQueryHandler) Handle(ctx context.Context, query GetOrderNumberQuery) (kernel.OrderNumber, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	if _, err := h.registry.GetUser(ctx, query.CustomerID()); err != nil {
		return 0, err
	}

	var number int
	err := h.db.WithContext(ctx).Raw(`
		SELECT number
		FROM orders
		WHERE company_id = ?
		ORDER BY number
		LIMIT 1 OFFSET ?
	`, int(query.CompanyID()), query.Index()).Scan(&number).Error
	if err != nil {
		return 0, err
	}
	if number == 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("index",
			fmt.Errorf("%d is past the end of the company's orders", query.Index()))
	}

	return kernel.OrderNumber(number), nil
}
