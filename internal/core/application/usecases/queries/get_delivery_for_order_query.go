package queries

import (
	"errors"

	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/pkg/guard"
)

var ErrGetDeliveryForOrderQueryIsNotConstructed = errors.New(
	"GetDeliveryForOrderQuery must be created via NewGetDeliveryForOrderQuery constructor",
)

// GetDeliveryForOrderQuery resolves the delivery bound to one order.
type GetDeliveryForOrderQuery struct { //nolint:recvcheck //using for validation
	orderNumber kernel.OrderNumber

	guard guard.ConstructorGuard
}

// NewGetDeliveryForOrderQuery creates a query resolving an order's delivery.
func NewGetDeliveryForOrderQuery(orderNumber kernel.OrderNumber) (GetDeliveryForOrderQuery, error) {
	query := GetDeliveryForOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderNumber(orderNumber); err != nil {
		return GetDeliveryForOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryForOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryForOrderQueryIsNotConstructed)
}

// OrderNumber returns the number of the order to resolve.
func (q GetDeliveryForOrderQuery) OrderNumber() kernel.OrderNumber {
	return q.orderNumber
}

func (q *GetDeliveryForOrderQuery) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}

	q.orderNumber = orderNumber
	return nil
}
