package queries

import (
	"errors"

	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/pkg/errs"
	"myfood/internal/pkg/guard"
)

var ErrGetDeliveryAttributeQueryIsNotConstructed = errors.New(
	"GetDeliveryAttributeQuery must be created via NewGetDeliveryAttributeQuery constructor",
)

// GetDeliveryAttributeQuery projects one delivery onto a named attribute.
//
// Recognized names: pedido, entregador, cliente, empresa, destino.
type GetDeliveryAttributeQuery struct { //nolint:recvcheck //using for validation
	deliveryID kernel.DeliveryID
	name       string

	guard guard.ConstructorGuard
}

// NewGetDeliveryAttributeQuery creates a query for one delivery attribute.
func NewGetDeliveryAttributeQuery(deliveryID kernel.DeliveryID, name string) (GetDeliveryAttributeQuery, error) {
	query := GetDeliveryAttributeQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setDeliveryID(deliveryID),
		query.setName(name),
	); err != nil {
		return GetDeliveryAttributeQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryAttributeQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryAttributeQueryIsNotConstructed)
}

// DeliveryID returns the identity of the projected delivery.
func (q GetDeliveryAttributeQuery) DeliveryID() kernel.DeliveryID {
	return q.deliveryID
}

// Name returns the requested attribute name.
func (q GetDeliveryAttributeQuery) Name() string {
	return q.name
}

func (q *GetDeliveryAttributeQuery) setDeliveryID(deliveryID kernel.DeliveryID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	q.deliveryID = deliveryID
	return nil
}

func (q *GetDeliveryAttributeQuery) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("attribute name")
	}

	q.name = name
	return nil
}
