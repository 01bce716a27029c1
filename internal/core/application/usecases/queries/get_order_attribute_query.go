// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"fmt"

	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/pkg/errs"
	"myfood/internal/pkg/guard"
)

var (
	ErrGetOrderAttributeQueryIsNotConstructed = errors.New(
		"GetOrderAttributeQuery must be created via NewGetOrderAttributeQuery constructor",
	)

	// ErrUnknownAttribute is returned when a projection is asked for an
	// attribute name no read model recognizes.
	ErrUnknownAttribute = fmt.Errorf("%w: unknown attribute name", errs.ErrValueIsInvalid)

	// ErrInvalidAttribute is returned when the attribute name is recognized
	// but an identity it depends on no longer resolves.
	ErrInvalidAttribute = fmt.Errorf("%w: attribute cannot be resolved", errs.ErrValueIsInvalid)
)

// GetOrderAttributeQuery projects one order onto a named attribute.
//
// Recognized names: cliente, empresa, estado, valor, produtos.
//
// Example:
//
//	query, _ := NewGetOrderAttributeQuery(number, "valor")
//	handler := NewGetOrderAttributeQueryHandler(db, registry)
//
//	value, err := handler.Handle(ctx, query)
//	if errors.Is(err, ErrUnknownAttribute) {
//	    // The attribute name is not part of the order read model
//	}
type GetOrderAttributeQuery struct { //nolint:recvcheck //using for validation
	orderNumber kernel.OrderNumber
	name        string

	guard guard.ConstructorGuard
}

// NewGetOrderAttributeQuery creates a query for one order attribute.
// The attribute name must be non-empty; whether it is recognized is decided
// by the handler.
func NewGetOrderAttributeQuery(orderNumber kernel.OrderNumber, name string) (GetOrderAttributeQuery, error) {
	query := GetOrderAttributeQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setOrderNumber(orderNumber),
		query.setName(name),
	); err != nil {
		return GetOrderAttributeQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderAttributeQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderAttributeQueryIsNotConstructed)
}

// OrderNumber returns the number of the projected order.
func (q GetOrderAttributeQuery) OrderNumber() kernel.OrderNumber {
	return q.orderNumber
}

// Name returns the requested attribute name.
func (q GetOrderAttributeQuery) Name() string {
	return q.name
}

func (q *GetOrderAttributeQuery) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}

	q.orderNumber = orderNumber
	return nil
}

func (q *GetOrderAttributeQuery) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("attribute name")
	}

	q.name = name
	return nil
}
