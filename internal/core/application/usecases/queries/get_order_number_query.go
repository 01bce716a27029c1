package queries

import (
	"errors"

	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/pkg/errs"
	"myfood/internal/pkg/guard"
)

var ErrGetOrderNumberQueryIsNotConstructed = errors.New(
	"GetOrderNumberQuery must be created via NewGetOrderNumberQuery constructor",
)

// GetOrderNumberQuery resolves the number of the index-th order placed at a
// company, in creation order. The customer identity must exist; it scopes the
// caller, not the list.
type GetOrderNumberQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UserID
	companyID  kernel.CompanyID
	index      int

	guard guard.ConstructorGuard
}

// NewGetOrderNumberQuery creates an order number lookup query.
// The index is zero-based and must not be negative.
func NewGetOrderNumberQuery(customerID kernel.UserID, companyID kernel.CompanyID, index int) (GetOrderNumberQuery, error) {
	query := GetOrderNumberQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setCustomerID(customerID),
		query.setCompanyID(companyID),
		query.setIndex(index),
	); err != nil {
		return GetOrderNumberQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderNumberQueryIsNotConstructed)
}

// CustomerID returns the identity of the asking customer.
func (q GetOrderNumberQuery) CustomerID() kernel.UserID {
	return q.customerID
}

// CompanyID returns the identity of the company whose orders are indexed.
func (q GetOrderNumberQuery) CompanyID() kernel.CompanyID {
	return q.companyID
}

// Index returns the zero-based position in the company's creation-ordered list.
func (q GetOrderNumberQuery) Index() int {
	return q.index
}

func (q *GetOrderNumberQuery) setCustomerID(customerID kernel.UserID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	q.customerID = customerID
	return nil
}

func (q *GetOrderNumberQuery) setCompanyID(companyID kernel.CompanyID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}

	q.companyID = companyID
	return nil
}

func (q *GetOrderNumberQuery) setIndex(index int) error {
	if index < 0 {
		return errs.NewValueIsInvalidError("index")
	}

	q.index = index
	return nil
}
