package queries

import (
	"errors"

	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/pkg/guard"
)

var ErrSelectOrderForCourierQueryIsNotConstructed = errors.New(
	"SelectOrderForCourierQuery must be created via NewSelectOrderForCourierQuery constructor",
)

// SelectOrderForCourierQuery asks which ready order an idle courier should
// pick up next. This is a pure selection: it mutates nothing and creating the
// delivery is a separate, explicit step.
type SelectOrderForCourierQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UserID

	guard guard.ConstructorGuard
}

// NewSelectOrderForCourierQuery creates a dispatch selection query.
func NewSelectOrderForCourierQuery(courierID kernel.UserID) (SelectOrderForCourierQuery, error) {
	query := SelectOrderForCourierQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setCourierID(courierID); err != nil {
		return SelectOrderForCourierQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q SelectOrderForCourierQuery) Validate() error {
	return q.guard.Validate(ErrSelectOrderForCourierQueryIsNotConstructed)
}

// CourierID returns the identity of the asking courier.
func (q SelectOrderForCourierQuery) CourierID() kernel.UserID {
	return q.courierID
}

func (q *SelectOrderForCourierQuery) setCourierID(courierID kernel.UserID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	q.courierID = courierID
	return nil
}
