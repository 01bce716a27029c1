package services

import (
	"errors"

	"myfood/internal/core/domain/model/order"
	"myfood/internal/core/domain/model/registry"
)

// ErrNoReadyOrder is returned when no ready order is available for the courier.
// This occurs when either no candidates are provided or the courier's
// affiliated companies currently have nothing ready to pick up.
var ErrNoReadyOrder = errors.New("no ready order available")

// Candidate pairs a ready order with the view of the company it was placed
// against. The company kind is what drives the pharmacy priority rule.
type Candidate struct {
	Order   *order.Order
	Company registry.Company
}

// OrderSelector is a domain service responsible for picking which ready order
// a waiting courier should take next.
//
// Business rules:
//   - Only Ready orders are eligible
//   - Pharmacy orders always win over non-pharmacy orders
//   - Within the same priority class, the lowest order number wins, so older
//     orders are always served first
//
// Example usage:
//
//	selector := NewOrderSelector()
//	picked, err := selector.Select(candidates)
//	if errors.Is(err, ErrNoReadyOrder) {
//	    // Nothing to dispatch for this courier right now
//	    return
//	}
type OrderSelector struct{}

// NewOrderSelector creates a new OrderSelector instance.
func NewOrderSelector() OrderSelector {
	return OrderSelector{}
}

// Select picks the best order among the candidates.
//
// Parameters:
//   - candidates: ready orders from the courier's affiliated companies
//
// Returns:
//   - *order.Order: the picked order
//   - error: ErrNoReadyOrder if no candidate is eligible, or validation errors
//
// Selection algorithm:
//   - Validates each candidate order and skips any that is not Ready
//   - Prefers the pharmacy candidate with the lowest order number
//   - Falls back to the lowest order number overall
func (s OrderSelector) Select(candidates []Candidate) (*order.Order, error) {
	var bestPharmacy, bestOverall *order.Order

	for _, c := range candidates {
		if err := c.Order.Validate(); err != nil {
			return nil, err
		}

		if c.Order.Status() != order.Ready {
			continue
		}

		if bestOverall == nil || c.Order.Number() < bestOverall.Number() {
			bestOverall = c.Order
		}

		if c.Company.Kind == registry.Pharmacy {
			if bestPharmacy == nil || c.Order.Number() < bestPharmacy.Number() {
				bestPharmacy = c.Order
			}
		}
	}

	if bestPharmacy != nil {
		return bestPharmacy, nil
	}

	if bestOverall == nil {
		return nil, ErrNoReadyOrder
	}

	return bestOverall, nil
}
