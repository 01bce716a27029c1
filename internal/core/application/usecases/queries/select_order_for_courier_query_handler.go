package queries

import (
	"context"
	"fmt"

	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/core/domain/model/registry"
	"myfood/internal/core/domain/services"
	"myfood/internal/core/ports"
	"myfood/internal/pkg/errs"
)

var (
	// ErrNotACourier is returned when the asking identity does not resolve to
	// a registered courier.
	ErrNotACourier = fmt.Errorf("%w: user is not a registered courier", errs.ErrValueIsInvalid)

	// ErrCourierHasNoCompany is returned when the courier has no company
	// affiliations and therefore no orders to pick from.
	ErrCourierHasNoCompany = fmt.Errorf("%w: courier is not affiliated with any company", errs.ErrValueIsInvalid)
)

// SelectOrderForCourierQueryHandler implements the dispatch selection read
// path: it builds the candidate set of ready orders at the courier's
// affiliated companies and delegates the pick to the OrderSelector domain
// service.
//
// Example:
//
//	handler := NewSelectOrderForCourierQueryHandler(orders, registry)
//	query, _ := NewSelectOrderForCourierQuery(courierID)
//
//	number, err := handler.Handle(ctx, query)
//	switch {
//	case errors.Is(err, ErrNotACourier):
//	    // Only couriers can ask for work
//	case errors.Is(err, ErrCourierHasNoCompany):
//	    // The courier must affiliate with a company first
//	case errors.Is(err, services.ErrNoReadyOrder):
//	    // Nothing to pick up right now
//	}
type SelectOrderForCourierQueryHandler struct {
	orders   ports.OrderRepository
	registry ports.Registry
}

// NewSelectOrderForCourierQueryHandler creates a handler for dispatch selection.
func NewSelectOrderForCourierQueryHandler(orders ports.OrderRepository, registry ports.Registry) SelectOrderForCourierQueryHandler {
	return SelectOrderForCourierQueryHandler{orders: orders, registry: registry}
}

// Handle executes the selection and returns the picked order's number.
//
// Preconditions, checked in order:
//  1. The identity must resolve to a registered courier (ErrNotACourier)
//  2. The courier must have at least one affiliation (ErrCourierHasNoCompany)
//
// Candidates are the Ready orders of the affiliated companies; the pharmacy
// priority and oldest-first tie break live in services.OrderSelector.
func (h SelectOrderForCourierQueryHandler) Handle(ctx context.Context, query SelectOrderForCourierQuery) (kernel.OrderNumber, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	courier, err := h.registry.GetUser(ctx, query.CourierID())
	if err != nil || courier.Kind != registry.Courier {
		return 0, ErrNotACourier
	}

	companyIDs, err := h.registry.CourierCompanies(ctx, query.CourierID())
	if err != nil {
		return 0, err
	}
	if len(companyIDs) == 0 {
		return 0, ErrCourierHasNoCompany
	}

	candidates, err := h.loadCandidates(ctx, companyIDs)
	if err != nil {
		return 0, err
	}

	picked, err := services.NewOrderSelector().Select(candidates)
	if err != nil {
		return 0, err
	}

	return picked.Number(), nil
}

// loadCandidates builds the candidate set of ready orders at the given
// companies, pairing each order with its company view for the priority rule.
func (h SelectOrderForCourierQueryHandler) loadCandidates(
	ctx context.Context,
	companyIDs []kernel.CompanyID,
) ([]services.Candidate, error) {
	orders, err := h.orders.GetAllReady(ctx, companyIDs)
	if err != nil {
		return nil, err
	}

	companies := make(map[kernel.CompanyID]registry.Company)
	candidates := make([]services.Candidate, 0, len(orders))

	for _, aggregate := range orders {
		company, ok := companies[aggregate.CompanyID()]
		if !ok {
			company, err = h.registry.GetCompany(ctx, aggregate.CompanyID())
			if err != nil {
				return nil, err
			}
			companies[aggregate.CompanyID()] = company
		}

		candidates = append(candidates, services.Candidate{Order: aggregate, Company: company})
	}

	return candidates, nil
}
