package order

import (
	"fmt"

	"myfood/internal/pkg/errs"
)

// State-transition errors. Each wraps the errs sentinel that classifies it,
// so callers can match either the specific failure or the broad kind.
var (
	// ErrOrderNotOpen is returned when the basket is changed after the order was closed.
	ErrOrderNotOpen = fmt.Errorf("%w: order is no longer open", errs.ErrInvalidState)
	// ErrAlreadyReady is returned when a Ready order is marked ready again.
	ErrAlreadyReady = fmt.Errorf("%w: order is already ready", errs.ErrInvalidState)
	// ErrNotPreparing is returned when an order outside Preparing is marked ready.
	ErrNotPreparing = fmt.Errorf("%w: only a preparing order can be marked ready", errs.ErrInvalidState)
	// ErrOrderNotReady is returned when a delivery is requested for an order that is not Ready.
	ErrOrderNotReady = fmt.Errorf("%w: order is not ready for delivery", errs.ErrInvalidState)
	// ErrDeliveryInProgress is returned when a second delivery is requested for a Delivering order.
	ErrDeliveryInProgress = fmt.Errorf("%w: order is already out for delivery", errs.ErrConflict)
	// ErrNotDelivering is returned when an order is marked delivered before it left for delivery.
	ErrNotDelivering = fmt.Errorf("%w: order has not left for delivery", errs.ErrInvalidState)
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Open ──> Preparing ──> Ready ──> Delivering ──> Delivered
//
// The machine only moves forward: Delivered is terminal and no transition
// re-enters an earlier state. String values use the platform's canonical
// wire vocabulary, which is what the "estado" attribute projection returns.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Open is the initial status: the basket accepts item additions and removals.
	Open

	// Preparing means the basket is frozen and the vendor is preparing the order.
	Preparing

	// Ready means the vendor finished preparation; the order awaits courier pickup.
	Ready

	// Delivering means a delivery was created and a courier is on the way.
	Delivering

	// Delivered is the final state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns a map of Status values to their wire representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "desconhecido",
		Open:       "aberto",
		Preparing:  "preparando",
		Ready:      "pronto",
		Delivering: "entregando",
		Delivered:  "entregue",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:       "aberto",
		Preparing:  "preparando",
		Ready:      "pronto",
		Delivering: "entregando",
		Delivered:  "entregue",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other values outside the enumeration are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status ("aberto", "preparando",
// "pronto", "entregando", "entregue"). Invalid values yield "desconhecido".
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "desconhecido"
}

// ValidateBasketChange checks whether the basket may still be modified.
// Only Open orders accept item additions and removals.
func (s Status) ValidateBasketChange() error {
	if s != Open {
		return ErrOrderNotOpen
	}
	return nil
}

// Close transitions the status to Preparing, freezing the basket.
//
// Valid transitions:
//   - Open -> Preparing
//   - Preparing -> Preparing (closing twice is a no-op)
//
// Any later state rejects the transition: the machine never moves backward.
func (s Status) Close() (Status, error) {
	if s != Open && s != Preparing {
		return 0, errs.NewInvalidStateError("close order", s.String())
	}
	return Preparing, nil
}

// MarkReady transitions the status to Ready.
//
// Valid transitions:
//   - Preparing -> Ready
//
// A Ready order fails with ErrAlreadyReady; every other state fails with
// ErrNotPreparing. The two failures are distinct so callers can report them
// separately.
func (s Status) MarkReady() (Status, error) {
	if s == Ready {
		return 0, ErrAlreadyReady
	}
	if s != Preparing {
		return 0, ErrNotPreparing
	}
	return Ready, nil
}

// StartDelivery transitions the status to Delivering.
//
// Valid transitions:
//   - Ready -> Delivering
//
// A Delivering order fails with ErrDeliveryInProgress (a second delivery may
// not be bound to it); every other state fails with ErrOrderNotReady. The
// in-progress check runs first so the conflict is reported over the state error.
func (s Status) StartDelivery() (Status, error) {
	if s == Delivering {
		return 0, ErrDeliveryInProgress
	}
	if s != Ready {
		return 0, ErrOrderNotReady
	}
	return Delivering, nil
}

// Complete transitions the status to Delivered.
//
// Valid transitions:
//   - Delivering -> Delivered
//   - Delivered -> Delivered (completing twice re-runs the transition without error)
//
// Earlier states fail with ErrNotDelivering: an order cannot be delivered
// before it left for delivery.
func (s Status) Complete() (Status, error) {
	if s != Delivering && s != Delivered {
		return 0, ErrNotDelivering
	}
	return Delivered, nil
}
