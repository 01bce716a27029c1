package delivery

import (
	"errors"

	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/pkg/errs"
	"myfood/internal/pkg/guard"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
	// created through the NewDelivery factory method.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

	// ErrDestinationIsRequired is returned when a delivery is created without a
	// destination. Callers resolve a fallback (the customer's registered
	// address) before constructing the aggregate.
	ErrDestinationIsRequired = errs.NewValueIsRequiredError("destination")
)

// Delivery binds one ready order to one courier. It is created only when the
// referenced order is Ready, and its existence is what drives the order into
// Delivering. All fields are immutable after construction; completing a
// delivery mutates the order, not the delivery.
//
// Business rules:
//   - Exactly one delivery may exist per order
//   - IDs are monotonic, 1-based, and never reused even across failed attempts
//   - The destination must be resolved before construction; it is never empty
type Delivery struct {
	// id is the unique, sequence-assigned identity of the delivery
	id kernel.DeliveryID

	// orderNumber references the order being delivered
	orderNumber kernel.OrderNumber

	// courierID references the assigned courier
	courierID kernel.UserID

	// destination is the address the courier delivers to
	destination string

	guard guard.ConstructorGuard
}

// NewDelivery creates a Delivery binding an order to a courier.
//
// Parameters:
//   - id: sequence-assigned delivery id (must be positive)
//   - orderNumber: the order being delivered
//   - courierID: the courier taking the order
//   - destination: resolved delivery address (must be non-empty)
//
// Returns the created delivery, or a joined validation error.
func NewDelivery(
	id kernel.DeliveryID,
	orderNumber kernel.OrderNumber,
	courierID kernel.UserID,
	destination string,
) (*Delivery, error) {
	d := &Delivery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderNumber(orderNumber),
		d.setCourierID(courierID),
		d.setDestination(destination),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a Delivery from persistent storage.
// Deliveries carry no mutable state, so restoration equals construction.
func RestoreDelivery(
	id kernel.DeliveryID,
	orderNumber kernel.OrderNumber,
	courierID kernel.UserID,
	destination string,
) (*Delivery, error) {
	return NewDelivery(id, orderNumber, courierID, destination)
}

// Validate ensures the Delivery instance was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// IsEqual compares two deliveries by their ids.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id == other.id
}

// ID returns the delivery's unique identity.
func (d *Delivery) ID() kernel.DeliveryID {
	return d.id
}

// OrderNumber returns the number of the order being delivered.
func (d *Delivery) OrderNumber() kernel.OrderNumber {
	return d.orderNumber
}

// CourierID returns the identity of the assigned courier.
func (d *Delivery) CourierID() kernel.UserID {
	return d.courierID
}

// Destination returns the resolved delivery address.
func (d *Delivery) Destination() string {
	return d.destination
}

func (d *Delivery) setID(id kernel.DeliveryID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}
	d.orderNumber = orderNumber
	return nil
}

func (d *Delivery) setCourierID(courierID kernel.UserID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	d.courierID = courierID
	return nil
}

func (d *Delivery) setDestination(destination string) error {
	if destination == "" {
		return ErrDestinationIsRequired
	}
	d.destination = destination
	return nil
}
