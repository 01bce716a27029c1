package commands

import (
	"errors"

	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand represents a request to bind a ready order to a
// courier. The destination may be empty; the handler then falls back to the
// customer's registered address.
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderNumber kernel.OrderNumber
	courierID   kernel.UserID
	destination string

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to start a delivery.
func NewCreateDeliveryCommand(
	orderNumber kernel.OrderNumber,
	courierID kernel.UserID,
	destination string,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		destination: destination,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setCourierID(courierID),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// OrderNumber returns the number of the order to deliver.
func (c CreateDeliveryCommand) OrderNumber() kernel.OrderNumber {
	return c.orderNumber
}

// CourierID returns the identity of the courier taking the order.
func (c CreateDeliveryCommand) CourierID() kernel.UserID {
	return c.courierID
}

// Destination returns the requested delivery address; empty means the
// customer's registered address.
func (c CreateDeliveryCommand) Destination() string {
	return c.destination
}

func (c *CreateDeliveryCommand) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *CreateDeliveryCommand) setCourierID(courierID kernel.UserID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
