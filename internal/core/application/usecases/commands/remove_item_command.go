package commands

import (
	"errors"

	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/pkg/errs"
	"myfood/internal/pkg/guard"
)

var ErrRemoveItemCommandIsNotConstructed = errors.New(
	"RemoveItemCommand must be created via NewRemoveItemCommand constructor",
)

// RemoveItemCommand represents a request to remove one basket entry from an
// open order, matched by product name.
type RemoveItemCommand struct { //nolint:recvcheck //using for validation
	orderNumber kernel.OrderNumber
	productName string

	guard guard.ConstructorGuard
}

// NewRemoveItemCommand creates a command to remove a product from an order.
// The product name must be non-empty.
func NewRemoveItemCommand(orderNumber kernel.OrderNumber, productName string) (RemoveItemCommand, error) {
	cmd := RemoveItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setProductName(productName),
	); err != nil {
		return RemoveItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveItemCommandIsNotConstructed)
}

// OrderNumber returns the number of the target order.
func (c RemoveItemCommand) OrderNumber() kernel.OrderNumber {
	return c.orderNumber
}

// ProductName returns the name of the product to remove.
func (c RemoveItemCommand) ProductName() string {
	return c.productName
}

func (c *RemoveItemCommand) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *RemoveItemCommand) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("product name")
	}

	c.productName = productName
	return nil
}
