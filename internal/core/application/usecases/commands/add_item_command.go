package commands

import (
	"errors"

	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/pkg/guard"
)

var ErrAddItemCommandIsNotConstructed = errors.New(
	"AddItemCommand must be created via NewAddItemCommand constructor",
)

// AddItemCommand represents a request to add one product to an open order's basket.
type AddItemCommand struct { //nolint:recvcheck //using for validation
	orderNumber kernel.OrderNumber
	productID   kernel.ProductID

	guard guard.ConstructorGuard
}

// NewAddItemCommand creates a command to add a product to an order.
func NewAddItemCommand(orderNumber kernel.OrderNumber, productID kernel.ProductID) (AddItemCommand, error) {
	cmd := AddItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setProductID(productID),
	); err != nil {
		return AddItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

// OrderNumber returns the number of the target order.
func (c AddItemCommand) OrderNumber() kernel.OrderNumber {
	return c.orderNumber
}

// ProductID returns the identity of the product to add.
func (c AddItemCommand) ProductID() kernel.ProductID {
	return c.productID
}

func (c *AddItemCommand) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *AddItemCommand) setProductID(productID kernel.ProductID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
