package order

import (
	"errors"
	"fmt"

	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/pkg/errs"
	"myfood/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory function.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a line entry in an order's basket. It snapshots the product's name
// and unit price at the moment it was added, so later catalog changes never
// alter an order's total. The same product may appear multiple times as
// separate entries.
type Item struct {
	productID kernel.ProductID
	name      string
	price     float64

	guard guard.ConstructorGuard
}

// NewItem creates a basket line entry from a product snapshot.
// The product id must resolve, the name must be non-empty, and the price
// must not be negative.
func NewItem(productID kernel.ProductID, name string, price float64) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setName(name),
		item.setPrice(price),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductID returns the identity of the snapshotted product.
func (i Item) ProductID() kernel.ProductID {
	return i.productID
}

// Name returns the product name at the time of addition.
func (i Item) Name() string {
	return i.name
}

// Price returns the unit price at the time of addition.
func (i Item) Price() float64 {
	return i.price
}

func (i *Item) setProductID(productID kernel.ProductID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%.2f is negative", price))
	}
	i.price = price
	return nil
}
