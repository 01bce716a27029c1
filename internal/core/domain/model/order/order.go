package order

import (
	"errors"
	"fmt"

	"myfood/internal/core/domain/model/kernel"

	"myfood/internal/pkg/errs"
	"myfood/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrItemNotFound is returned when removing a product name that is not in the basket.
	ErrItemNotFound = fmt.Errorf("%w: no basket item with that product name", errs.ErrObjectNotFound)
)

// Order represents a customer's basket against one company. It is the aggregate
// root that manages the basket contents, the running total, and the order
// lifecycle from creation through delivery.
//
// Order follows these invariants:
//   - Must have a valid sequence-assigned number
//   - Customer and company references are immutable after creation
//   - The total always equals the sum of the basket item prices and is never negative
//   - Status transitions follow the rules encoded in Status
//   - Can only be created through the NewOrder constructor
//
// The total is maintained incrementally on every add and remove; a failed
// operation leaves both the basket and the total untouched.
type Order struct {
	// number is the unique, monotonically assigned identity of the order
	number kernel.OrderNumber

	// customerID references the customer who placed the order
	customerID kernel.UserID

	// companyID references the vendor company the order was placed against
	companyID kernel.CompanyID

	// status is the current state in the order lifecycle
	status Status

	// items is the basket in insertion order; duplicates are separate entries
	items []Item

	// total is the running sum of item prices at the time each was added
	total float64

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in the Open state with an empty basket.
//
// Parameters:
//   - number: sequence-assigned order number (must be positive)
//   - customerID: identity of the placing customer
//   - companyID: identity of the target company
//
// Returns the created order, or a joined validation error if any identity
// is invalid.
func NewOrder(number kernel.OrderNumber, customerID kernel.UserID, companyID kernel.CompanyID) (*Order, error) {
	o := &Order{
		status: Open,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setNumber(number),
		o.setCustomerID(customerID),
		o.setCompanyID(companyID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder, it restores the persisted status, basket, and total
// exactly as they were saved; the total is not recomputed from the items.
func RestoreOrder(
	number kernel.OrderNumber,
	customerID kernel.UserID,
	companyID kernel.CompanyID,
	status Status,
	items []Item,
	total float64,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setNumber(number),
		o.setCustomerID(customerID),
		o.setCompanyID(companyID),
		o.setStatus(status),
		o.setItems(items),
		o.setTotal(total),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed for nil and zero-value orders.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their numbers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.number == other.number
}

// Number returns the order's unique number.
func (o *Order) Number() kernel.OrderNumber {
	return o.number
}

// CustomerID returns the identity of the placing customer.
func (o *Order) CustomerID() kernel.UserID {
	return o.customerID
}

// CompanyID returns the identity of the target company.
func (o *Order) CompanyID() kernel.CompanyID {
	return o.companyID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the basket in insertion order.
// The returned slice is a copy to prevent external modification.
func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

// Total returns the running sum of the basket item prices.
func (o *Order) Total() float64 {
	return o.total
}

// AddItem appends a product snapshot to the basket and adds its price to the
// running total.
//
// Business rules:
//   - The basket only accepts items while the order is Open (ErrOrderNotOpen otherwise)
//   - The same product may be added multiple times as separate entries
//
// A failed add leaves the basket and the total unchanged.
func (o *Order) AddItem(item Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	if err := o.status.ValidateBasketChange(); err != nil {
		return err
	}

	o.items = append(o.items, item)
	o.total += item.Price()
	return nil
}

// RemoveItem removes the first basket entry whose product name matches and
// subtracts that single entry's price from the running total.
//
// Business rules:
//   - The basket only releases items while the order is Open (ErrOrderNotOpen otherwise)
//   - If duplicates exist, only the first matching entry is removed
//   - A name with no match fails with ErrItemNotFound
//
// A failed remove leaves the basket and the total unchanged.
func (o *Order) RemoveItem(productName string) error {
	if err := o.status.ValidateBasketChange(); err != nil {
		return err
	}

	for i, item := range o.items {
		if item.Name() == productName {
			o.items = append(o.items[:i], o.items[i+1:]...)
			o.total -= item.Price()
			return nil
		}
	}

	return ErrItemNotFound
}

// Close freezes the basket and moves the order to Preparing.
// Closing an already Preparing order is a no-op; later states reject it.
func (o *Order) Close() error {
	newStatus, err := o.status.Close()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkReady signals that the vendor finished preparation (Preparing -> Ready).
// A Ready order fails with ErrAlreadyReady; any other state fails with ErrNotPreparing.
func (o *Order) MarkReady() error {
	newStatus, err := o.status.MarkReady()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// StartDelivery moves the order to Delivering. It is driven exclusively by
// delivery creation; a Delivery referencing this order must exist before the
// transition is committed.
func (o *Order) StartDelivery() error {
	newStatus, err := o.status.StartDelivery()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkDelivered moves the order to its terminal Delivered state. It is driven
// exclusively by the delivery completion event. Completing an already
// Delivered order re-runs the transition without error.
func (o *Order) MarkDelivered() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setNumber(number kernel.OrderNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UserID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setCompanyID(companyID kernel.CompanyID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}
	o.companyID = companyID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setItems(items []Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setTotal(total float64) error {
	if total < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total", fmt.Errorf("%.2f is negative", total))
	}
	o.total = total
	return nil
}
