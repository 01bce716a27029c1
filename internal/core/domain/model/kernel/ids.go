package kernel

import "myfood/internal/pkg/errs"

// Identifiers are small positive integers handed out by sequences owned by
// persistent state. The zero value of every identifier type is invalid, which
// makes an unset reference detectable before it reaches storage.
//
// Order numbers and delivery ids are assigned by the core itself (monotonic,
// never reused). User, company, and product identities are assigned by the
// registry collaborator; the core only requires them to be stable.

// OrderNumber uniquely identifies an order. Numbers are monotonically
// assigned in creation order, so a lower number always means an older order.
type OrderNumber int

// Validate returns an error if the order number was never assigned.
func (n OrderNumber) Validate() error {
	if n <= 0 {
		return errs.NewValueIsRequiredError("order number")
	}
	return nil
}

// Int returns the number as a plain int for formatting and persistence.
func (n OrderNumber) Int() int {
	return int(n)
}

// DeliveryID uniquely identifies a delivery. IDs are monotonic and 1-based;
// an id is never reused even when the delivery attempt that allocated it failed.
type DeliveryID int

// Validate returns an error if the delivery id was never assigned.
func (d DeliveryID) Validate() error {
	if d <= 0 {
		return errs.NewValueIsRequiredError("delivery id")
	}
	return nil
}

// Int returns the id as a plain int for formatting and persistence.
func (d DeliveryID) Int() int {
	return int(d)
}

// UserID identifies a registered user (customer, owner, or courier) in the registry.
type UserID int

// Validate returns an error if the user id was never assigned.
func (u UserID) Validate() error {
	if u <= 0 {
		return errs.NewValueIsRequiredError("user id")
	}
	return nil
}

// CompanyID identifies a vendor company in the registry.
type CompanyID int

// Validate returns an error if the company id was never assigned.
func (c CompanyID) Validate() error {
	if c <= 0 {
		return errs.NewValueIsRequiredError("company id")
	}
	return nil
}

// ProductID identifies a catalog product in the registry.
type ProductID int

// Validate returns an error if the product id was never assigned.
func (p ProductID) Validate() error {
	if p <= 0 {
		return errs.NewValueIsRequiredError("product id")
	}
	return nil
}
