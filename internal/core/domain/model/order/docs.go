// Package order provides domain entities and business logic for order management
// in the ordering platform. It implements the Order aggregate root with basket
// handling, lifecycle management, and state transitions.
//
// The package includes:
//   - Order: The aggregate root that owns the basket of line items and the running total
//   - Item: A value object snapshotting a product (id, name, price) at the time it was added
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must reference a valid customer and company; both are immutable after creation
//   - Order status follows a defined workflow: Open -> Preparing -> Ready -> Delivering -> Delivered
//   - The basket can only change while the order is Open
//   - The running total always equals the sum of the item prices in the basket
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
