// Package kernel provides core domain primitives for the ordering platform.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes the typed identifiers shared by all aggregates:
//   - OrderNumber and DeliveryID: sequence-assigned identities owned by the core
//   - UserID, CompanyID, ProductID: stable identities owned by the registry collaborator
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
