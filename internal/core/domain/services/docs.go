// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the ordering system. It
// implements business logic that spans aggregates and so does not naturally
// belong to a single aggregate root.
//
// The package includes:
//   - OrderSelector: a domain service for picking which ready order a waiting
//     courier should take, applying the pharmacy priority rule
package services
