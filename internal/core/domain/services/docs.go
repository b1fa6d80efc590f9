// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the order-taking system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - AddressResolver: decides the effective delivery address and zone for a new order
//   - OrderPricer: turns product selections into discounted, frozen order lines
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
