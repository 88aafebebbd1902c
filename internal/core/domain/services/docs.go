// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the food-ordering system. It
// implements workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - Authorize and the permission matrix: role-based, fail-closed access decisions
//   - TransitionOrder / AssignDriverToOrder: lifecycle operations combining the
//     status state machine with authorization
//   - DriverDispatcher: picking the least-loaded driver for a ready order
//   - BuildSalesReport: pure aggregation of orders into dashboard figures
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design principles.
package services
