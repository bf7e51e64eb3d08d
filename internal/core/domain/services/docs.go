// Package services provides domain services that implement business logic
// spanning more than one aggregate.
//
// The package includes:
//   - ETACalculator: estimates the expected delivery time of a claimed order
//     from kitchen preparation time and the courier's travel distance
//
// Domain services are stateless value types configured once at startup and
// shared between use case handlers.
package services
