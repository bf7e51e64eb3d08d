// Package kernel provides shared value objects used across all domain
// aggregates in the food-delivery system.
//
// The package includes:
//   - UUID: validated unique identifier wrapping github.com/google/uuid
//   - GeoPoint: validated latitude/longitude pair with great-circle distance
//
// All value objects are immutable, constructed only through factory functions,
// and detect improper zero-value construction via the guard package.
package kernel
