package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
)

// Geocoder resolves a free-form address into geographic coordinates.
//
// Implementations wrap an external geocoding service. A query with no match
// fails with an object not found error; transport failures and upstream
// errors surface as upstream unavailable, which callers may treat as
// retryable.
type Geocoder interface {
	Resolve(ctx context.Context, address string) (kernel.GeoPoint, error)
}
