package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for couriers.
type CourierRepository interface {
	// Add persists a new courier.
	Add(ctx context.Context, aggregate *account.Courier) error

	// Update persists changes to an existing courier, including its location.
	Update(ctx context.Context, aggregate *account.Courier) error

	// Get retrieves a courier by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Courier, error)
}
