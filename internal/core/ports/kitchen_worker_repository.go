package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
)

// KitchenWorkerRepository defines the persistence contract for kitchen workers.
type KitchenWorkerRepository interface {
	// Add persists a new kitchen worker.
	Add(ctx context.Context, aggregate *account.KitchenWorker) error

	// Get retrieves a kitchen worker by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.KitchenWorker, error)
}
