package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/dish"
	"fooddelivery/internal/core/domain/model/kernel"
)

// DishRepository defines the persistence contract for the menu.
type DishRepository interface {
	// Add persists a new dish.
	Add(ctx context.Context, aggregate *dish.Dish) error

	// Get retrieves a dish by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*dish.Dish, error)

	// GetByIDs retrieves the dishes with the given identifiers.
	// Returns an object not found error when any of them is missing, since
	// callers resolve cart lines and a dangling reference is a data error.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*dish.Dish, error)
}
