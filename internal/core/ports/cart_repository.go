package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart aggregates.
// Carts are keyed by customer: each customer owns at most one cart, created
// lazily on the first add.
type CartRepository interface {
	// Add persists a new cart aggregate.
	Add(ctx context.Context, aggregate *cart.Cart) error

	// Update persists changes to an existing cart, including line removals.
	Update(ctx context.Context, aggregate *cart.Cart) error

	// GetByCustomer retrieves the customer's cart.
	// Returns an object not found error when the customer has no cart yet.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error)
}
