package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customers.
type CustomerRepository interface {
	// Add persists a new customer.
	Add(ctx context.Context, aggregate *account.Customer) error

	// Update persists changes to an existing customer, including the balance.
	Update(ctx context.Context, aggregate *account.Customer) error

	// Get retrieves a customer by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Customer, error)

	// GetForUpdate retrieves a customer like Get but locks its row for the
	// duration of the surrounding transaction. Balance mutations go through
	// this method so that concurrent debits serialize.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*account.Customer, error)
}
