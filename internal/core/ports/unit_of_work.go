package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and hands out repositories bound to the
// running transaction. Client code explicitly manages the lifecycle:
// Begin, then Commit or Rollback.
//
// Row locks taken through GetForUpdate repository methods are held until
// Commit or Rollback, which is what serializes competing claims.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns an error if no transaction is active or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Safe to defer after a successful Commit.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// CartRepository returns a CartRepository bound to the current transaction.
	CartRepository() CartRepository

	// DishRepository returns a DishRepository bound to the current transaction.
	DishRepository() DishRepository

	// CustomerRepository returns a CustomerRepository bound to the current transaction.
	CustomerRepository() CustomerRepository

	// CourierRepository returns a CourierRepository bound to the current transaction.
	CourierRepository() CourierRepository

	// KitchenWorkerRepository returns a KitchenWorkerRepository bound to the current transaction.
	KitchenWorkerRepository() KitchenWorkerRepository
}
