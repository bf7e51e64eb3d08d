package queries

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fooddelivery/internal/pkg/guard"
)

var (
	ErrGetClaimableOrdersQueryIsNotConstructed = errors.New(
		"GetClaimableOrdersQuery must be created via NewGetClaimableOrdersQuery constructor",
	)
)

// GetClaimableOrdersQuery retrieves the orders a courier may try to claim:
// not delivered and not bound to any courier. Orders the kitchen has not
// finished yet are included; the claim itself is what enforces preparedness,
// so couriers see work coming ahead of time.
type GetClaimableOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetClaimableOrdersQuery creates a query to list claimable orders.
func NewGetClaimableOrdersQuery() GetClaimableOrdersQuery {
	return GetClaimableOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetClaimableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetClaimableOrdersQueryIsNotConstructed)
}

// GetClaimableOrdersQueryHandler lists claimable orders straight from the
// database, bypassing the aggregates for read performance.
type GetClaimableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetClaimableOrdersQueryHandler creates a handler for claimable order queries.
func NewGetClaimableOrdersQueryHandler(db *gorm.DB) GetClaimableOrdersQueryHandler {
	return GetClaimableOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders come oldest first so the longest waiting
// order is claimed first.
func (h GetClaimableOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetClaimableOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE courier_id IS NULL
		  AND time_of_delivery IS NULL
		ORDER BY time_of_creation
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}
