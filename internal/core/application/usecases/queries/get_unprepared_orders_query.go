package queries

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrGetUnpreparedOrdersQueryIsNotConstructed = errors.New(
		"GetUnpreparedOrdersQuery must be created via NewGetUnpreparedOrdersQuery constructor",
	)
)

// GetUnpreparedOrdersQuery retrieves the kitchen's work queue: orders the
// kitchen has not finished yet.
type GetUnpreparedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnpreparedOrdersQuery creates a query to list unprepared orders.
func NewGetUnpreparedOrdersQuery() GetUnpreparedOrdersQuery {
	return GetUnpreparedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUnpreparedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnpreparedOrdersQueryIsNotConstructed)
}

// GetUnpreparedOrdersQueryHandler lists the kitchen queue from the database.
type GetUnpreparedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnpreparedOrdersQueryHandler creates a handler for kitchen queue queries.
func NewGetUnpreparedOrdersQueryHandler(db *gorm.DB) GetUnpreparedOrdersQueryHandler {
	return GetUnpreparedOrdersQueryHandler{db: db}
}

// Handle executes the query, oldest orders first.
func (h GetUnpreparedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnpreparedOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE status = ?
		ORDER BY time_of_creation
	`, int(order.Created)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}
