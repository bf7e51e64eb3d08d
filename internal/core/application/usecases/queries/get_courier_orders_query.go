package queries

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrGetCourierOrdersQueryIsNotConstructed = errors.New(
		"GetCourierOrdersQuery must be created via NewGetCourierOrdersQuery constructor",
	)
)

// GetCourierOrdersQuery retrieves the orders assigned to one courier,
// delivered ones included.
type GetCourierOrdersQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCourierOrdersQuery creates a query for a courier's own orders.
func NewGetCourierOrdersQuery(courierID kernel.UUID) (GetCourierOrdersQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierOrdersQuery{}, err
	}

	return GetCourierOrdersQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierOrdersQueryIsNotConstructed)
}

// CourierID returns the courier whose orders are requested.
func (q GetCourierOrdersQuery) CourierID() kernel.UUID {
	return q.courierID
}

// GetCourierOrdersQueryHandler lists a courier's orders from the database.
type GetCourierOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierOrdersQueryHandler creates a handler for courier order queries.
func NewGetCourierOrdersQueryHandler(db *gorm.DB) GetCourierOrdersQueryHandler {
	return GetCourierOrdersQueryHandler{db: db}
}

// Handle executes the query, most recent orders first.
func (h GetCourierOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCourierOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE courier_id = ?
		ORDER BY time_of_creation DESC
	`, query.CourierID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}
