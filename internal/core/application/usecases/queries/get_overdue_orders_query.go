package queries

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"fooddelivery/internal/pkg/guard"
)

var (
	ErrGetOverdueOrdersQueryIsNotConstructed = errors.New(
		"GetOverdueOrdersQuery must be created via NewGetOverdueOrdersQuery constructor",
	)
)

// GetOverdueOrdersQuery retrieves orders whose expected delivery time has
// passed without the courier closing them. Feeds the overdue watch job.
type GetOverdueOrdersQuery struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewGetOverdueOrdersQuery creates a query for orders overdue at the given moment.
func NewGetOverdueOrdersQuery(now time.Time) (GetOverdueOrdersQuery, error) {
	if now.IsZero() {
		return GetOverdueOrdersQuery{}, errors.New("now must not be zero")
	}

	return GetOverdueOrdersQuery{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOverdueOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueOrdersQueryIsNotConstructed)
}

// Now returns the reference moment for the overdue check.
func (q GetOverdueOrdersQuery) Now() time.Time {
	return q.now
}

// GetOverdueOrdersQueryHandler lists overdue orders from the database.
type GetOverdueOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueOrdersQueryHandler creates a handler for overdue order queries.
func NewGetOverdueOrdersQueryHandler(db *gorm.DB) GetOverdueOrdersQueryHandler {
	return GetOverdueOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders without an ETA (not claimed yet) are
// never overdue.
func (h GetOverdueOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE time_of_delivery IS NULL
		  AND expected_time_of_delivery IS NOT NULL
		  AND expected_time_of_delivery < ?
		ORDER BY expected_time_of_delivery
	`, query.Now()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}
