package queries

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrGetAllDishesQueryIsNotConstructed = errors.New(
		"GetAllDishesQuery must be created via NewGetAllDishesQuery constructor",
	)
)

// GetAllDishesQuery retrieves the menu.
type GetAllDishesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllDishesQuery creates a query to list the menu.
func NewGetAllDishesQuery() GetAllDishesQuery {
	return GetAllDishesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllDishesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllDishesQueryIsNotConstructed)
}

// DishResponse represents one menu position in the read model.
type DishResponse struct {
	ID              kernel.UUID
	Name            string
	Price           float64
	Weight          float64
	Category        string
	PrepTimeMinutes int
}

// GetAllDishesQueryHandler lists the menu from the database.
type GetAllDishesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllDishesQueryHandler creates a handler for menu queries.
func NewGetAllDishesQueryHandler(db *gorm.DB) GetAllDishesQueryHandler {
	return GetAllDishesQueryHandler{db: db}
}

// Handle executes the query, grouped by category then name.
func (h GetAllDishesQueryHandler) Handle(
	ctx context.Context,
	query GetAllDishesQuery,
) ([]DishResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	dishes := make([]DishResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			weight,
			category,
			prep_time_minutes
		FROM dishes
		ORDER BY category, name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp DishResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Price,
			&resp.Weight,
			&resp.Category,
			&resp.PrepTimeMinutes,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		dishes = append(dishes, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return dishes, nil
}
