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
	ErrGetCartQueryIsNotConstructed = errors.New(
		"GetCartQuery must be created via NewGetCartQuery constructor",
	)
)

// GetCartQuery retrieves a customer's cart with its lines priced against the
// current menu. A customer with no cart yet gets an empty response rather
// than an error.
type GetCartQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for a customer's cart.
func NewGetCartQuery(customerID kernel.UUID) (GetCartQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCartQuery{}, err
	}

	return GetCartQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (q GetCartQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// CartItemResponse represents one cart line in the read model, priced at the
// dish's current menu price.
type CartItemResponse struct {
	DishID   kernel.UUID
	Name     string
	Price    float64
	Weight   float64
	Quantity int
}

// CartResponse represents the cart read model with aggregate totals.
type CartResponse struct {
	Items       []CartItemResponse
	TotalPrice  float64
	TotalWeight float64
}

// GetCartQueryHandler assembles the cart read model from the database.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart queries.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle executes the query, joining the cart lines with the menu to price
// them, and summing the totals.
func (h GetCartQueryHandler) Handle(
	ctx context.Context,
	query GetCartQuery,
) (CartResponse, error) {
	if err := query.Validate(); err != nil {
		return CartResponse{}, err
	}

	response := CartResponse{Items: make([]CartItemResponse, 0)}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.name,
			d.price,
			d.weight,
			ci.quantity
		FROM carts c
		JOIN cart_items ci ON ci.cart_id = c.id
		JOIN dishes d ON d.id = ci.dish_id
		WHERE c.customer_id = ?
		ORDER BY d.name
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return CartResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var item CartItemResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&item.Name,
			&item.Price,
			&item.Weight,
			&item.Quantity,
		)
		if err != nil {
			return CartResponse{}, err
		}

		if item.DishID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return CartResponse{}, err
		}

		response.Items = append(response.Items, item)
		response.TotalPrice += item.Price * float64(item.Quantity)
		response.TotalWeight += item.Weight * float64(item.Quantity)
	}

	if err = rows.Err(); err != nil {
		return CartResponse{}, err
	}

	return response, nil
}
