// Package cartrepo persists cart aggregates into the carts and cart_items
// tables and restores them back into domain objects.
package cartrepo

import (
	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartDTO is the database representation of a cart aggregate.
// A customer has at most one cart, enforced by the unique index.
type CartDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Items      []ItemDTO `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "carts".
func (CartDTO) TableName() string {
	return "carts"
}

// ItemDTO is the database representation of a single cart line.
type ItemDTO struct {
	CartID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	DishID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity int       `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "cart_items".
func (ItemDTO) TableName() string {
	return "cart_items"
}

func fromDomain(aggregate *cart.Cart) CartDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			CartID:   aggregate.ID().Bytes(),
			DishID:   item.DishID().Bytes(),
			Quantity: item.Quantity(),
		})
	}

	return CartDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		Items:      items,
	}
}

func toDomain(dto CartDTO) (*cart.Cart, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*cart.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		dishID, dishErr := kernel.UUIDFromBytes(itemDTO.DishID[:])
		if dishErr != nil {
			return nil, dishErr
		}

		item, itemErr := cart.NewItem(dishID, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return cart.RestoreCart(id, customerID, items)
}
