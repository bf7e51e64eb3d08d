package cart

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a (dish, quantity) pair within a cart. Quantity is always at least 1;
// merging happens at the cart level, so an item never duplicates a dish.
type Item struct {
	dishID   kernel.UUID
	quantity int
	guard    guard.ConstructorGuard
}

// NewItem creates a cart item holding quantity units of a dish.
func NewItem(dishID kernel.UUID, quantity int) (*Item, error) {
	if err := dishID.Validate(); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidError("quantity")
	}

	return &Item{
		dishID:   dishID,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Item was created through its constructor.
func (i *Item) Validate() error {
	if i == nil || i.guard.Validate(ErrItemIsNotConstructed) != nil {
		return ErrItemIsNotConstructed
	}
	return nil
}

// DishID returns the identifier of the dish this item refers to.
func (i *Item) DishID() kernel.UUID {
	return i.dishID
}

// Quantity returns the number of units of the dish.
func (i *Item) Quantity() int {
	return i.quantity
}

func (i *Item) addQuantity(quantity int) {
	i.quantity += quantity
}
