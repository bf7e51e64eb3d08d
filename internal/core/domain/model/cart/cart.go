package cart

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// Domain errors for cart operations.
var (
	// ErrCartIsNotConstructed is returned when using an improperly initialized Cart.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart constructor")
	// ErrCartIsEmpty is returned when checking out a cart with no items.
	ErrCartIsEmpty = errs.NewConflictError("cart is empty")
)

// Cart accumulates dish selections for exactly one customer before checkout.
//
// A cart is created lazily on the first add and destroyed atomically when it
// is converted into an order. Items are an unordered set keyed by dish:
// adding a dish that is already present increments the existing item's
// quantity instead of appending a duplicate line.
type Cart struct {
	id         kernel.UUID
	customerID kernel.UUID
	items      []*Item
	guard      guard.ConstructorGuard
}

// NewCart creates an empty cart owned by the given customer.
func NewCart(id kernel.UUID, customerID kernel.UUID) (*Cart, error) {
	cart := &Cart{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cart.setID(id),
		cart.setCustomerID(customerID),
	); err != nil {
		return nil, err
	}

	return cart, nil
}

// RestoreCart reconstructs a cart with its items from persistent storage.
func RestoreCart(id kernel.UUID, customerID kernel.UUID, items []*Item) (*Cart, error) {
	cart, err := NewCart(id, customerID)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if err = item.Validate(); err != nil {
			return nil, err
		}
	}
	cart.items = items

	return cart, nil
}

// Validate ensures the Cart was created through a constructor.
func (c *Cart) Validate() error {
	if c == nil || c.guard.Validate(ErrCartIsNotConstructed) != nil {
		return ErrCartIsNotConstructed
	}
	return nil
}

// ID returns the cart identifier.
func (c *Cart) ID() kernel.UUID {
	return c.id
}

// CustomerID returns the identifier of the owning customer.
func (c *Cart) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns the cart items. The slice must not be mutated by callers.
func (c *Cart) Items() []*Item {
	return c.items
}

// IsEmpty reports whether the cart has no items.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// AddDish puts quantity units of a dish into the cart.
// Quantity must be positive. If the dish is already present the quantities
// are merged, keeping one item per dish.
func (c *Cart) AddDish(dishID kernel.UUID, quantity int) error {
	if err := dishID.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	for _, item := range c.items {
		if item.DishID().IsEqual(dishID) {
			item.addQuantity(quantity)
			return nil
		}
	}

	item, err := NewItem(dishID, quantity)
	if err != nil {
		return err
	}
	c.items = append(c.items, item)

	return nil
}

// Clear removes all items. Called when the cart is converted into an order.
func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Cart) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}
