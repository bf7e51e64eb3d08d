package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrAddDishToCartCommandIsNotConstructed = errors.New(
		"AddDishToCartCommand must be created via NewAddDishToCartCommand constructor",
	)
)

// AddDishToCartCommand represents a request to put quantity units of a dish
// into the customer's cart. Adding a dish that is already in the cart
// increments its quantity instead of duplicating the line.
type AddDishToCartCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	dishID     kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

// NewAddDishToCartCommand creates a command to add a dish to a cart.
// Validates that both identifiers are valid and the quantity is positive.
func NewAddDishToCartCommand(customerID kernel.UUID, dishID kernel.UUID, quantity int) (AddDishToCartCommand, error) {
	cmd := AddDishToCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setDishID(dishID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddDishToCartCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddDishToCartCommand) Validate() error {
	return c.guard.Validate(ErrAddDishToCartCommandIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (c AddDishToCartCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// DishID returns the identifier of the dish being added.
func (c AddDishToCartCommand) DishID() kernel.UUID {
	return c.dishID
}

// Quantity returns how many units to add.
func (c AddDishToCartCommand) Quantity() int {
	return c.quantity
}

func (c *AddDishToCartCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *AddDishToCartCommand) setDishID(dishID kernel.UUID) error {
	if err := dishID.Validate(); err != nil {
		return err
	}

	c.dishID = dishID
	return nil
}

func (c *AddDishToCartCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	c.quantity = quantity
	return nil
}
