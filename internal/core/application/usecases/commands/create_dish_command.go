package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrCreateDishCommandIsNotConstructed = errors.New(
		"CreateDishCommand must be created via NewCreateDishCommand constructor",
	)
	ErrDishNameIsRequired     = errors.New("name is required")
	ErrDishCategoryIsRequired = errors.New("category is required")
)

// CreateDishCommand represents an administrator adding a dish to the menu.
// The caller supplies the identifier the new dish will get.
type CreateDishCommand struct { //nolint:recvcheck //using for validation
	dishID          kernel.UUID
	name            string
	price           float64
	weight          float64
	category        string
	prepTimeMinutes int

	guard guard.ConstructorGuard
}

// NewCreateDishCommand creates a command to add a dish to the menu.
// Price and weight must be positive; the preparation time must be
// non-negative minutes, zero meaning unknown.
func NewCreateDishCommand(dishID kernel.UUID, name string, price, weight float64,
	category string, prepTimeMinutes int) (CreateDishCommand, error) {
	cmd := CreateDishCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDishID(dishID),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setWeight(weight),
		cmd.setCategory(category),
		cmd.setPrepTimeMinutes(prepTimeMinutes),
	); err != nil {
		return CreateDishCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDishCommand) Validate() error {
	return c.guard.Validate(ErrCreateDishCommandIsNotConstructed)
}

// DishID returns the identifier the new dish will get.
func (c CreateDishCommand) DishID() kernel.UUID {
	return c.dishID
}

// Name returns the dish name.
func (c CreateDishCommand) Name() string {
	return c.name
}

// Price returns the dish price.
func (c CreateDishCommand) Price() float64 {
	return c.price
}

// Weight returns the dish weight.
func (c CreateDishCommand) Weight() float64 {
	return c.weight
}

// Category returns the menu category.
func (c CreateDishCommand) Category() string {
	return c.category
}

// PrepTimeMinutes returns the preparation time in minutes.
func (c CreateDishCommand) PrepTimeMinutes() int {
	return c.prepTimeMinutes
}

func (c *CreateDishCommand) setDishID(dishID kernel.UUID) error {
	if err := dishID.Validate(); err != nil {
		return err
	}

	c.dishID = dishID
	return nil
}

func (c *CreateDishCommand) setName(name string) error {
	if name == "" {
		return ErrDishNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateDishCommand) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidError("price")
	}

	c.price = price
	return nil
}

func (c *CreateDishCommand) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidError("weight")
	}

	c.weight = weight
	return nil
}

func (c *CreateDishCommand) setCategory(category string) error {
	if category == "" {
		return ErrDishCategoryIsRequired
	}

	c.category = category
	return nil
}

func (c *CreateDishCommand) setPrepTimeMinutes(prepTimeMinutes int) error {
	if prepTimeMinutes < 0 {
		return errs.NewValueIsInvalidError("prepTimeMinutes")
	}

	c.prepTimeMinutes = prepTimeMinutes
	return nil
}
