package dish

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// Domain errors for dish construction.
var (
	// ErrDishIsNotConstructed is returned when using an improperly initialized Dish.
	ErrDishIsNotConstructed = errors.New("Dish must be created via NewDish or RestoreDish constructor")
	// ErrNameIsRequired is returned when attempting to create a dish without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCategoryIsRequired is returned when attempting to create a dish without a category.
	ErrCategoryIsRequired = errs.NewValueIsRequiredError("category")
)

// Dish represents a menu item offered by the restaurant.
//
// A dish is effectively immutable once it has been referenced by a placed
// order: orders snapshot the price and weight per line at creation time, so
// later menu edits never rewrite order history.
//
// Business rules:
//   - Price and weight must be positive
//   - Preparation time is expressed in whole minutes and may be zero when
//     unknown; ETA calculation substitutes a configured fallback in that case
type Dish struct {
	id              kernel.UUID
	name            string
	price           float64
	weight          float64
	category        string
	prepTimeMinutes int
	guard           guard.ConstructorGuard
}

// NewDish creates a Dish with validated attributes.
// Price and weight must be positive, name and category non-empty, and the
// preparation time non-negative minutes (zero means unknown).
func NewDish(
	id kernel.UUID, name string, price, weight float64, category string, prepTimeMinutes int,
) (*Dish, error) {
	dish := &Dish{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		dish.setID(id),
		dish.setName(name),
		dish.setPrice(price),
		dish.setWeight(weight),
		dish.setCategory(category),
		dish.setPrepTimeMinutes(prepTimeMinutes),
	); err != nil {
		return nil, err
	}

	return dish, nil
}

// RestoreDish reconstructs a Dish from persistent storage.
// Applies the same validation as NewDish; rows that no longer satisfy the
// invariants surface as errors instead of silently corrupt aggregates.
func RestoreDish(
	id kernel.UUID, name string, price, weight float64, category string, prepTimeMinutes int,
) (*Dish, error) {
	return NewDish(id, name, price, weight, category, prepTimeMinutes)
}

// Validate ensures the Dish was created through a constructor.
func (d *Dish) Validate() error {
	if d == nil || d.guard.Validate(ErrDishIsNotConstructed) != nil {
		return ErrDishIsNotConstructed
	}
	return nil
}

// IsEqual compares two dishes by identifier.
func (d *Dish) IsEqual(other *Dish) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the dish identifier.
func (d *Dish) ID() kernel.UUID {
	return d.id
}

// Name returns the dish name.
func (d *Dish) Name() string {
	return d.name
}

// Price returns the unit price.
func (d *Dish) Price() float64 {
	return d.price
}

// Weight returns the unit weight in grams.
func (d *Dish) Weight() float64 {
	return d.weight
}

// Category returns the menu category name.
func (d *Dish) Category() string {
	return d.category
}

// PrepTimeMinutes returns the preparation time in minutes, zero when unknown.
func (d *Dish) PrepTimeMinutes() int {
	return d.prepTimeMinutes
}

func (d *Dish) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Dish) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}

func (d *Dish) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidError("price")
	}
	d.price = price
	return nil
}

func (d *Dish) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidError("weight")
	}
	d.weight = weight
	return nil
}

func (d *Dish) setCategory(category string) error {
	if category == "" {
		return ErrCategoryIsRequired
	}
	d.category = category
	return nil
}

func (d *Dish) setPrepTimeMinutes(minutes int) error {
	if minutes < 0 {
		return errs.NewValueIsInvalidError("preparation time")
	}
	d.prepTimeMinutes = minutes
	return nil
}
