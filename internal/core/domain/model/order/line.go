package order

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrLineIsNotConstructed is returned when using an improperly initialized Line.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is a single position of an order.
//
// A Line snapshots the dish attributes that matter for the order at the
// moment of checkout: unit price, unit weight and preparation time. Later
// menu edits must not affect already placed orders, so the line never
// dereferences the dish again.
type Line struct {
	dishID          kernel.UUID
	quantity        int
	unitPrice       float64
	unitWeight      float64
	prepTimeMinutes int
	guard           guard.ConstructorGuard
}

// NewLine creates an order line for quantity units of a dish, snapshotting
// its unit price, unit weight and preparation time in minutes.
// Quantity, unit price and unit weight must be positive; the preparation
// time must be non-negative minutes (zero means unknown).
func NewLine(
	dishID kernel.UUID, quantity int, unitPrice, unitWeight float64, prepTimeMinutes int,
) (*Line, error) {
	line := &Line{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setDishID(dishID),
		line.setQuantity(quantity),
		line.setUnitPrice(unitPrice),
		line.setUnitWeight(unitWeight),
		line.setPrepTimeMinutes(prepTimeMinutes),
	); err != nil {
		return nil, err
	}

	return line, nil
}

// RestoreLine reconstructs a Line from persistent storage.
// Applies the same validation as NewLine.
func RestoreLine(
	dishID kernel.UUID, quantity int, unitPrice, unitWeight float64, prepTimeMinutes int,
) (*Line, error) {
	return NewLine(dishID, quantity, unitPrice, unitWeight, prepTimeMinutes)
}

// Validate ensures the Line was created through a constructor.
func (l *Line) Validate() error {
	if l == nil || l.guard.Validate(ErrLineIsNotConstructed) != nil {
		return ErrLineIsNotConstructed
	}
	return nil
}

// DishID returns the identifier of the ordered dish.
func (l *Line) DishID() kernel.UUID {
	return l.dishID
}

// Quantity returns how many units of the dish were ordered.
func (l *Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the price of a single unit at checkout time.
func (l *Line) UnitPrice() float64 {
	return l.unitPrice
}

// UnitWeight returns the weight of a single unit at checkout time.
func (l *Line) UnitWeight() float64 {
	return l.unitWeight
}

// PrepTimeMinutes returns the dish preparation time snapshot in minutes.
// Zero means the preparation time was unknown at checkout.
func (l *Line) PrepTimeMinutes() int {
	return l.prepTimeMinutes
}

// TotalPrice returns quantity times unit price.
func (l *Line) TotalPrice() float64 {
	return float64(l.quantity) * l.unitPrice
}

// TotalWeight returns quantity times unit weight.
func (l *Line) TotalWeight() float64 {
	return float64(l.quantity) * l.unitWeight
}

func (l *Line) setDishID(dishID kernel.UUID) error {
	if err := dishID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("dishID", err)
	}
	l.dishID = dishID
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setUnitPrice(unitPrice float64) error {
	if unitPrice <= 0 {
		return errs.NewValueIsInvalidError("unitPrice")
	}
	l.unitPrice = unitPrice
	return nil
}

func (l *Line) setUnitWeight(unitWeight float64) error {
	if unitWeight <= 0 {
		return errs.NewValueIsInvalidError("unitWeight")
	}
	l.unitWeight = unitWeight
	return nil
}

func (l *Line) setPrepTimeMinutes(prepTimeMinutes int) error {
	if prepTimeMinutes < 0 {
		return errs.NewValueIsInvalidError("prepTimeMinutes")
	}
	l.prepTimeMinutes = prepTimeMinutes
	return nil
}
