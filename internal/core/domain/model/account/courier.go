package account

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier or RestoreCourier constructor")
	// ErrCourierNameIsRequired is returned when attempting to create a courier without a name.
	ErrCourierNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Courier delivers orders.
//
// The location is the courier's last reported position. It is unset for a
// courier who has never claimed an order and is refreshed on every claim
// from the coordinates the courier submits, so the next distance calculation
// starts from where the courier actually is.
type Courier struct {
	id       kernel.UUID
	name     string
	location *kernel.GeoPoint
	rating   float64
	rate     float64
	guard    guard.ConstructorGuard
}

// NewCourier creates a courier with no known location.
// Rating and rate must be non-negative.
func NewCourier(id kernel.UUID, name string, rating float64, rate float64) (*Courier, error) {
	courier := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setName(name),
		courier.setRating(rating),
		courier.setRate(rate),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// RestoreCourier reconstructs a Courier from persistent storage.
// A stored location, if present, must be a constructed GeoPoint.
func RestoreCourier(id kernel.UUID, name string, location *kernel.GeoPoint,
	rating float64, rate float64) (*Courier, error) {
	courier, err := NewCourier(id, name, rating, rate)
	if err != nil {
		return nil, err
	}
	if location != nil {
		if err := location.Validate(); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("location", err)
		}
		courier.location = location
	}

	return courier, nil
}

// Validate ensures the Courier was created through a constructor.
func (c *Courier) Validate() error {
	if c == nil || c.guard.Validate(ErrCourierIsNotConstructed) != nil {
		return ErrCourierIsNotConstructed
	}
	return nil
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's display name.
func (c *Courier) Name() string {
	return c.name
}

// Location returns the courier's last reported position, or nil if unknown.
func (c *Courier) Location() *kernel.GeoPoint {
	return c.location
}

// Rating returns the courier's service rating.
func (c *Courier) Rating() float64 {
	return c.rating
}

// Rate returns the courier's pay rate.
func (c *Courier) Rate() float64 {
	return c.rate
}

// SetLocation records the courier's current position.
func (c *Courier) SetLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("location", err)
	}

	c.location = &location
	return nil
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrCourierNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Courier) setRating(rating float64) error {
	if rating < 0 {
		return errs.NewValueIsInvalidError("rating")
	}
	c.rating = rating
	return nil
}

func (c *Courier) setRate(rate float64) error {
	if rate < 0 {
		return errs.NewValueIsInvalidError("rate")
	}
	c.rate = rate
	return nil
}
