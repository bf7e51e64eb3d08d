package account

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// Domain errors for customer operations.
var (
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer constructor")
	// ErrCustomerNameIsRequired is returned when attempting to create a customer without a name.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrLocationIsRequired is returned when an operation needs the customer's
	// delivery location and none has been set.
	ErrLocationIsRequired = errs.NewValueIsRequiredError("location")
)

// Customer is the paying side of the marketplace.
//
// The balance is a ledger with exactly two mutation paths: Debit during
// checkout and Credit during an explicit top-up. It can never go negative;
// a debit that would overdraw fails with an insufficient balance error and
// leaves the balance untouched.
//
// The location is the customer's delivery destination, a free-form address
// or a "lat,lon" pair. It may be empty until the customer sets it; checkout
// requires it to be present.
type Customer struct {
	id       kernel.UUID
	name     string
	location string
	balance  float64
	guard    guard.ConstructorGuard
}

// NewCustomer creates a customer with a zero balance and no location.
func NewCustomer(id kernel.UUID, name string) (*Customer, error) {
	customer := &Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setName(name),
	); err != nil {
		return nil, err
	}

	return customer, nil
}

// RestoreCustomer reconstructs a Customer from persistent storage.
// The balance must be non-negative; a negative stored balance means the
// ledger invariant was broken outside the aggregate and is rejected.
func RestoreCustomer(id kernel.UUID, name string, location string, balance float64) (*Customer, error) {
	customer, err := NewCustomer(id, name)
	if err != nil {
		return nil, err
	}
	if balance < 0 {
		return nil, errs.NewValueIsInvalidError("balance")
	}

	customer.location = location
	customer.balance = balance
	return customer, nil
}

// Validate ensures the Customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil || c.guard.Validate(ErrCustomerIsNotConstructed) != nil {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Location returns the customer's delivery destination,
// or an empty string if none has been set.
func (c *Customer) Location() string {
	return c.location
}

// Balance returns the current balance.
func (c *Customer) Balance() float64 {
	return c.balance
}

// HasLocation reports whether a delivery destination is set.
func (c *Customer) HasLocation() bool {
	return c.location != ""
}

// SetLocation updates the customer's delivery destination.
func (c *Customer) SetLocation(location string) error {
	if location == "" {
		return ErrLocationIsRequired
	}
	c.location = location
	return nil
}

// Debit withdraws amount from the balance.
// The amount must be positive. Fails with an insufficient balance error
// when the balance would go negative, leaving the balance unchanged.
func (c *Customer) Debit(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidError("amount")
	}
	if c.balance < amount {
		return errs.NewInsufficientBalanceError(c.balance, amount)
	}

	c.balance -= amount
	return nil
}

// Credit deposits amount to the balance. The amount must be positive.
func (c *Customer) Credit(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidError("amount")
	}

	c.balance += amount
	return nil
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}
	c.name = name
	return nil
}
