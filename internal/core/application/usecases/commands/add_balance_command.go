package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrAddBalanceCommandIsNotConstructed = errors.New(
		"AddBalanceCommand must be created via NewAddBalanceCommand constructor",
	)
)

// AddBalanceCommand represents an explicit balance top-up. Together with the
// checkout debit it is the only way the balance ever changes.
type AddBalanceCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	amount     float64

	guard guard.ConstructorGuard
}

// NewAddBalanceCommand creates a top-up command. The amount must be positive.
func NewAddBalanceCommand(customerID kernel.UUID, amount float64) (AddBalanceCommand, error) {
	cmd := AddBalanceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setAmount(amount),
	); err != nil {
		return AddBalanceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddBalanceCommand) Validate() error {
	return c.guard.Validate(ErrAddBalanceCommandIsNotConstructed)
}

// CustomerID returns the identifier of the customer being credited.
func (c AddBalanceCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Amount returns the credited amount.
func (c AddBalanceCommand) Amount() float64 {
	return c.amount
}

func (c *AddBalanceCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *AddBalanceCommand) setAmount(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidError("amount")
	}

	c.amount = amount
	return nil
}
