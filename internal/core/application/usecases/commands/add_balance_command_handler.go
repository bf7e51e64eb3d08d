package commands

import (
	"context"
)

// AddBalanceCommandHandler credits a customer's balance.
type AddBalanceCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewAddBalanceCommandHandler creates a handler for balance top-ups.
func NewAddBalanceCommandHandler(uowFactory CustomerUoWFactory) AddBalanceCommandHandler {
	return AddBalanceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the top-up. The customer row is locked so concurrent
// credits and checkout debits serialize on the balance.
func (h *AddBalanceCommandHandler) Handle(ctx context.Context, cmd AddBalanceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()
	customer, err := customerRepo.GetForUpdate(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if err = customer.Credit(cmd.Amount()); err != nil {
		return err
	}

	if err = customerRepo.Update(ctx, customer); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
