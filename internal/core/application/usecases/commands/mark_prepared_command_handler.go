package commands

import (
	"context"
)

// MarkPreparedCommandHandler moves an order from Created to Prepared on
// behalf of a kitchen worker.
type MarkPreparedCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkPreparedCommandHandler creates a handler for kitchen preparation reports.
func NewMarkPreparedCommandHandler(uowFactory OrderUoWFactory) MarkPreparedCommandHandler {
	return MarkPreparedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the preparation report.
// The order row is locked so a transition cannot race a concurrent claim
// and silently overwrite it. Fails with object not found for a missing
// order and conflict when the order left Created status already.
func (h *MarkPreparedCommandHandler) Handle(ctx context.Context, cmd MarkPreparedCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.MarkPrepared(cmd.KitchenWorkerID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
