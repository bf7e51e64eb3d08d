package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/dish"
)

// CreateDishCommandHandler adds a dish to the menu.
type CreateDishCommandHandler struct {
	uowFactory DishUoWFactory
}

// NewCreateDishCommandHandler creates a handler for menu additions.
func NewCreateDishCommandHandler(uowFactory DishUoWFactory) CreateDishCommandHandler {
	return CreateDishCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the menu addition.
func (h *CreateDishCommandHandler) Handle(ctx context.Context, cmd CreateDishCommand) error {
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

	newDish, err := dish.NewDish(cmd.DishID(), cmd.Name(), cmd.Price(), cmd.Weight(),
		cmd.Category(), cmd.PrepTimeMinutes())
	if err != nil {
		return err
	}

	if err = uow.DishRepository().Add(ctx, newDish); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
