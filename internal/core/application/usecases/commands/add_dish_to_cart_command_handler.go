package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// AddDishToCartCommandHandler handles the business logic for cart additions.
// The cart is created lazily on the customer's first add; after that, adds
// merge into the existing cart.
type AddDishToCartCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddDishToCartCommandHandler creates a handler for cart additions.
func NewAddDishToCartCommandHandler(uowFactory CartUoWFactory) AddDishToCartCommandHandler {
	return AddDishToCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cart addition command.
// Verifies the customer and the dish exist, then merges the requested
// quantity into the customer's cart, creating the cart if the customer has
// none yet.
func (h *AddDishToCartCommandHandler) Handle(ctx context.Context, cmd AddDishToCartCommand) error {
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

	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	if _, err := uow.DishRepository().Get(ctx, cmd.DishID()); err != nil {
		return err
	}

	cartRepo := uow.CartRepository()
	customerCart, err := cartRepo.GetByCustomer(ctx, cmd.CustomerID())

	switch {
	case err == nil:
		if err = customerCart.AddDish(cmd.DishID(), cmd.Quantity()); err != nil {
			return err
		}
		if err = cartRepo.Update(ctx, customerCart); err != nil {
			return err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		customerCart, err = cart.NewCart(kernel.NewUUID(), cmd.CustomerID())
		if err != nil {
			return err
		}
		if err = customerCart.AddDish(cmd.DishID(), cmd.Quantity()); err != nil {
			return err
		}
		if err = cartRepo.Add(ctx, customerCart); err != nil {
			return err
		}
	default:
		return err
	}

	return uow.Commit(ctx)
}
