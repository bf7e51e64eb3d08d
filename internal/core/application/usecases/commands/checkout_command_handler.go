package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/dish"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

// CheckoutCommandHandler converts a cart into an order.
//
// The whole conversion is one transaction: the customer row is locked, the
// cart lines are priced against the current menu, the balance is debited,
// the order is created in Created status and the cart is emptied. If any
// step fails, nothing is persisted, so a rejected checkout never changes
// the balance or loses the cart.
type CheckoutCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
func NewCheckoutCommandHandler(uowFactory CheckoutUoWFactory) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the checkout command.
//
// Failure modes:
//   - object not found: customer missing, cart missing, or no delivery
//     location set on the customer
//   - conflict: the cart is empty
//   - insufficient balance: the order total exceeds the balance
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) error {
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

	// The customer row is locked first so concurrent checkouts and top-ups
	// for the same customer serialize on the balance.
	customer, err := uow.CustomerRepository().GetForUpdate(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}
	if !customer.HasLocation() {
		return errs.NewObjectNotFoundError("customer location", cmd.CustomerID())
	}

	customerCart, err := uow.CartRepository().GetByCustomer(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}
	if customerCart.IsEmpty() {
		return errs.NewConflictError("cart is empty")
	}

	dishIDs := make([]kernel.UUID, 0, len(customerCart.Items()))
	for _, item := range customerCart.Items() {
		dishIDs = append(dishIDs, item.DishID())
	}
	dishes, err := uow.DishRepository().GetByIDs(ctx, dishIDs)
	if err != nil {
		return err
	}
	dishByID := make(map[kernel.UUID]*dish.Dish, len(dishes))
	for _, d := range dishes {
		dishByID[d.ID()] = d
	}

	lines := make([]*order.Line, 0, len(customerCart.Items()))
	for _, item := range customerCart.Items() {
		d, ok := dishByID[item.DishID()]
		if !ok {
			return errs.NewObjectNotFoundError("dish", item.DishID())
		}

		line, err := order.NewLine(d.ID(), item.Quantity(), d.Price(), d.Weight(), d.PrepTimeMinutes())
		if err != nil {
			return err
		}
		lines = append(lines, line)
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), customer.Location(),
		lines, time.Now().UTC())
	if err != nil {
		return err
	}

	if err = customer.Debit(newOrder.Price()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}
	if err = uow.CustomerRepository().Update(ctx, customer); err != nil {
		return err
	}

	customerCart.Clear()
	if err = uow.CartRepository().Update(ctx, customerCart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
