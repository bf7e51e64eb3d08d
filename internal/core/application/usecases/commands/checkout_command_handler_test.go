package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/dish"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

func restoreCustomer(t *testing.T, id kernel.UUID, balance float64) *account.Customer {
	t.Helper()
	customer, err := account.RestoreCustomer(id, "Alice", "53.9006,27.5590", balance)
	require.NoError(t, err)
	return customer
}

func restoreDish(t *testing.T, id kernel.UUID, price, weight float64) *dish.Dish {
	t.Helper()
	d, err := dish.RestoreDish(id, "Pizza", price, weight, "main", 20)
	require.NoError(t, err)
	return d
}

func cartWith(t *testing.T, customerID kernel.UUID, items map[kernel.UUID]int) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(kernel.NewUUID(), customerID)
	require.NoError(t, err)
	for dishID, qty := range items {
		require.NoError(t, c.AddDish(dishID, qty))
	}
	return c
}

func TestCheckoutCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	dishA := kernel.NewUUID()
	dishB := kernel.NewUUID()

	customer := restoreCustomer(t, customerID, 300)
	customerCart := cartWith(t, customerID, map[kernel.UUID]int{dishA: 2, dishB: 1})
	dishes := []*dish.Dish{
		restoreDish(t, dishA, 100, 200),
		restoreDish(t, dishB, 50, 100),
	}

	customerRepo := new(MockCustomerRepository)
	cartRepo := new(MockCartRepository)
	dishRepo := new(MockDishRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CustomerRepository").Return(customerRepo)
	uow.On("CartRepository").Return(cartRepo)
	uow.On("DishRepository").Return(dishRepo)
	uow.On("OrderRepository").Return(orderRepo)
	customerRepo.On("GetForUpdate", ctx, customerID).Return(customer, nil).Once()
	cartRepo.On("GetByCustomer", ctx, customerID).Return(customerCart, nil).Once()
	dishRepo.On("GetByIDs", ctx, mock.Anything).Return(dishes, nil).Once()
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	customerRepo.On("Update", ctx, customer).Return(nil).Once()
	cartRepo.On("Update", ctx, customerCart).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewCheckoutCommand(orderID, customerID)
	require.NoError(t, err)

	h := commands.NewCheckoutCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	// 2×100 + 1×50 debited from 300.
	assert.InDelta(t, 50.0, customer.Balance(), 1e-9)
	assert.True(t, customerCart.IsEmpty())

	created := orderRepo.Calls[0].Arguments.Get(1).(*order.Order)
	assert.True(t, created.ID().IsEqual(orderID))
	assert.InDelta(t, 250.0, created.Price(), 1e-9)
	assert.InDelta(t, 500.0, created.Weight(), 1e-9)
	assert.Equal(t, order.Created, created.Status())
	assert.Equal(t, customer.Location(), created.Address())

	orderRepo.AssertExpectations(t)
	customerRepo.AssertExpectations(t)
	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_InsufficientBalance(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	dishA := kernel.NewUUID()

	customer := restoreCustomer(t, customerID, 100)
	customerCart := cartWith(t, customerID, map[kernel.UUID]int{dishA: 2})
	dishes := []*dish.Dish{restoreDish(t, dishA, 100, 200)}

	customerRepo := new(MockCustomerRepository)
	cartRepo := new(MockCartRepository)
	dishRepo := new(MockDishRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CustomerRepository").Return(customerRepo)
	uow.On("CartRepository").Return(cartRepo)
	uow.On("DishRepository").Return(dishRepo)
	customerRepo.On("GetForUpdate", ctx, customerID).Return(customer, nil).Once()
	cartRepo.On("GetByCustomer", ctx, customerID).Return(customerCart, nil).Once()
	dishRepo.On("GetByIDs", ctx, mock.Anything).Return(dishes, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewCheckoutCommand(kernel.NewUUID(), customerID)
	require.NoError(t, err)

	h := commands.NewCheckoutCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	assert.True(t, errors.Is(err, errs.ErrInsufficientBalance))
	assert.InDelta(t, 100.0, customer.Balance(), 1e-9)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_EmptyCart(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()

	customer := restoreCustomer(t, customerID, 300)
	emptyCart, err := cart.NewCart(kernel.NewUUID(), customerID)
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CustomerRepository").Return(customerRepo)
	uow.On("CartRepository").Return(cartRepo)
	customerRepo.On("GetForUpdate", ctx, customerID).Return(customer, nil).Once()
	cartRepo.On("GetByCustomer", ctx, customerID).Return(emptyCart, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewCheckoutCommand(kernel.NewUUID(), customerID)
	require.NoError(t, err)

	h := commands.NewCheckoutCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	assert.True(t, errors.Is(err, errs.ErrConflict))
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCheckoutCommandHandler_Handle_NoCustomerLocation(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()

	customer, err := account.RestoreCustomer(customerID, "Alice", "", 300)
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CustomerRepository").Return(customerRepo)
	customerRepo.On("GetForUpdate", ctx, customerID).Return(customer, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewCheckoutCommand(kernel.NewUUID(), customerID)
	require.NoError(t, err)

	h := commands.NewCheckoutCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	assert.True(t, errors.Is(err, errs.ErrObjectNotFound))
}

func TestCheckoutCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewCheckoutCommandHandler(new(MockCheckoutUoWFactory))
	err := h.Handle(t.Context(), commands.CheckoutCommand{})
	require.Error(t, err)
}

func TestNewCheckoutCommand_Validation(t *testing.T) {
	_, err := commands.NewCheckoutCommand(kernel.UUID{}, kernel.NewUUID())
	assert.Error(t, err)

	_, err = commands.NewCheckoutCommand(kernel.NewUUID(), kernel.UUID{})
	assert.Error(t, err)
}
