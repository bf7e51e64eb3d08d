package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

func TestAddDishToCartCommandHandler_Handle_CreatesCartLazily(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	dishID := kernel.NewUUID()
	d := restoreDish(t, dishID, 100, 200)
	customer := restoreCustomer(t, customerID, 100)

	customerRepo := new(MockCustomerRepository)
	dishRepo := new(MockDishRepository)
	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CustomerRepository").Return(customerRepo).Once()
	uow.On("DishRepository").Return(dishRepo).Once()
	uow.On("CartRepository").Return(cartRepo).Once()
	customerRepo.On("Get", ctx, customerID).Return(customer, nil).Once()
	dishRepo.On("Get", ctx, dishID).Return(d, nil).Once()
	cartRepo.On("GetByCustomer", ctx, customerID).
		Return(nil, errs.NewObjectNotFoundError("cart", customerID)).Once()
	cartRepo.On("Add", ctx, mock.AnythingOfType("*cart.Cart")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewAddDishToCartCommand(customerID, dishID, 2)
	require.NoError(t, err)

	h := commands.NewAddDishToCartCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	created := cartRepo.Calls[1].Arguments.Get(1).(*cart.Cart)
	assert.True(t, created.CustomerID().IsEqual(customerID))
	require.Len(t, created.Items(), 1)
	assert.Equal(t, 2, created.Items()[0].Quantity())
	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddDishToCartCommandHandler_Handle_MergesIntoExistingCart(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	dishID := kernel.NewUUID()
	d := restoreDish(t, dishID, 100, 200)
	customer := restoreCustomer(t, customerID, 100)

	existing, err := cart.NewCart(kernel.NewUUID(), customerID)
	require.NoError(t, err)
	require.NoError(t, existing.AddDish(dishID, 1))

	customerRepo := new(MockCustomerRepository)
	dishRepo := new(MockDishRepository)
	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CustomerRepository").Return(customerRepo).Once()
	uow.On("DishRepository").Return(dishRepo).Once()
	uow.On("CartRepository").Return(cartRepo).Once()
	customerRepo.On("Get", ctx, customerID).Return(customer, nil).Once()
	dishRepo.On("Get", ctx, dishID).Return(d, nil).Once()
	cartRepo.On("GetByCustomer", ctx, customerID).Return(existing, nil).Once()
	cartRepo.On("Update", ctx, existing).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewAddDishToCartCommand(customerID, dishID, 3)
	require.NoError(t, err)

	h := commands.NewAddDishToCartCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	// 1 already in the cart plus 3 added, merged into a single line.
	require.Len(t, existing.Items(), 1)
	assert.Equal(t, 4, existing.Items()[0].Quantity())
	cartRepo.AssertExpectations(t)
}

func TestAddDishToCartCommandHandler_Handle_DishNotFound(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	dishID := kernel.NewUUID()
	customer := restoreCustomer(t, customerID, 100)

	customerRepo := new(MockCustomerRepository)
	dishRepo := new(MockDishRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CustomerRepository").Return(customerRepo).Once()
	uow.On("DishRepository").Return(dishRepo).Once()
	customerRepo.On("Get", ctx, customerID).Return(customer, nil).Once()
	dishRepo.On("Get", ctx, dishID).
		Return(nil, errs.NewObjectNotFoundError("dish", dishID)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewAddDishToCartCommand(customerID, dishID, 1)
	require.NoError(t, err)

	h := commands.NewAddDishToCartCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAddDishToCartCommandHandler_Handle_CustomerNotFound(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	dishID := kernel.NewUUID()

	customerRepo := new(MockCustomerRepository)
	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CustomerRepository").Return(customerRepo).Once()
	customerRepo.On("Get", ctx, customerID).
		Return(nil, errs.NewObjectNotFoundError("customer", customerID)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewAddDishToCartCommand(customerID, dishID, 1)
	require.NoError(t, err)

	h := commands.NewAddDishToCartCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	cartRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewAddDishToCartCommand_Validation(t *testing.T) {
	_, err := commands.NewAddDishToCartCommand(kernel.NewUUID(), kernel.NewUUID(), 0)
	assert.Error(t, err)

	_, err = commands.NewAddDishToCartCommand(kernel.UUID{}, kernel.NewUUID(), 1)
	assert.Error(t, err)
}
