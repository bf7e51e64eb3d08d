package commands_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

func newAssignedOrder(t *testing.T, courierID kernel.UUID) *order.Order {
	t.Helper()

	o := newCreatedOrder(t)
	require.NoError(t, o.MarkPrepared(kernel.NewUUID()))
	require.NoError(t, o.Assign(courierID, time.Now().UTC().Add(45*time.Minute)))
	return o
}

func TestMarkDeliveredCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	o := newAssignedOrder(t, courierID)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		orderRepo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewMarkDeliveredCommand(o.ID(), courierID)
	require.NoError(t, err)

	h := commands.NewMarkDeliveredCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.True(t, o.IsDelivered())
	require.NotNil(t, o.TimeOfDelivery())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMarkDeliveredCommandHandler_Handle_WrongCourier(t *testing.T) {
	ctx := t.Context()
	o := newAssignedOrder(t, kernel.NewUUID())

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewMarkDeliveredCommand(o.ID(), kernel.NewUUID())
	require.NoError(t, err)

	h := commands.NewMarkDeliveredCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	assert.True(t, errors.Is(err, errs.ErrForbidden))
	assert.False(t, o.IsDelivered())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestMarkDeliveredCommandHandler_Handle_AlreadyDelivered(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	o := newAssignedOrder(t, courierID)
	require.NoError(t, o.Complete(courierID, time.Now().UTC()))

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewMarkDeliveredCommand(o.ID(), courierID)
	require.NoError(t, err)

	h := commands.NewMarkDeliveredCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	assert.True(t, errors.Is(err, errs.ErrConflict))
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
