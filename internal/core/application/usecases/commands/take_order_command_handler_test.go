package commands_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
)

func restorePreparedOrder(t *testing.T, address string) *order.Order {
	t.Helper()

	line, err := order.NewLine(kernel.NewUUID(), 1, 100, 200, 20)
	require.NoError(t, err)

	worker := kernel.NewUUID()
	o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), address,
		[]*order.Line{line}, 100, 200, order.Prepared, nil, &worker,
		time.Now().UTC().Add(-10*time.Minute), nil, nil)
	require.NoError(t, err)
	return o
}

func restoreCourier(t *testing.T, id kernel.UUID) *account.Courier {
	t.Helper()
	courier, err := account.RestoreCourier(id, "Bob", nil, 4.8, 120)
	require.NoError(t, err)
	return courier
}

func newETACalculator(t *testing.T) services.ETACalculator {
	t.Helper()
	calc, err := services.NewETACalculator(50, 30)
	require.NoError(t, err)
	return calc
}

func TestTakeOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	o := restorePreparedOrder(t, "53.9045,27.5615")
	courier := restoreCourier(t, courierID)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)
	geocoder := new(MockGeocoder)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("CourierRepository").Return(courierRepo)
	orderRepo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	courierRepo.On("Get", ctx, courierID).Return(courier, nil).Once()
	orderRepo.On("Update", ctx, o).Return(nil).Once()
	courierRepo.On("Update", ctx, courier).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockClaimUoWFactory)
	factory.On("Create").Return(uow).Once()

	// Both locations are coordinate pairs, so the geocoder must stay silent.
	cmd, err := commands.NewTakeOrderCommand(o.ID(), courierID, "53.9006,27.5590")
	require.NoError(t, err)

	h := commands.NewTakeOrderCommandHandler(factory, geocoder, newETACalculator(t))
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Assigned, o.Status())
	require.NotNil(t, o.CourierID())
	assert.True(t, o.CourierID().IsEqual(courierID))
	require.NotNil(t, o.ExpectedTimeOfDelivery())
	assert.True(t, o.ExpectedTimeOfDelivery().After(o.TimeOfCreation()))
	require.NotNil(t, courier.Location())

	geocoder.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
	orderRepo.AssertExpectations(t)
	courierRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestTakeOrderCommandHandler_Handle_GeocodesAddresses(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	o := restorePreparedOrder(t, "Minsk, Kalvariyskaya 1")
	courier := restoreCourier(t, courierID)

	courierPoint, err := kernel.NewGeoPoint(53.9006, 27.5590)
	require.NoError(t, err)
	deliveryPoint, err := kernel.NewGeoPoint(53.9045, 27.5615)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)
	geocoder := new(MockGeocoder)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("CourierRepository").Return(courierRepo)
	orderRepo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	courierRepo.On("Get", ctx, courierID).Return(courier, nil).Once()
	geocoder.On("Resolve", ctx, "Minsk, Nezavisimosti 10").Return(courierPoint, nil).Once()
	geocoder.On("Resolve", ctx, "Minsk, Kalvariyskaya 1").Return(deliveryPoint, nil).Once()
	orderRepo.On("Update", ctx, o).Return(nil).Once()
	courierRepo.On("Update", ctx, courier).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockClaimUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewTakeOrderCommand(o.ID(), courierID, "Minsk, Nezavisimosti 10")
	require.NoError(t, err)

	h := commands.NewTakeOrderCommandHandler(factory, geocoder, newETACalculator(t))
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, courier.Location())
	moved, err := courier.Location().IsEqual(courierPoint)
	require.NoError(t, err)
	assert.True(t, moved)
	geocoder.AssertExpectations(t)
}

func TestTakeOrderCommandHandler_Handle_AlreadyClaimed(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	o := restorePreparedOrder(t, "53.9045,27.5615")
	require.NoError(t, o.Assign(kernel.NewUUID(), time.Now().UTC().Add(time.Hour)))

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	geocoder := new(MockGeocoder)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	orderRepo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockClaimUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewTakeOrderCommand(o.ID(), courierID, "53.9006,27.5590")
	require.NoError(t, err)

	h := commands.NewTakeOrderCommandHandler(factory, geocoder, newETACalculator(t))
	err = h.Handle(ctx, cmd)

	assert.True(t, errors.Is(err, errs.ErrConflict))
	// An already claimed order must conflict before any geocoding happens.
	geocoder.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestTakeOrderCommandHandler_Handle_NotPreparedYet(t *testing.T) {
	ctx := t.Context()

	line, err := order.NewLine(kernel.NewUUID(), 1, 100, 200, 20)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "53.9045,27.5615",
		[]*order.Line{line}, time.Now().UTC())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	orderRepo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockClaimUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewTakeOrderCommand(o.ID(), kernel.NewUUID(), "53.9006,27.5590")
	require.NoError(t, err)

	h := commands.NewTakeOrderCommandHandler(factory, new(MockGeocoder), newETACalculator(t))
	err = h.Handle(ctx, cmd)

	assert.True(t, errors.Is(err, errs.ErrConflict))
	assert.Nil(t, o.CourierID())
}

func TestTakeOrderCommandHandler_Handle_GeocoderUnavailable(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	o := restorePreparedOrder(t, "Minsk, Kalvariyskaya 1")
	courier := restoreCourier(t, courierID)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)
	geocoder := new(MockGeocoder)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("CourierRepository").Return(courierRepo)
	orderRepo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	courierRepo.On("Get", ctx, courierID).Return(courier, nil).Once()
	geocoder.On("Resolve", ctx, "Minsk, Kalvariyskaya 1").
		Return(kernel.GeoPoint{}, errs.NewUpstreamUnavailableError("geocoder", errors.New("timeout"))).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockClaimUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewTakeOrderCommand(o.ID(), courierID, "53.9006,27.5590")
	require.NoError(t, err)

	h := commands.NewTakeOrderCommandHandler(factory, geocoder, newETACalculator(t))
	err = h.Handle(ctx, cmd)

	assert.True(t, errors.Is(err, errs.ErrUpstreamUnavailable))
	assert.Equal(t, order.Prepared, o.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestTakeOrderCommandHandler_Handle_NoCourierLocation(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	o := restorePreparedOrder(t, "53.9045,27.5615")
	courier := restoreCourier(t, courierID) // no stored location either

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("CourierRepository").Return(courierRepo)
	orderRepo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	courierRepo.On("Get", ctx, courierID).Return(courier, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockClaimUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewTakeOrderCommand(o.ID(), courierID, "")
	require.NoError(t, err)

	h := commands.NewTakeOrderCommandHandler(factory, new(MockGeocoder), newETACalculator(t))
	err = h.Handle(ctx, cmd)

	assert.True(t, errors.Is(err, errs.ErrValueIsRequired))
}
