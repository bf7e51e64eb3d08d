package order

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

func mustLine(t *testing.T, quantity int, unitPrice float64, unitWeight float64,
	prepMinutes int) *Line {
	t.Helper()
	line, err := NewLine(kernel.NewUUID(), quantity, unitPrice, unitWeight, prepMinutes)
	require.NoError(t, err)
	return line
}

func mustOrder(t *testing.T, lines ...*Line) *Order {
	t.Helper()
	o, err := NewOrder(kernel.NewUUID(), kernel.NewUUID(), "53.9006,27.5590", lines, time.Now().UTC())
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	const address = "53.9006,27.5590"

	t.Run("should compute totals from lines", func(t *testing.T) {
		lines := []*Line{
			mustLine(t, 2, 100, 200, 15),
			mustLine(t, 1, 50, 100, 30),
		}

		o, err := NewOrder(kernel.NewUUID(), kernel.NewUUID(), address, lines, time.Now().UTC())
		require.NoError(t, err)

		assert.InDelta(t, 250.0, o.Price(), 1e-9)
		assert.InDelta(t, 500.0, o.Weight(), 1e-9)
		assert.Equal(t, Created, o.Status())
		assert.Nil(t, o.CourierID())
		assert.Nil(t, o.KitchenWorkerID())
		assert.Nil(t, o.ExpectedTimeOfDelivery())
		assert.Nil(t, o.TimeOfDelivery())
		assert.False(t, o.IsPrepared())
		assert.False(t, o.IsDelivered())
	})

	t.Run("should reject empty lines", func(t *testing.T) {
		_, err := NewOrder(kernel.NewUUID(), kernel.NewUUID(), address, nil, time.Now().UTC())
		assert.Error(t, err)
	})

	t.Run("should reject invalid ids", func(t *testing.T) {
		lines := []*Line{mustLine(t, 1, 100, 200, 15)}

		_, err := NewOrder(kernel.UUID{}, kernel.NewUUID(), address, lines, time.Now().UTC())
		assert.Error(t, err)

		_, err = NewOrder(kernel.NewUUID(), kernel.UUID{}, address, lines, time.Now().UTC())
		assert.Error(t, err)
	})

	t.Run("should reject empty address", func(t *testing.T) {
		lines := []*Line{mustLine(t, 1, 100, 200, 15)}

		_, err := NewOrder(kernel.NewUUID(), kernel.NewUUID(), "", lines, time.Now().UTC())
		assert.Error(t, err)
	})

	t.Run("should reject zero creation time", func(t *testing.T) {
		lines := []*Line{mustLine(t, 1, 100, 200, 15)}

		_, err := NewOrder(kernel.NewUUID(), kernel.NewUUID(), address, lines, time.Time{})
		assert.Error(t, err)
	})
}

func TestNewLine(t *testing.T) {
	t.Run("should create valid line", func(t *testing.T) {
		dishID := kernel.NewUUID()
		line, err := NewLine(dishID, 3, 100, 200, 15)
		require.NoError(t, err)

		assert.True(t, line.DishID().IsEqual(dishID))
		assert.Equal(t, 3, line.Quantity())
		assert.InDelta(t, 300.0, line.TotalPrice(), 1e-9)
		assert.InDelta(t, 600.0, line.TotalWeight(), 1e-9)
		assert.Equal(t, 15, line.PrepTimeMinutes())
	})

	t.Run("should reject non positive quantity", func(t *testing.T) {
		_, err := NewLine(kernel.NewUUID(), 0, 100, 200, 15)
		assert.Error(t, err)

		_, err = NewLine(kernel.NewUUID(), -1, 100, 200, 15)
		assert.Error(t, err)
	})

	t.Run("should reject non positive price and weight", func(t *testing.T) {
		_, err := NewLine(kernel.NewUUID(), 1, 0, 200, 15)
		assert.Error(t, err)

		_, err = NewLine(kernel.NewUUID(), 1, 100, 0, 15)
		assert.Error(t, err)
	})

	t.Run("should allow zero prep time as unknown", func(t *testing.T) {
		line, err := NewLine(kernel.NewUUID(), 1, 100, 200, 0)
		require.NoError(t, err)
		assert.Equal(t, 0, line.PrepTimeMinutes())
	})
}

func TestOrderMarkPrepared(t *testing.T) {
	t.Run("should record kitchen worker", func(t *testing.T) {
		o := mustOrder(t, mustLine(t, 1, 100, 200, 15))
		worker := kernel.NewUUID()

		err := o.MarkPrepared(worker)
		require.NoError(t, err)

		assert.Equal(t, Prepared, o.Status())
		assert.True(t, o.IsPrepared())
		require.NotNil(t, o.KitchenWorkerID())
		assert.True(t, o.KitchenWorkerID().IsEqual(worker))
	})

	t.Run("should conflict on second call", func(t *testing.T) {
		o := mustOrder(t, mustLine(t, 1, 100, 200, 15))
		require.NoError(t, o.MarkPrepared(kernel.NewUUID()))

		err := o.MarkPrepared(kernel.NewUUID())
		assert.True(t, errors.Is(err, errs.ErrConflict))
	})
}

func TestOrderAssign(t *testing.T) {
	eta := time.Now().UTC().Add(45 * time.Minute)

	t.Run("should claim prepared order", func(t *testing.T) {
		o := mustOrder(t, mustLine(t, 1, 100, 200, 15))
		require.NoError(t, o.MarkPrepared(kernel.NewUUID()))
		courier := kernel.NewUUID()

		err := o.Assign(courier, eta)
		require.NoError(t, err)

		assert.Equal(t, Assigned, o.Status())
		require.NotNil(t, o.CourierID())
		assert.True(t, o.CourierID().IsEqual(courier))
		require.NotNil(t, o.ExpectedTimeOfDelivery())
		assert.Equal(t, eta, *o.ExpectedTimeOfDelivery())
	})

	t.Run("should conflict when not prepared", func(t *testing.T) {
		o := mustOrder(t, mustLine(t, 1, 100, 200, 15))

		err := o.Assign(kernel.NewUUID(), eta)
		assert.True(t, errors.Is(err, errs.ErrConflict))
		assert.Nil(t, o.CourierID())
	})

	t.Run("should conflict when already claimed", func(t *testing.T) {
		o := mustOrder(t, mustLine(t, 1, 100, 200, 15))
		require.NoError(t, o.MarkPrepared(kernel.NewUUID()))
		winner := kernel.NewUUID()
		require.NoError(t, o.Assign(winner, eta))

		err := o.Assign(kernel.NewUUID(), eta)
		assert.True(t, errors.Is(err, errs.ErrConflict))
		assert.True(t, o.CourierID().IsEqual(winner))
	})
}

func TestOrderComplete(t *testing.T) {
	now := time.Now().UTC()

	newAssignedOrder := func(t *testing.T, courier kernel.UUID) *Order {
		t.Helper()
		o := mustOrder(t, mustLine(t, 1, 100, 200, 15))
		require.NoError(t, o.MarkPrepared(kernel.NewUUID()))
		require.NoError(t, o.Assign(courier, now.Add(45*time.Minute)))
		return o
	}

	t.Run("should deliver by assigned courier", func(t *testing.T) {
		courier := kernel.NewUUID()
		o := newAssignedOrder(t, courier)

		err := o.Complete(courier, now)
		require.NoError(t, err)

		assert.Equal(t, Delivered, o.Status())
		assert.True(t, o.IsDelivered())
		require.NotNil(t, o.TimeOfDelivery())
		assert.Equal(t, now, *o.TimeOfDelivery())
	})

	t.Run("should forbid other couriers", func(t *testing.T) {
		o := newAssignedOrder(t, kernel.NewUUID())

		err := o.Complete(kernel.NewUUID(), now)
		assert.True(t, errors.Is(err, errs.ErrForbidden))
		assert.False(t, o.IsDelivered())
	})

	t.Run("should forbid delivery of unclaimed order", func(t *testing.T) {
		o := mustOrder(t, mustLine(t, 1, 100, 200, 15))

		err := o.Complete(kernel.NewUUID(), now)
		assert.True(t, errors.Is(err, errs.ErrForbidden))
	})

	t.Run("should conflict on double delivery", func(t *testing.T) {
		courier := kernel.NewUUID()
		o := newAssignedOrder(t, courier)
		require.NoError(t, o.Complete(courier, now))

		err := o.Complete(courier, now.Add(time.Minute))
		assert.True(t, errors.Is(err, errs.ErrConflict))
		assert.Equal(t, now, *o.TimeOfDelivery())
	})
}

func TestOrderMaxPrepTimeMinutes(t *testing.T) {
	t.Run("should return longest prep time", func(t *testing.T) {
		o := mustOrder(t,
			mustLine(t, 1, 100, 200, 15),
			mustLine(t, 2, 50, 100, 40),
			mustLine(t, 1, 30, 50, 5),
		)
		assert.Equal(t, 40, o.MaxPrepTimeMinutes())
	})

	t.Run("should return zero when all prep times unknown", func(t *testing.T) {
		o := mustOrder(t, mustLine(t, 1, 100, 200, 0))
		assert.Equal(t, 0, o.MaxPrepTimeMinutes())
	})
}

func TestRestoreOrder(t *testing.T) {
	const address = "53.9006,27.5590"
	created := time.Now().UTC().Add(-time.Hour)

	t.Run("should restore assigned order", func(t *testing.T) {
		courier := kernel.NewUUID()
		eta := created.Add(45 * time.Minute)
		lines := []*Line{mustLine(t, 2, 100, 200, 15)}

		o, err := RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), address, lines,
			200, 400, Assigned, &courier, nil, created, &eta, nil)
		require.NoError(t, err)

		assert.Equal(t, Assigned, o.Status())
		assert.True(t, o.CourierID().IsEqual(courier))
		assert.InDelta(t, 200.0, o.Price(), 1e-9)
	})

	t.Run("should reject courier on unclaimed order", func(t *testing.T) {
		courier := kernel.NewUUID()
		lines := []*Line{mustLine(t, 1, 100, 200, 15)}

		_, err := RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), address, lines,
			100, 200, Created, &courier, nil, created, nil, nil)
		assert.Error(t, err)
	})

	t.Run("should reject delivered order without delivery time", func(t *testing.T) {
		courier := kernel.NewUUID()
		lines := []*Line{mustLine(t, 1, 100, 200, 15)}

		_, err := RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), address, lines,
			100, 200, Delivered, &courier, nil, created, nil, nil)
		assert.Error(t, err)
	})
}

func TestOrderValidate(t *testing.T) {
	t.Run("should reject nil and unconstructed order", func(t *testing.T) {
		var nilOrder *Order
		assert.Error(t, nilOrder.Validate())
		assert.Error(t, (&Order{}).Validate())
	})

	t.Run("should accept constructed order", func(t *testing.T) {
		o := mustOrder(t, mustLine(t, 1, 100, 200, 15))
		assert.NoError(t, o.Validate())
	})
}
