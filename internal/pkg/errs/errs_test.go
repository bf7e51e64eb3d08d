package errs_test

import (
	"errors"
	"testing"

	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("customerId", "123")

		assert.Equal(t, "customerId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("customerId", "123", cause)

		assert.Equal(t, "customerId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: customerId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("quantity")

		assert.Equal(t, "quantity", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: quantity", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("quantity", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: quantity (cause: invalid format)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("latitude", 95.0, -90.0, 90.0)

	assert.Equal(t, "latitude", err.ParamName)
	assert.Equal(t, 95.0, err.Value)
	assert.Equal(t, "value is invalid: 95 is latitude, min value is -90, max value is 90", err.Error())
	assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
}

func TestConflictError(t *testing.T) {
	t.Run("NewConflictError", func(t *testing.T) {
		err := errs.NewConflictError("order already claimed")

		require.NoError(t, err.Cause)
		assert.Equal(t, "conflict: order already claimed", err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})

	t.Run("NewConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("serialization failure")
		err := errs.NewConflictErrorWithCause("claim lost", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "conflict: claim lost (cause: serialization failure)", err.Error())
	})
}

func TestInsufficientBalanceError(t *testing.T) {
	err := errs.NewInsufficientBalanceError(50, 250)

	assert.Equal(t, "insufficient balance: balance is 50.00, required 250.00", err.Error())
	assert.Equal(t, errs.ErrInsufficientBalance, err.Unwrap())
}

func TestForbiddenError(t *testing.T) {
	err := errs.NewForbiddenError("courier is not assigned to this order")

	assert.Equal(t, "forbidden: courier is not assigned to this order", err.Error())
	assert.Equal(t, errs.ErrForbidden, err.Unwrap())
}

func TestUpstreamUnavailableError(t *testing.T) {
	cause := errors.New("context deadline exceeded")
	err := errs.NewUpstreamUnavailableError("geocoder", cause)

	assert.Equal(t, "upstream unavailable: geocoder (cause: context deadline exceeded)", err.Error())
	assert.Equal(t, errs.ErrUpstreamUnavailable, err.Unwrap())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("dishId", "42"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("location"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("lon", 200, -180, 180), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewConflictError("already delivered"), errs.ErrConflict)
		require.ErrorIs(t, errs.NewInsufficientBalanceError(0, 10), errs.ErrInsufficientBalance)
		require.ErrorIs(t, errs.NewForbiddenError("wrong courier"), errs.ErrForbidden)
		require.ErrorIs(t, errs.NewUpstreamUnavailableError("geocoder", nil), errs.ErrUpstreamUnavailable)
	})
}
