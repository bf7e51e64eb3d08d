package kernel_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("should create valid point within bounds", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(53.9006, 27.5590)

		require.NoError(t, err)
		require.NoError(t, point.Validate())
		assert.InDelta(t, 53.9006, point.Lat(), 1e-9)
		assert.InDelta(t, 27.5590, point.Lon(), 1e-9)
	})

	t.Run("should accept boundary values", func(t *testing.T) {
		for _, coords := range [][2]float64{
			{kernel.LatitudeMin, kernel.LongitudeMin},
			{kernel.LatitudeMax, kernel.LongitudeMax},
			{0, 0},
		} {
			point, err := kernel.NewGeoPoint(coords[0], coords[1])
			require.NoError(t, err)
			require.NoError(t, point.Validate())
		}
	})

	t.Run("should fail with latitude out of range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(95, 27.5590)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail with longitude out of range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(53.9006, -200)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var point kernel.GeoPoint

		require.Error(t, point.Validate())
	})
}

func TestParseGeoPoint(t *testing.T) {
	t.Run("parses lat,lon string", func(t *testing.T) {
		point, err := kernel.ParseGeoPoint("53.9006,27.559")

		require.NoError(t, err)
		assert.InDelta(t, 53.9006, point.Lat(), 1e-9)
		assert.InDelta(t, 27.559, point.Lon(), 1e-9)
	})

	t.Run("tolerates space after comma", func(t *testing.T) {
		point, err := kernel.ParseGeoPoint("53.9006, 27.559")

		require.NoError(t, err)
		assert.InDelta(t, 27.559, point.Lon(), 1e-9)
	})

	t.Run("rejects free-text address", func(t *testing.T) {
		_, err := kernel.ParseGeoPoint("Independence Avenue 4")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects out-of-range coordinates", func(t *testing.T) {
		_, err := kernel.ParseGeoPoint("91,0")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("round-trips through String", func(t *testing.T) {
		original, err := kernel.NewGeoPoint(53.9006, 27.559)
		require.NoError(t, err)

		parsed, err := kernel.ParseGeoPoint(original.String())
		require.NoError(t, err)

		equal, err := original.IsEqual(parsed)
		require.NoError(t, err)
		assert.True(t, equal)
	})
}

func TestGeoPoint_DistanceKm(t *testing.T) {
	t.Run("distance between Minsk and Moscow", func(t *testing.T) {
		minsk, err := kernel.NewGeoPoint(53.9006, 27.5590)
		require.NoError(t, err)
		moscow, err := kernel.NewGeoPoint(55.7558, 37.6173)
		require.NoError(t, err)

		distance, err := minsk.DistanceKm(moscow)

		require.NoError(t, err)
		// Great-circle distance is roughly 675 km.
		assert.InDelta(t, 675, distance, 10)
	})

	t.Run("distance is symmetric", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(53.9, 27.56)
		b, _ := kernel.NewGeoPoint(53.93, 27.65)

		d1, err := a.DistanceKm(b)
		require.NoError(t, err)
		d2, err := b.DistanceKm(a)
		require.NoError(t, err)

		assert.InDelta(t, d1, d2, 1e-9)
	})

	t.Run("distance to itself is zero", func(t *testing.T) {
		point, _ := kernel.NewGeoPoint(53.9, 27.56)

		distance, err := point.DistanceKm(point)

		require.NoError(t, err)
		assert.InDelta(t, 0, distance, 1e-9)
	})

	t.Run("fails for unconstructed point", func(t *testing.T) {
		point, _ := kernel.NewGeoPoint(53.9, 27.56)
		var invalid kernel.GeoPoint

		_, err := point.DistanceKm(invalid)

		require.Error(t, err)
	})
}
