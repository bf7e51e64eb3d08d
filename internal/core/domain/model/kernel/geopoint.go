package kernel

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// Geographic coordinate bounds in decimal degrees.
const (
	LatitudeMin  = -90.0
	LatitudeMax  = 90.0
	LongitudeMin = -180.0
	LongitudeMax = 180.0
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// ErrGeoPointIsNotConstructed is returned when using an improperly initialized
// GeoPoint. GeoPoints must be created via NewGeoPoint or ParseGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint or ParseGeoPoint constructors")

// GeoPoint represents a geographic position as a validated latitude/longitude
// pair in decimal degrees. It is an immutable value object; the zero value is
// invalid and fails Validate.
//
// GeoPoint is the unit both courier and delivery locations are expressed in.
// Addresses arriving as free text are converted to GeoPoints by the Geocoder
// port; positions arriving as "lat,lon" strings are parsed by ParseGeoPoint.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(53.9006, 27.5590)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(point) // Output: 53.9006,27.559
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lon   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint from latitude and longitude in decimal
// degrees. Latitude must be within [LatitudeMin, LatitudeMax] and longitude
// within [LongitudeMin, LongitudeMax]; out-of-range values produce a
// ValueIsOutOfRangeError.
func NewGeoPoint(lat, lon float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLat(lat), point.setLon(lon)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// ParseGeoPoint parses a "lat,lon" string into a GeoPoint.
// A single space after the comma is tolerated ("53.9, 27.56") because both
// forms occur in stored locations. Anything else fails with a
// ValueIsInvalidError; callers fall back to geocoding the string as an
// address.
func ParseGeoPoint(s string) (GeoPoint, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return GeoPoint{}, errs.NewValueIsInvalidErrorWithCause(
			"geo point", fmt.Errorf("%q is not in lat,lon format", s))
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("latitude", err)
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("longitude", err)
	}

	return NewGeoPoint(lat, lon)
}

// Validate checks that the GeoPoint was created through a constructor.
// The zero value fails with ErrGeoPointIsNotConstructed.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Lat returns the latitude in decimal degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lon returns the longitude in decimal degrees.
func (p GeoPoint) Lon() float64 {
	return p.lon
}

// String returns the point in "lat,lon" form, the same representation
// ParseGeoPoint accepts and locations are persisted in.
func (p GeoPoint) String() string {
	return strconv.FormatFloat(p.lat, 'f', -1, 64) + "," + strconv.FormatFloat(p.lon, 'f', -1, 64)
}

// IsEqual compares two geo points for coordinate equality.
// Both points must be properly constructed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.lat == other.lat && p.lon == other.lon, nil
}

// DistanceKm calculates the great-circle distance to another point in
// kilometers using the haversine formula. Both points must be properly
// constructed.
func (p GeoPoint) DistanceKm(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1 := p.lat * math.Pi / 180
	lat2 := other.lat * math.Pi / 180
	dLat := (other.lat - p.lat) * math.Pi / 180
	dLon := (other.lon - p.lon) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c, nil
}

// setLat sets the latitude with range validation.
// Pointer receiver is intentional for self-encapsulated construction.
func (p *GeoPoint) setLat(lat float64) error {
	if lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", lat, LatitudeMin, LatitudeMax)
	}

	p.lat = lat
	return nil
}

// setLon sets the longitude with range validation.
func (p *GeoPoint) setLon(lon float64) error {
	if lon < LongitudeMin || lon > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", lon, LongitudeMin, LongitudeMax)
	}

	p.lon = lon
	return nil
}
