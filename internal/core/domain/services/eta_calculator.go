package services

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

// ETACalculator is a domain service that estimates when a claimed order will
// reach the customer.
//
// The estimate counts from the moment the order was placed: the kitchen
// needs the longest preparation time among the order's lines, then the
// courier rides the great-circle distance at an assumed average speed.
// Orders whose dishes carry no preparation time fall back to a configured
// constant so the estimate never degenerates to travel time alone.
type ETACalculator struct {
	speedKmh            float64
	fallbackPrepMinutes int
}

// NewETACalculator creates an ETACalculator.
// The assumed courier speed must be positive km/h and the fallback
// preparation time non-negative minutes.
func NewETACalculator(speedKmh float64, fallbackPrepMinutes int) (ETACalculator, error) {
	if speedKmh <= 0 {
		return ETACalculator{}, errs.NewValueIsInvalidError("speedKmh")
	}
	if fallbackPrepMinutes < 0 {
		return ETACalculator{}, errs.NewValueIsInvalidError("fallbackPrepMinutes")
	}

	return ETACalculator{
		speedKmh:            speedKmh,
		fallbackPrepMinutes: fallbackPrepMinutes,
	}, nil
}

// ExpectedTimeOfDelivery estimates the delivery time for an order claimed by
// a courier standing at courierLocation, delivering to deliveryLocation.
//
//	estimate = order creation time + max preparation minutes + distance / speed
func (c ETACalculator) ExpectedTimeOfDelivery(o *order.Order,
	courierLocation kernel.GeoPoint, deliveryLocation kernel.GeoPoint) (time.Time, error) {
	if err := o.Validate(); err != nil {
		return time.Time{}, err
	}
	if err := courierLocation.Validate(); err != nil {
		return time.Time{}, errs.NewValueIsRequiredErrorWithCause("courierLocation", err)
	}
	if err := deliveryLocation.Validate(); err != nil {
		return time.Time{}, errs.NewValueIsRequiredErrorWithCause("deliveryLocation", err)
	}

	prepMinutes := o.MaxPrepTimeMinutes()
	if prepMinutes == 0 {
		prepMinutes = c.fallbackPrepMinutes
	}

	distanceKm, err := courierLocation.DistanceKm(deliveryLocation)
	if err != nil {
		return time.Time{}, err
	}
	travel := time.Duration(distanceKm / c.speedKmh * float64(time.Hour))

	return o.TimeOfCreation().
		Add(time.Duration(prepMinutes) * time.Minute).
		Add(travel), nil
}
