package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// TakeOrderCommandHandler executes a courier's claim on an order.
//
// The claim is the contended operation of the system: two couriers may race
// for the same order. The handler locks the order row for the whole
// transaction and re-checks the claimability on the locked row, so exactly
// one claim wins and the loser observes a conflict after the winner commits.
//
// Claiming also computes the delivery estimate and refreshes the courier's
// stored position from the coordinates it reported.
type TakeOrderCommandHandler struct {
	uowFactory    ClaimUoWFactory
	geocoder      ports.Geocoder
	etaCalculator services.ETACalculator
}

// NewTakeOrderCommandHandler creates a handler for courier claims.
func NewTakeOrderCommandHandler(uowFactory ClaimUoWFactory, geocoder ports.Geocoder,
	etaCalculator services.ETACalculator) TakeOrderCommandHandler {
	return TakeOrderCommandHandler{
		uowFactory:    uowFactory,
		geocoder:      geocoder,
		etaCalculator: etaCalculator,
	}
}

// Handle processes the claim.
//
// Failure modes:
//   - object not found: order or courier missing, or the geocoder found no
//     match for an address
//   - conflict: order already claimed, already delivered, or not prepared yet
//   - upstream unavailable: the geocoder could not be reached; retryable
func (h *TakeOrderCommandHandler) Handle(ctx context.Context, cmd TakeOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	// Claimability is checked before any geocoding so an already claimed
	// order conflicts without spending an upstream call.
	if _, err = o.Status().Assign(); err != nil {
		return err
	}

	courierRepo := uow.CourierRepository()
	courier, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	courierPoint, err := h.resolveCourierLocation(ctx, cmd, courier.Location())
	if err != nil {
		return err
	}
	deliveryPoint, err := h.resolveLocation(ctx, o.Address())
	if err != nil {
		return err
	}

	eta, err := h.etaCalculator.ExpectedTimeOfDelivery(o, courierPoint, deliveryPoint)
	if err != nil {
		return err
	}

	if err = o.Assign(cmd.CourierID(), eta); err != nil {
		return err
	}
	if err = courier.SetLocation(courierPoint); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}
	if err = courierRepo.Update(ctx, courier); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// resolveCourierLocation picks the courier's position for the ETA: the
// location reported with the claim when present, otherwise the courier's
// last stored position.
func (h *TakeOrderCommandHandler) resolveCourierLocation(ctx context.Context,
	cmd TakeOrderCommand, stored *kernel.GeoPoint) (kernel.GeoPoint, error) {
	if cmd.CourierLocation() != "" {
		return h.resolveLocation(ctx, cmd.CourierLocation())
	}
	if stored != nil {
		return *stored, nil
	}
	return kernel.GeoPoint{}, errs.NewValueIsRequiredError("courier location")
}

// resolveLocation turns a location string into coordinates: a "lat,lon"
// pair parses locally, anything else goes to the geocoder.
func (h *TakeOrderCommandHandler) resolveLocation(ctx context.Context, location string) (kernel.GeoPoint, error) {
	if point, err := kernel.ParseGeoPoint(location); err == nil {
		return point, nil
	}
	return h.geocoder.Resolve(ctx, location)
}
