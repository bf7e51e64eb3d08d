package order

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when using an improperly initialized Order.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
	// ErrAddressIsRequired is returned when attempting to create an order without a delivery address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
	// ErrLinesAreRequired is returned when attempting to create an order with no lines.
	ErrLinesAreRequired = errs.NewValueIsRequiredError("lines")
)

// Order is the aggregate root of the fulfillment workflow.
//
// An order is born at checkout with a snapshot of the customer's cart and
// delivery address, then walks the Status state machine: the kitchen marks
// it prepared, a courier claims it, the same courier delivers it. All
// transition rules live in the aggregate; callers only persist the result.
//
// Monetary total and weight are computed once from the lines at construction
// and never recalculated, so menu edits cannot retroactively change an order.
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID

	lines  []*Line
	price  float64
	weight float64

	// address is the delivery destination as captured at checkout: a free-form
	// address or a "lat,lon" pair. Coordinates are resolved at claim time.
	address string

	status          Status
	courierID       *kernel.UUID
	kitchenWorkerID *kernel.UUID

	timeOfCreation         time.Time
	expectedTimeOfDelivery *time.Time
	timeOfDelivery         *time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a new order from cart line snapshots.
// The order starts in Created status with totals computed from the lines.
//
// Validation:
//   - id and customerID must be valid UUIDs
//   - address must be non-empty
//   - lines must be non-empty and each line constructed
//   - timeOfCreation must not be zero
func NewOrder(id kernel.UUID, customerID kernel.UUID, address string,
	lines []*Line, timeOfCreation time.Time) (*Order, error) {
	order := &Order{
		status: Created,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setAddress(address),
		order.setLines(lines),
		order.setTimeOfCreation(timeOfCreation),
	); err != nil {
		return nil, err
	}

	for _, line := range lines {
		order.price += line.TotalPrice()
		order.weight += line.TotalWeight()
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistent storage without
// replaying business transitions, but validating structural consistency:
// the status must be valid, a courier must be present exactly for Assigned
// and Delivered orders, and the delivery timestamp exactly for Delivered
// ones.
func RestoreOrder(id kernel.UUID, customerID kernel.UUID, address string,
	lines []*Line, price float64, weight float64, status Status,
	courierID *kernel.UUID, kitchenWorkerID *kernel.UUID,
	timeOfCreation time.Time, expectedTimeOfDelivery *time.Time,
	timeOfDelivery *time.Time) (*Order, error) {
	order := &Order{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setAddress(address),
		order.setLines(lines),
		order.setTimeOfCreation(timeOfCreation),
		status.Validate(),
		status.ValidateCanHaveCourier(courierID != nil),
	); err != nil {
		return nil, err
	}

	if status.IsDelivered() != (timeOfDelivery != nil) {
		return nil, errs.NewValueIsInvalidError("timeOfDelivery")
	}

	order.price = price
	order.weight = weight
	order.courierID = courierID
	order.kitchenWorkerID = kitchenWorkerID
	order.expectedTimeOfDelivery = expectedTimeOfDelivery
	order.timeOfDelivery = timeOfDelivery

	return order, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || o.guard.Validate(ErrOrderIsNotConstructed) != nil {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Lines returns the order's line snapshots.
func (o *Order) Lines() []*Line {
	return o.lines
}

// Price returns the total price of the order.
func (o *Order) Price() float64 {
	return o.price
}

// Weight returns the total weight of the order.
func (o *Order) Weight() float64 {
	return o.weight
}

// Address returns the delivery destination as captured at checkout.
func (o *Order) Address() string {
	return o.address
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CourierID returns the identifier of the courier who claimed the order,
// or nil if unclaimed.
func (o *Order) CourierID() *kernel.UUID {
	return o.courierID
}

// KitchenWorkerID returns the identifier of the kitchen worker who prepared
// the order, or nil if it is not prepared yet.
func (o *Order) KitchenWorkerID() *kernel.UUID {
	return o.kitchenWorkerID
}

// TimeOfCreation returns when the order was placed.
func (o *Order) TimeOfCreation() time.Time {
	return o.timeOfCreation
}

// ExpectedTimeOfDelivery returns the delivery estimate set at claim time,
// or nil if the order is unclaimed.
func (o *Order) ExpectedTimeOfDelivery() *time.Time {
	return o.expectedTimeOfDelivery
}

// TimeOfDelivery returns when the order was delivered, or nil.
func (o *Order) TimeOfDelivery() *time.Time {
	return o.timeOfDelivery
}

// IsPrepared reports whether the kitchen has finished the order.
func (o *Order) IsPrepared() bool {
	return o.status.IsPrepared()
}

// IsDelivered reports whether the order was delivered.
func (o *Order) IsDelivered() bool {
	return o.status.IsDelivered()
}

// MaxPrepTimeMinutes returns the longest preparation time across the order's
// lines in minutes. Returns 0 when every prep time is unknown; the caller
// substitutes its fallback estimate.
func (o *Order) MaxPrepTimeMinutes() int {
	maxPrep := 0
	for _, line := range o.lines {
		if line.PrepTimeMinutes() > maxPrep {
			maxPrep = line.PrepTimeMinutes()
		}
	}
	return maxPrep
}

// MarkPrepared records that the kitchen worker finished the order,
// moving it from Created to Prepared.
//
// Returns a conflict error if the order is already prepared, claimed or
// delivered: prepared state is recorded once and never overwritten.
func (o *Order) MarkPrepared(kitchenWorkerID kernel.UUID) error {
	if err := kitchenWorkerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("kitchenWorkerID", err)
	}

	newStatus, err := o.status.MarkPrepared()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.kitchenWorkerID = &kitchenWorkerID
	return nil
}

// Assign binds the order to the courier who claimed it and records the
// delivery estimate, moving the order from Prepared to Assigned.
//
// Returns a conflict error if the order is not prepared yet, is already
// claimed, or is already delivered. Exactly one courier can ever hold
// the claim.
func (o *Order) Assign(courierID kernel.UUID, expectedTimeOfDelivery time.Time) error {
	if err := courierID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("courierID", err)
	}
	if expectedTimeOfDelivery.IsZero() {
		return errs.NewValueIsRequiredError("expectedTimeOfDelivery")
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	o.expectedTimeOfDelivery = &expectedTimeOfDelivery
	return nil
}

// Complete closes the order as delivered by the given courier.
//
// Only the courier who claimed the order may deliver it; anyone else gets a
// forbidden error, including couriers acting on unclaimed orders. Delivering
// an already delivered order is a conflict.
func (o *Order) Complete(courierID kernel.UUID, timeOfDelivery time.Time) error {
	if err := courierID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("courierID", err)
	}
	if timeOfDelivery.IsZero() {
		return errs.NewValueIsRequiredError("timeOfDelivery")
	}

	if o.courierID == nil || !o.courierID.IsEqual(courierID) {
		return errs.NewForbiddenError("order is not assigned to this courier")
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.timeOfDelivery = &timeOfDelivery
	return nil
}

// IsEqual compares orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return o.id.IsEqual(other.id)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}
	o.address = address
	return nil
}

func (o *Order) setLines(lines []*Line) error {
	if len(lines) == 0 {
		return ErrLinesAreRequired
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("lines", err)
		}
	}
	o.lines = lines
	return nil
}

func (o *Order) setTimeOfCreation(timeOfCreation time.Time) error {
	if timeOfCreation.IsZero() {
		return errs.NewValueIsRequiredError("timeOfCreation")
	}
	o.timeOfCreation = timeOfCreation
	return nil
}
