package order

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the fulfillment workflow with no backward transitions.
//
// State transitions:
//
//	Created ──> Prepared ──> Assigned ──> Delivered
//
// The kitchen moves an order from Created to Prepared, a courier claim moves
// it from Prepared to Assigned, and the assigned courier closes it with
// Delivered. A courier cannot claim an order the kitchen has not finished,
// which is also what makes "delivered implies prepared" hold structurally:
// Delivered is only reachable through Prepared.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is placed at checkout.
	// The kitchen has not started on it and no courier is bound.
	Created

	// Prepared indicates the kitchen has finished the order.
	// The order is now claimable by couriers.
	Prepared

	// Assigned indicates a courier has claimed the order.
	// Exactly one courier holds the claim; reassignment is not allowed.
	Assigned

	// Delivered indicates the courier has handed the order over.
	// This is a final state with no further transitions.
	Delivered
)

// getStatusStrings returns string representations for all statuses.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Created:   "Created",
		Prepared:  "Prepared",
		Assigned:  "Assigned",
		Delivered: "Delivered",
	}
}

// getValidStatusStrings returns only valid statuses, to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "Created",
		Prepared:  "Prepared",
		Assigned:  "Assigned",
		Delivered: "Delivered",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Created, Prepared, Assigned and Delivered; Unknown (0)
// and any other values are invalid. Used to vet Status values coming from
// persistence before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsPrepared reports whether the kitchen has finished the order.
// True for Prepared and every later state.
func (s Status) IsPrepared() bool {
	return s == Prepared || s == Assigned || s == Delivered
}

// IsDelivered reports whether the order reached its terminal state.
func (s Status) IsDelivered() bool {
	return s == Delivered
}

// MarkPrepared transitions the status to Prepared.
//
// Valid transitions:
//   - Created -> Prepared (kitchen finished the order)
//
// Any other source state is a conflict: re-preparing an already prepared,
// claimed or delivered order is rejected rather than silently overwritten.
func (s Status) MarkPrepared() (Status, error) {
	if s != Created {
		return 0, errs.NewConflictError(
			fmt.Sprintf("order in status %s cannot be marked prepared", s))
	}

	return Prepared, nil
}

// Assign transitions the status to Assigned.
//
// Valid transitions:
//   - Prepared -> Assigned (courier claimed the order)
//
// Invalid transitions:
//   - Created -> Assigned (kitchen must finish first)
//   - Assigned -> Assigned (at most one courier per order)
//   - Delivered -> Assigned (cannot claim a closed order)
func (s Status) Assign() (Status, error) {
	switch s {
	case Prepared:
		return Assigned, nil
	case Created:
		return 0, errs.NewConflictError("order is not prepared yet")
	case Assigned:
		return 0, errs.NewConflictError("order is already claimed by another courier")
	case Delivered:
		return 0, errs.NewConflictError("order is already delivered")
	case Unknown:
		fallthrough
	default:
		return 0, errs.NewConflictError(
			fmt.Sprintf("order in status %s cannot be claimed", s))
	}
}

// Complete transitions the status to Delivered.
//
// Valid transitions:
//   - Assigned -> Delivered (courier handed the order over)
//
// Delivering an already delivered order, or one that was never claimed,
// is a conflict. Delivered is final.
func (s Status) Complete() (Status, error) {
	switch s {
	case Assigned:
		return Delivered, nil
	case Delivered:
		return 0, errs.NewConflictError("order is already delivered")
	case Created, Prepared:
		return 0, errs.NewConflictError("order is not claimed by any courier")
	case Unknown:
		fallthrough
	default:
		return 0, errs.NewConflictError(
			fmt.Sprintf("order in status %s cannot be delivered", s))
	}
}

// ValidateCanHaveCourier validates consistency between status and courier
// assignment when restoring from persistence: Assigned and Delivered orders
// must have a courier, earlier states must not.
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && s != Assigned && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a courier", s),
		)
	}

	if !courier && (s == Assigned || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no courier", s),
		)
	}

	return nil
}
