package account

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Role scopes what an authenticated principal may see and do.
// The core trusts the role claim supplied by the identity collaborator and
// never re-validates credentials.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCustomer may manage its own cart, check out and top up its balance.
	RoleCustomer

	// RoleCourier may list claimable orders, claim them and deliver its own.
	RoleCourier

	// RoleKitchenWorker may list unprepared orders and mark them prepared.
	RoleKitchenWorker

	// RoleAdmin may see every order and manage the menu.
	RoleAdmin
)

// getRoleStrings returns string representations for all roles.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:       "unknown",
		RoleCustomer:      "customer",
		RoleCourier:       "courier",
		RoleKitchenWorker: "kitchen_worker",
		RoleAdmin:         "admin",
	}
}

// ParseRole maps a role claim string to a Role.
// Unrecognized claims fail with a validation error rather than mapping to a
// default role.
func ParseRole(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if role != RoleUnknown && str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	switch r {
	case RoleCustomer, RoleCourier, RoleKitchenWorker, RoleAdmin:
		return nil
	case RoleUnknown:
		fallthrough
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
}

// String returns the claim representation of the role.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
