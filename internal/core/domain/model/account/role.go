package account

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Role represents the kind of party acting on the system.
// It is a closed enum: every authorization decision dispatches over these
// variants, and any role absent from the permission matrix is denied.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// Admin may perform every operation, including menu and user management.
	Admin

	// KitchenStaff moves orders through the kitchen (pending -> cooking -> ready)
	// and assigns drivers to ready orders.
	KitchenStaff

	// Driver picks up and delivers orders assigned to them.
	Driver

	// Customer creates orders and reads their own orders.
	Customer

	// Guest creates orders with contact fields and tracks them by order id,
	// without authentication.
	Guest
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole:  "unknown",
		Admin:        "admin",
		KitchenStaff: "kitchen_staff",
		Driver:       "driver",
		Customer:     "customer",
		Guest:        "guest",
	}
}

// roleAliases maps the loose role strings seen at the boundary (legacy
// backends used "manager", "kitchen" and "staff" interchangeably) to the
// canonical enum. Resolution happens once, in RoleFromString; the rest of the
// system only ever sees Role values.
func roleAliases() map[string]Role {
	return map[string]Role{
		"admin":         Admin,
		"manager":       KitchenStaff,
		"kitchen":       KitchenStaff,
		"kitchen_staff": KitchenStaff,
		"staff":         KitchenStaff,
		"driver":        Driver,
		"customer":      Customer,
		"guest":         Guest,
	}
}

// RoleFromString resolves a role string, including legacy aliases, to the
// canonical Role. Returns an error for unrecognized strings.
func RoleFromString(s string) (Role, error) {
	if role, ok := roleAliases()[s]; ok {
		return role, nil
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a known role", s))
}

// Validate checks if the Role value is one of the defined variants.
func (r Role) Validate() error {
	if r == UnknownRole {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", int(r)))
	}
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", int(r)))
	}
	return nil
}

// String returns the canonical wire name of the role.
// Implements fmt.Stringer and is safe on any Role value.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}
