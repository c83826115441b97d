package account

import (
	"fulfillment/internal/pkg/errs"
)

// Role determines what an account may do: vendors list products,
// couriers carry deliveries, admins moderate.
type Role int

const (
	RoleUnknown Role = iota
	RoleVendor
	RoleCourier
	RoleAdmin
)

var roleNames = map[Role]string{
	RoleVendor:  "vendor",
	RoleCourier: "courier",
	RoleAdmin:   "admin",
}

// RoleFromString parses a stored role.
func RoleFromString(s string) (Role, error) {
	for role, name := range roleNames {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidError("role")
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

// Validate ensures the role is one of the known roles.
func (r Role) Validate() error {
	if _, ok := roleNames[r]; !ok {
		return errs.NewValueIsInvalidError("role")
	}
	return nil
}
