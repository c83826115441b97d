// Package account holds the participant aggregate shared by vendors,
// couriers and admins. Vendors must be verified before listing products;
// couriers must be active and carry coordinates to receive assignments.
package account

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrAccountIsNotConstructed is returned when using an improperly initialized Account.
var ErrAccountIsNotConstructed = errors.New("account must be created via NewAccount or RestoreAccount constructor")

// Account is a registered marketplace participant.
type Account struct {
	id           kernel.UUID
	name         string
	role         Role
	phone        string
	businessName string
	location     *kernel.GeoPoint
	active       bool
	verified     bool

	isConstructed bool
}

// NewAccount registers a participant. New accounts start active and
// unverified; location is optional and only meaningful for vendors and
// couriers.
func NewAccount(id kernel.UUID, name string, role Role, phone, businessName string,
	location *kernel.GeoPoint) (*Account, error) {
	account := &Account{
		phone:         phone,
		businessName:  businessName,
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		account.setID(id),
		account.setName(name),
		account.setRole(role),
		account.setLocation(location),
	); err != nil {
		return nil, err
	}

	return account, nil
}

// RestoreAccount rebuilds a participant from storage.
func RestoreAccount(id kernel.UUID, name string, role Role, phone, businessName string,
	location *kernel.GeoPoint, active, verified bool) (*Account, error) {
	account, err := NewAccount(id, name, role, phone, businessName, location)
	if err != nil {
		return nil, err
	}

	account.active = active
	account.verified = verified

	return account, nil
}

// Validate ensures the account was created through a constructor.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

// ID returns the account identifier.
func (a *Account) ID() kernel.UUID { return a.id }

// Name returns the display name.
func (a *Account) Name() string { return a.name }

// Role returns the account role.
func (a *Account) Role() Role { return a.role }

// Phone returns the contact phone, possibly empty.
func (a *Account) Phone() string { return a.phone }

// BusinessName returns the trading name, possibly empty.
func (a *Account) BusinessName() string { return a.businessName }

// Location returns a copy of the account coordinates, or nil when unknown.
func (a *Account) Location() *kernel.GeoPoint {
	if a.location == nil {
		return nil
	}
	location := *a.location
	return &location
}

// IsActive reports whether the account may participate.
func (a *Account) IsActive() bool { return a.active }

// IsVerified reports whether the account passed verification.
func (a *Account) IsVerified() bool { return a.verified }

// Verify marks the account as having passed verification.
func (a *Account) Verify() {
	a.verified = true
}

// Deactivate removes the account from participation. Deactivated couriers
// stop receiving assignments; existing deliveries are unaffected.
func (a *Account) Deactivate() {
	a.active = false
}

// MoveTo updates the account coordinates.
func (a *Account) MoveTo(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	a.location = &location
	return nil
}

// IsDispatchable reports whether a courier account can be offered
// deliveries: active, role courier, coordinates known.
func (a *Account) IsDispatchable() bool {
	return a.active && a.role == RoleCourier && a.location != nil
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	a.name = name
	return nil
}

func (a *Account) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}

func (a *Account) setLocation(location *kernel.GeoPoint) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}
	value := *location
	a.location = &value
	return nil
}
