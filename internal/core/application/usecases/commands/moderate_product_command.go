package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrModerateProductCommandIsNotConstructed = errors.New(
	"ModerateProductCommand must be created via NewModerateProductCommand constructor",
)

// ModerateProductCommand represents an admin decision on a submitted listing.
type ModerateProductCommand struct { //nolint:recvcheck //using for validation
	adminID   kernel.UUID
	productID kernel.UUID
	approve   bool

	guard guard.ConstructorGuard
}

// NewModerateProductCommand creates a moderation decision command.
func NewModerateProductCommand(adminID, productID kernel.UUID, approve bool) (ModerateProductCommand, error) {
	cmd := ModerateProductCommand{
		approve: approve,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAdminID(adminID),
		cmd.setProductID(productID),
	); err != nil {
		return ModerateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ModerateProductCommand) Validate() error {
	return c.guard.Validate(ErrModerateProductCommandIsNotConstructed)
}

// AdminID returns the deciding admin account.
func (c ModerateProductCommand) AdminID() kernel.UUID {
	return c.adminID
}

// ProductID returns the listing under moderation.
func (c ModerateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Approve reports whether the listing is approved or rejected.
func (c ModerateProductCommand) Approve() bool {
	return c.approve
}

func (c *ModerateProductCommand) setAdminID(adminID kernel.UUID) error {
	if err := adminID.Validate(); err != nil {
		return err
	}

	c.adminID = adminID
	return nil
}

func (c *ModerateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
