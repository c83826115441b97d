package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrAssignCouriersCommandIsNotConstructed = errors.New(
		"AssignCouriersCommand must be created via NewAssignCouriersCommand constructor",
	)

	// ErrNoPendingAssignments signals that no paid order is waiting for a courier.
	ErrNoPendingAssignments = errors.New("no paid orders awaiting assignment")

	// ErrNoCouriersAvailable signals that pending orders exist but none could
	// be matched with a courier.
	ErrNoCouriersAvailable = errors.New("no couriers available for pending orders")
)

// AssignCouriersCommand requests a sweep over paid orders without a courier.
type AssignCouriersCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewAssignCouriersCommand creates a new sweep command.
func NewAssignCouriersCommand() AssignCouriersCommand {
	return AssignCouriersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c AssignCouriersCommand) Validate() error {
	return c.guard.Validate(ErrAssignCouriersCommandIsNotConstructed)
}
