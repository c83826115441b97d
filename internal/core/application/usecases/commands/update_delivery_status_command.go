package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand represents a courier reporting progress on
// an assigned delivery: picked up (in_delivery) or handed over (delivered).
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	orderID   kernel.UUID
	target    order.Status

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a delivery progress command.
// The target status is parsed from its wire label; only in_delivery and
// delivered are meaningful targets, anything else is rejected by the
// order's transition rules.
func NewUpdateDeliveryStatusCommand(courierID, orderID kernel.UUID,
	target string) (UpdateDeliveryStatusCommand, error) {
	cmd := UpdateDeliveryStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	status, err := order.StatusFromString(target)
	if err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}
	cmd.target = status

	if err := errors.Join(
		cmd.setCourierID(courierID),
		cmd.setOrderID(orderID),
	); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// CourierID returns the reporting courier.
func (c UpdateDeliveryStatusCommand) CourierID() kernel.UUID {
	return c.courierID
}

// OrderID returns the delivery being updated.
func (c UpdateDeliveryStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested status.
func (c UpdateDeliveryStatusCommand) Target() order.Status {
	return c.target
}

func (c *UpdateDeliveryStatusCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *UpdateDeliveryStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
