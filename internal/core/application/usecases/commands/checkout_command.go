package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrCheckoutCommandIsNotConstructed = errors.New(
	"CheckoutCommand must be created via NewCheckoutCommand constructor",
)

// CheckoutCommand represents a request to turn a session cart into an
// order. Carries the client contact details and delivery coordinates.
//
// Example:
//
//	cmd, err := NewCheckoutCommand("sess-42", "Ama Dossou", "ama@example.com",
//	    "+22997000001", "12 Rue des Cheminots, Cotonou", 6.3703, 2.3912)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	orderID, err := handler.Handle(ctx, cmd)
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	sessionID string
	client    order.Client

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a checkout command.
// Validates the session ID, the client contact fields and the delivery
// coordinates.
func NewCheckoutCommand(sessionID, clientName, clientEmail, clientPhone, deliveryAddress string,
	latitude, longitude float64) (CheckoutCommand, error) {
	cmd := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if sessionID == "" {
		return CheckoutCommand{}, ErrSessionIDIsRequired
	}
	cmd.sessionID = sessionID

	location, err := kernel.NewGeoPoint(latitude, longitude)
	if err != nil {
		return CheckoutCommand{}, err
	}

	client, err := order.NewClient(clientName, clientEmail, clientPhone, deliveryAddress, location)
	if err != nil {
		return CheckoutCommand{}, err
	}
	cmd.client = client

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// SessionID returns the cart session token.
func (c CheckoutCommand) SessionID() string {
	return c.sessionID
}

// Client returns the validated client value object.
func (c CheckoutCommand) Client() order.Client {
	return c.client
}
