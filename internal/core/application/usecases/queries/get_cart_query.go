// Package queries contains read operations that bypass the domain model.
// Query handlers run raw SQL against the read side and return plain
// response structs, keeping reads cheap in the CQRS split.
package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetCartQueryIsNotConstructed = errors.New(
		"GetCartQuery must be created via NewGetCartQuery constructor",
	)
	ErrSessionIDIsRequired = errors.New("session id is required")
)

// GetCartQuery retrieves the contents of a session cart with current
// listing names and prices.
type GetCartQuery struct {
	sessionID string

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for a session cart.
func NewGetCartQuery(sessionID string) (GetCartQuery, error) {
	if sessionID == "" {
		return GetCartQuery{}, ErrSessionIDIsRequired
	}

	return GetCartQuery{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// SessionID returns the cart session token.
func (q GetCartQuery) SessionID() string {
	return q.sessionID
}

// GetCartQueryResponse is the cart read model.
type GetCartQueryResponse struct {
	SessionID string
	Items     []CartItemResponse
	Total     float64
}

// CartItemResponse is one cart row joined with its listing.
type CartItemResponse struct {
	ProductID kernel.UUID
	Name      string
	Quantity  int
	UnitPrice float64
	Subtotal  float64
}
