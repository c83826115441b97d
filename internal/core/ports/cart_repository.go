// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, and outbound
// collaborators such as metrics.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for session carts.
type CartRepository interface {
	// Upsert stores a cart row. When a row for the same (session, product)
	// pair already exists, the quantities are merged atomically in storage.
	Upsert(ctx context.Context, item *cart.Item) error

	// GetBySession retrieves all rows held by a session, oldest first.
	// An unknown session yields an empty slice, not an error.
	GetBySession(ctx context.Context, sessionID string) ([]*cart.Item, error)

	// Remove deletes the row for a product from the session cart.
	// Removing a product that is not in the cart is not an error.
	Remove(ctx context.Context, sessionID string, productID kernel.UUID) error

	// Clear deletes every row held by the session.
	Clear(ctx context.Context, sessionID string) error
}
