package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate with its line items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateWithStatus persists changes only if the stored order is still
	// in the expected status. Returns errs.ErrConflict when another writer
	// moved the order first. Used for courier assignment so two dispatch
	// rounds cannot both claim the same order.
	UpdateWithStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPaidUnassigned retrieves paid orders that have no courier yet,
	// oldest first. Used by the assignment sweep.
	GetAllPaidUnassigned(ctx context.Context) ([]*order.Order, error)

	// GetAssignedToCourier retrieves the orders currently assigned to the
	// courier that are not yet in a terminal status.
	GetAssignedToCourier(ctx context.Context, courierID kernel.UUID) ([]*order.Order, error)
}
