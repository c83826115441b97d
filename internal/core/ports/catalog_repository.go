package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
)

// CatalogRepository defines the persistence contract for product listings.
type CatalogRepository interface {
	// Add persists a new listing.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing listing.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a listing by its unique identifier.
	// Returns errs.ErrObjectNotFound when the listing does not exist.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)
}
