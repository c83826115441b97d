package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for participant accounts.
type AccountRepository interface {
	// Add persists a new account.
	Add(ctx context.Context, aggregate *account.Account) error

	// Update persists changes to an existing account.
	Update(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account by its unique identifier.
	// Returns errs.ErrObjectNotFound when the account does not exist.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// GetAllActiveCouriers retrieves the couriers eligible for dispatch:
	// active courier accounts with known coordinates, projected into the
	// courier read model.
	GetAllActiveCouriers(ctx context.Context) ([]*courier.Courier, error)
}
