package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/pkg/errs"
)

// CreateProductCommandHandler handles listing submissions.
// Only verified vendor accounts may list; listings by vendors start in
// moderation, listings created by admins are approved immediately.
type CreateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateProductCommandHandler creates a handler for listing submissions.
func NewCreateProductCommandHandler(uowFactory CatalogUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the listing submission and returns the new product ID.
// Returns errs.ErrUnverified for unverified vendors and errs.ErrForbidden
// for accounts that may not list at all.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	submitter, err := uow.AccountRepository().Get(ctx, cmd.VendorID())
	if err != nil {
		return kernel.UUID{}, err
	}

	switch submitter.Role() {
	case account.RoleVendor:
		if !submitter.IsVerified() {
			return kernel.UUID{}, errs.NewUnverifiedError("vendorId")
		}
	case account.RoleAdmin:
		// admins may list on behalf of the marketplace
	default:
		return kernel.UUID{}, errs.NewForbiddenError(cmd.VendorID().String(), "catalog")
	}

	listing, err := product.NewProduct(kernel.NewUUID(), cmd.VendorID(), cmd.Name(),
		cmd.Description(), cmd.Price(), cmd.Stock(), time.Now().UTC())
	if err != nil {
		return kernel.UUID{}, err
	}

	if submitter.Role() == account.RoleAdmin {
		if err := listing.Approve(); err != nil {
			return kernel.UUID{}, err
		}
	}

	if err := uow.CatalogRepository().Add(ctx, listing); err != nil {
		return kernel.UUID{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return listing.ID(), nil
}
