package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// AddCartItemCommandHandler handles the business logic for cart additions.
// The referenced listing must exist and be approved; quantities for a
// product already in the cart are merged by the cart store.
type AddCartItemCommandHandler struct {
	uowFactory ShoppingUoWFactory
}

// NewAddCartItemCommandHandler creates a handler for cart additions.
func NewAddCartItemCommandHandler(uowFactory ShoppingUoWFactory) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cart addition command.
// Returns errs.ErrObjectNotFound when the listing does not exist or is
// not approved for sale.
func (h *AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	listing, err := uow.CatalogRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if !listing.IsPurchasable() {
		return errs.NewObjectNotFoundError("productId", cmd.ProductID())
	}

	item, err := cart.NewItem(kernel.NewUUID(), cmd.SessionID(), cmd.ProductID(),
		cmd.Quantity(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err := uow.CartRepository().Upsert(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
