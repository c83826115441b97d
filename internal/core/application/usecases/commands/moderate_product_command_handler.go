package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/pkg/errs"
)

// ModerateProductCommandHandler applies admin moderation decisions.
type ModerateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewModerateProductCommandHandler creates a handler for moderation decisions.
func NewModerateProductCommandHandler(uowFactory CatalogUoWFactory) ModerateProductCommandHandler {
	return ModerateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the moderation decision.
// Returns errs.ErrForbidden when the deciding account is not an admin.
func (h *ModerateProductCommandHandler) Handle(ctx context.Context, cmd ModerateProductCommand) error {
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

	decider, err := uow.AccountRepository().Get(ctx, cmd.AdminID())
	if err != nil {
		return err
	}

	if decider.Role() != account.RoleAdmin {
		return errs.NewForbiddenError(cmd.AdminID().String(), "moderation")
	}

	listing, err := uow.CatalogRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if cmd.Approve() {
		err = listing.Approve()
	} else {
		err = listing.Reject()
	}
	if err != nil {
		return err
	}

	if err := uow.CatalogRepository().Update(ctx, listing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
