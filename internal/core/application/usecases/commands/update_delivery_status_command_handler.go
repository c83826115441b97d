package commands

import (
	"context"
	"time"

	"fulfillment/internal/pkg/errs"
)

// UpdateDeliveryStatusCommandHandler applies courier progress reports.
// Only the courier assigned to the order may report on it; the order
// aggregate enforces that progress moves one hop at a time.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for delivery progress.
func NewUpdateDeliveryStatusCommandHandler(uowFactory OrderUoWFactory) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery progress command.
// Returns errs.ErrForbidden when the reporting courier is not the one
// assigned to the order.
func (h *UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) error {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	assigned := aggregate.Courier()
	if assigned == nil || !assigned.IsEqual(cmd.CourierID()) {
		return errs.NewForbiddenError(cmd.CourierID().String(), cmd.OrderID().String())
	}

	if err := aggregate.Advance(cmd.Target(), time.Now().UTC()); err != nil {
		return err
	}

	if err := uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
