package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// ProcessPaymentCommandHandler records a payment and immediately tries to
// assign a courier.
//
// Replaying a payment with the same reference is a no-op: the handler
// returns success without touching the order again, so webhook retries do
// not double-count or re-dispatch. A different reference for an already
// paid order is a conflict.
//
// Assignment is best-effort. When the reference vendor has no known
// coordinates or no courier is available, the order stays Paid and the
// assignment sweep picks it up later.
type ProcessPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	dispatcher services.CourierDispatcher
	metrics    ports.Metrics
}

// NewProcessPaymentCommandHandler creates a handler for payment processing.
func NewProcessPaymentCommandHandler(uowFactory PaymentUoWFactory,
	dispatcher services.CourierDispatcher, metrics ports.Metrics) ProcessPaymentCommandHandler {
	return ProcessPaymentCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		metrics:    metrics,
	}
}

// Handle processes the payment command.
func (h *ProcessPaymentCommandHandler) Handle(ctx context.Context, cmd ProcessPaymentCommand) error {
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

	previous := aggregate.Status()
	if err := aggregate.Pay(cmd.Reference(), time.Now().UTC()); err != nil {
		if errors.Is(err, order.ErrPaymentAlreadyRecorded) {
			return nil
		}
		return err
	}

	if _, err := tryAssignCourier(ctx, uow, h.dispatcher, aggregate); err != nil {
		return err
	}

	if err := uow.OrderRepository().UpdateWithStatus(ctx, aggregate, previous); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.metrics.OrderPaid()

	return nil
}
