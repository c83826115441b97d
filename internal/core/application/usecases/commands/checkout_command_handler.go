package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// CheckoutCommandHandler turns a session cart into a pending order.
//
// The whole operation runs in one transaction: the cart is read, each
// listing is resolved for its current price and vendor, the order is
// written with price snapshots, and the cart is cleared. Either all of it
// happens or none of it does.
type CheckoutCommandHandler struct {
	uowFactory CheckoutUoWFactory
	numbers    *order.NumberGenerator
	metrics    ports.Metrics
}

// NewCheckoutCommandHandler creates a handler for checkouts.
func NewCheckoutCommandHandler(uowFactory CheckoutUoWFactory, numbers *order.NumberGenerator,
	metrics ports.Metrics) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		numbers:    numbers,
		metrics:    metrics,
	}
}

// Handle processes the checkout command and returns the new order ID.
// Returns errs.ErrCartIsEmpty when the session has nothing to check out.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (kernel.UUID, error) {
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

	rows, err := uow.CartRepository().GetBySession(ctx, cmd.SessionID())
	if err != nil {
		return kernel.UUID{}, err
	}

	if len(rows) == 0 {
		return kernel.UUID{}, errs.NewCartIsEmptyError(cmd.SessionID())
	}

	items := make([]order.Item, 0, len(rows))
	for _, row := range rows {
		listing, err := uow.CatalogRepository().Get(ctx, row.ProductID())
		if err != nil {
			return kernel.UUID{}, err
		}

		item, err := order.NewItem(listing.ID(), listing.VendorID(), row.Quantity(), listing.Price())
		if err != nil {
			return kernel.UUID{}, err
		}
		items = append(items, item)
	}

	now := time.Now().UTC()
	aggregate, err := order.NewOrder(kernel.NewUUID(), h.numbers.Next(now), cmd.Client(), items, now)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err := uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err := uow.CartRepository().Clear(ctx, cmd.SessionID()); err != nil {
		return kernel.UUID{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	h.metrics.OrderCreated(aggregate.TotalAmount())

	return aggregate.ID(), nil
}
