package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// AssignCouriersCommandHandler re-runs courier dispatch for paid orders that
// are still unassigned. Payment-time assignment is best-effort; this sweep
// catches the orders it could not place.
type AssignCouriersCommandHandler struct {
	uowFactory PaymentUoWFactory
	dispatcher services.CourierDispatcher
}

// NewAssignCouriersCommandHandler creates a handler for the assignment sweep.
func NewAssignCouriersCommandHandler(uowFactory PaymentUoWFactory,
	dispatcher services.CourierDispatcher) AssignCouriersCommandHandler {
	return AssignCouriersCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the sweep command.
func (h *AssignCouriersCommandHandler) Handle(ctx context.Context, cmd AssignCouriersCommand) error {
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

	pending, err := uow.OrderRepository().GetAllPaidUnassigned(ctx)
	if err != nil {
		return err
	}

	if len(pending) == 0 {
		return ErrNoPendingAssignments
	}

	assignedAny := false
	for _, aggregate := range pending {
		assigned, err := tryAssignCourier(ctx, uow, h.dispatcher, aggregate)
		if err != nil {
			return err
		}
		if !assigned {
			continue
		}

		if err := uow.OrderRepository().UpdateWithStatus(ctx, aggregate, order.Paid); err != nil {
			// A concurrent writer moved the order on; skip it.
			if errors.Is(err, errs.ErrConflict) {
				continue
			}
			return err
		}

		assignedAny = true
	}

	if !assignedAny {
		return ErrNoCouriersAvailable
	}

	return uow.Commit(ctx)
}

// tryAssignCourier dispatches a courier for a paid order. Missing vendor
// coordinates and an empty courier pool are not errors; the caller learns
// from the returned flag whether the order got a courier.
func tryAssignCourier(ctx context.Context, uow PaymentUoW,
	dispatcher services.CourierDispatcher, aggregate *order.Order) (bool, error) {
	vendorIDs := aggregate.VendorIDs()
	if len(vendorIDs) == 0 {
		return false, nil
	}

	vendor, err := uow.AccountRepository().Get(ctx, vendorIDs[0])
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return false, nil
		}
		return false, err
	}

	vendorLocation := vendor.Location()
	if vendorLocation == nil {
		return false, nil
	}

	couriers, err := uow.AccountRepository().GetAllActiveCouriers(ctx)
	if err != nil {
		return false, err
	}

	if _, err := dispatcher.Dispatch(aggregate, *vendorLocation, couriers); err != nil {
		if errors.Is(err, services.ErrCourierNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
