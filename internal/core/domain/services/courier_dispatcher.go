package services

import (
	"errors"
	"math"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// ErrCourierNotFound is returned when no courier is available for an order.
// This occurs when the candidate list is empty or when the reference vendor
// has no known coordinates.
var ErrCourierNotFound = errors.New("courier not found")

// CourierDispatcher is a domain service that picks a courier for a paid
// order and assigns it.
//
// The reference point for the order is the vendor of its first line item.
// The score of each candidate is the haversine distance between that
// vendor and the client's delivery address; the candidate with the
// minimum score wins, first wins on ties. Note the score does not depend
// on the candidate's own position, so in practice the first valid
// candidate is selected. Kept for compatibility with existing assignment
// history.
type CourierDispatcher struct{}

// NewCourierDispatcher creates a new CourierDispatcher instance.
func NewCourierDispatcher() CourierDispatcher {
	return CourierDispatcher{}
}

// Dispatch selects a courier for the order and assigns it.
//
// vendorLocation is the position of the order's reference vendor.
// Returns ErrCourierNotFound when the candidate list is empty, or the
// order's own assignment error when it is not in a state to be assigned.
func (d CourierDispatcher) Dispatch(o *order.Order, vendorLocation kernel.GeoPoint,
	couriers []*courier.Courier) (*courier.Courier, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if err := vendorLocation.Validate(); err != nil {
		return nil, err
	}

	best, err := d.findBestCourier(o, vendorLocation, couriers)
	if err != nil {
		return nil, err
	}

	if err := o.Assign(best.ID()); err != nil {
		return nil, err
	}

	return best, nil
}

func (d CourierDispatcher) findBestCourier(o *order.Order, vendorLocation kernel.GeoPoint,
	couriers []*courier.Courier) (*courier.Courier, error) {
	var best *courier.Courier
	bestScore := math.MaxFloat64

	clientLocation := o.Client().Location()

	for _, candidate := range couriers {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}

		score, err := vendorLocation.DistanceTo(clientLocation)
		if err != nil {
			return nil, err
		}

		if score < bestScore {
			best = candidate
			bestScore = score
		}
	}

	if best == nil {
		return nil, ErrCourierNotFound
	}

	return best, nil
}
