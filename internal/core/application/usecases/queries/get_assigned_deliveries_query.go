package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetAssignedDeliveriesQueryIsNotConstructed = errors.New(
	"GetAssignedDeliveriesQuery must be created via NewGetAssignedDeliveriesQuery constructor",
)

// GetAssignedDeliveriesQuery retrieves the active workload of a courier:
// orders assigned to them that are not yet delivered or cancelled.
type GetAssignedDeliveriesQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAssignedDeliveriesQuery creates a query for a courier's workload.
func NewGetAssignedDeliveriesQuery(courierID kernel.UUID) (GetAssignedDeliveriesQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetAssignedDeliveriesQuery{}, err
	}

	return GetAssignedDeliveriesQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAssignedDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignedDeliveriesQueryIsNotConstructed)
}

// CourierID returns the courier identifier.
func (q GetAssignedDeliveriesQuery) CourierID() kernel.UUID {
	return q.courierID
}

// GetAssignedDeliveriesQueryResponse is one active delivery of a courier.
type GetAssignedDeliveriesQueryResponse struct {
	OrderID         kernel.UUID
	Number          string
	Status          string
	ClientName      string
	ClientPhone     string
	DeliveryAddress string
	Destination     kernel.GeoPoint
	TotalAmount     float64
}
