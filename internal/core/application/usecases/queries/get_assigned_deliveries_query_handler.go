package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// GetAssignedDeliveriesQueryHandler reads the active deliveries of a courier.
type GetAssignedDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignedDeliveriesQueryHandler creates a handler for courier workload reads.
func NewGetAssignedDeliveriesQueryHandler(db *gorm.DB) GetAssignedDeliveriesQueryHandler {
	return GetAssignedDeliveriesQueryHandler{db: db}
}

// Handle executes the workload read. A courier with no active deliveries
// yields an empty slice.
func (h GetAssignedDeliveriesQueryHandler) Handle(ctx context.Context,
	query GetAssignedDeliveriesQuery) ([]GetAssignedDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetAssignedDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			status,
			client_name,
			client_phone,
			delivery_address,
			latitude,
			longitude,
			total_amount
		FROM orders
		WHERE courier_id = ? AND status IN (?, ?)
		ORDER BY created_at
	`, query.CourierID().String(), order.Assigned.String(), order.InDelivery.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var latitude, longitude float64
		var delivery GetAssignedDeliveriesQueryResponse

		err = rows.Scan(&id, &delivery.Number, &delivery.Status,
			&delivery.ClientName, &delivery.ClientPhone, &delivery.DeliveryAddress,
			&latitude, &longitude, &delivery.TotalAmount)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		delivery.OrderID = orderID

		destination, pointErr := kernel.NewGeoPoint(latitude, longitude)
		if pointErr != nil {
			return nil, pointErr
		}
		delivery.Destination = destination

		deliveries = append(deliveries, delivery)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
