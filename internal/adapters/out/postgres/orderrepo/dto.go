// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. It implements the repository pattern for the
// order aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Status is stored as its wire label, the courier column is
// indexed for workload reads, and line items live in their own table.
type OrderDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number           string     `gorm:"uniqueIndex;not null"`
	Status           string     `gorm:"index;not null"`
	ClientName       string     `gorm:"not null"`
	ClientEmail      string     `gorm:"not null"`
	ClientPhone      string     `gorm:"not null"`
	DeliveryAddress  string     `gorm:"not null"`
	Latitude         float64    `gorm:"not null"`
	Longitude        float64    `gorm:"not null"`
	TotalAmount      float64    `gorm:"not null"`
	PaymentReference *string    `gorm:"uniqueIndex"`
	CourierID        *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt        time.Time
	PaidAt           *time.Time
	DeliveredAt      *time.Time

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one persisted line item with its price snapshot.
type OrderItemDTO struct {
	ID              int64     `gorm:"primaryKey;autoIncrement"`
	OrderID         uuid.UUID `gorm:"type:uuid;index;not null"`
	ProductID       uuid.UUID `gorm:"type:uuid;not null"`
	VendorID        uuid.UUID `gorm:"type:uuid;not null"`
	Quantity        int       `gorm:"not null"`
	PriceAtPurchase float64   `gorm:"not null"`
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	var paymentReference *string
	if ref := aggregate.PaymentReference(); ref != "" {
		paymentReference = &ref
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:         aggregate.ID().Bytes(),
			ProductID:       item.ProductID().Bytes(),
			VendorID:        item.VendorID().Bytes(),
			Quantity:        item.Quantity(),
			PriceAtPurchase: item.PriceAtPurchase(),
		})
	}

	client := aggregate.Client()

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		Number:           aggregate.Number(),
		Status:           aggregate.Status().String(),
		ClientName:       client.Name(),
		ClientEmail:      client.Email(),
		ClientPhone:      client.Phone(),
		DeliveryAddress:  client.Address(),
		Latitude:         client.Location().Latitude(),
		Longitude:        client.Location().Longitude(),
		TotalAmount:      aggregate.TotalAmount(),
		PaymentReference: paymentReference,
		CourierID:        courierID,
		CreatedAt:        aggregate.CreatedAt(),
		PaidAt:           aggregate.PaidAt(),
		DeliveredAt:      aggregate.DeliveredAt(),
		Items:            items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	client, err := order.NewClient(dto.ClientName, dto.ClientEmail, dto.ClientPhone,
		dto.DeliveryAddress, location)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		vendorID, itemErr := kernel.UUIDFromBytes(itemDTO.VendorID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewItem(productID, vendorID, itemDTO.Quantity, itemDTO.PriceAtPurchase)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cid, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cid
	}

	var paymentReference string
	if dto.PaymentReference != nil {
		paymentReference = *dto.PaymentReference
	}

	return order.RestoreOrder(id, dto.Number, client, items, dto.TotalAmount, status,
		paymentReference, courierID, dto.CreatedAt, dto.PaidAt, dto.DeliveredAt)
}
