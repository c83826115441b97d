package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its line items.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the order identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the order read model.
type GetOrderQueryResponse struct {
	ID               kernel.UUID
	Number           string
	Status           string
	ClientName       string
	ClientEmail      string
	ClientPhone      string
	DeliveryAddress  string
	TotalAmount      float64
	PaymentReference string
	CourierID        *kernel.UUID
	CreatedAt        time.Time
	PaidAt           *time.Time
	DeliveredAt      *time.Time
	Items            []OrderItemResponse
}

// OrderItemResponse is one line item of the order read model.
type OrderItemResponse struct {
	ProductID       kernel.UUID
	Quantity        int
	PriceAtPurchase float64
}
