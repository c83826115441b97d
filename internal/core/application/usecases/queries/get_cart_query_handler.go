package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/kernel"
)

// GetCartQueryHandler reads a session cart joined with current listing
// data. Prices here are informational; the binding snapshot is taken at
// checkout.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart reads.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle executes the cart read. An unknown session yields an empty cart.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	response := GetCartQueryResponse{
		SessionID: query.SessionID(),
		Items:     make([]CartItemResponse, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			ci.product_id,
			p.name,
			ci.quantity,
			p.price
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.session_id = ?
		ORDER BY ci.created_at
	`, query.SessionID()).Rows()
	if err != nil {
		return GetCartQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var item CartItemResponse

		if err = rows.Scan(&id, &item.Name, &item.Quantity, &item.UnitPrice); err != nil {
			return GetCartQueryResponse{}, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetCartQueryResponse{}, idErr
		}
		item.ProductID = productID
		item.Subtotal = float64(item.Quantity) * item.UnitPrice

		response.Items = append(response.Items, item)
		response.Total += item.Subtotal
	}

	if err = rows.Err(); err != nil {
		return GetCartQueryResponse{}, err
	}

	return response, nil
}
