// Package cartrepo persists session cart rows. The table carries a
// uniqueness constraint over (session_id, product_id); repeated additions
// of the same product merge in the database rather than in application code.
package cartrepo

import (
	"time"

	"github.com/google/uuid"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
)

// CartItemDTO represents one persisted cart row.
type CartItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	SessionID string    `gorm:"uniqueIndex:idx_cart_session_product;not null"`
	ProductID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_cart_session_product;not null"`
	Quantity  int       `gorm:"not null"`
	CreatedAt time.Time
}

// TableName specifies the database table name for cart rows.
func (CartItemDTO) TableName() string {
	return "cart_items"
}

func fromDomain(item *cart.Item) CartItemDTO {
	return CartItemDTO{
		ID:        item.ID().Bytes(),
		SessionID: item.SessionID(),
		ProductID: item.ProductID().Bytes(),
		Quantity:  item.Quantity(),
		CreatedAt: item.CreatedAt(),
	}
}

func toDomain(dto CartItemDTO) (*cart.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return cart.NewItem(id, dto.SessionID, productID, dto.Quantity, dto.CreatedAt)
}
