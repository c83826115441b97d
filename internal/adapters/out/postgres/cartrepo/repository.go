package cartrepo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// GormCartRepository implements ports.CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// Upsert stores a cart row. A concurrent addition of the same product to
// the same session increments the stored quantity atomically instead of
// inserting a second row.
func (r *GormCartRepository) Upsert(ctx context.Context, item *cart.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "session_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"quantity": gorm.Expr("cart_items.quantity + ?", dto.Quantity),
		}),
	}).Create(&dto).Error
}

// GetBySession retrieves all rows held by a session, oldest first. Rows are
// locked for the duration of the surrounding transaction so a concurrent
// checkout of the same session serializes on them.
func (r *GormCartRepository) GetBySession(ctx context.Context, sessionID string) ([]*cart.Item, error) {
	var dtos []CartItemDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("session_id = ?", sessionID).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	items := make([]*cart.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, itemErr := toDomain(dto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return items, nil
}

// Remove deletes the row for a product from the session cart.
// Returns errs.ErrObjectNotFound when the session holds no such product.
func (r *GormCartRepository) Remove(ctx context.Context, sessionID string, productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("session_id = ? AND product_id = ?", sessionID, productID.Bytes()).
		Delete(&CartItemDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("productId", productID)
	}

	return nil
}

// Clear deletes every row held by the session.
func (r *GormCartRepository) Clear(ctx context.Context, sessionID string) error {
	return r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&CartItemDTO{}).Error
}
