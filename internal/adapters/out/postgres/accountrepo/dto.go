// Package accountrepo persists participant accounts and projects courier
// candidates for dispatch.
package accountrepo

import (
	"github.com/google/uuid"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"
)

// AccountDTO represents one persisted participant account. Coordinates
// are nullable; accounts without them never enter the dispatch pool.
type AccountDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"not null"`
	Role         string    `gorm:"index;not null"`
	Phone        string
	BusinessName string
	Latitude     *float64
	Longitude    *float64
	Active       bool `gorm:"not null"`
	Verified     bool `gorm:"not null"`
}

// TableName specifies the database table name for accounts.
func (AccountDTO) TableName() string {
	return "accounts"
}

func fromDomain(aggregate *account.Account) AccountDTO {
	dto := AccountDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Role:         aggregate.Role().String(),
		Phone:        aggregate.Phone(),
		BusinessName: aggregate.BusinessName(),
		Active:       aggregate.IsActive(),
		Verified:     aggregate.IsVerified(),
	}

	if location := aggregate.Location(); location != nil {
		latitude := location.Latitude()
		longitude := location.Longitude()
		dto.Latitude = &latitude
		dto.Longitude = &longitude
	}

	return dto
}

func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := account.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if pointErr != nil {
			return nil, pointErr
		}
		location = &point
	}

	return account.RestoreAccount(id, dto.Name, role, dto.Phone, dto.BusinessName,
		location, dto.Active, dto.Verified)
}

func toCourier(dto AccountDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	point, err := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
	if err != nil {
		return nil, err
	}

	return courier.NewCourier(id, dto.Name, point)
}
