// Package courierrepo persists courier accounts into the couriers table.
package courierrepo

import (
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO is the database representation of a courier account.
// Lat and Lon are both null until the courier reports a location for the
// first time; they are always set or cleared together.
type CourierDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string    `gorm:"not null"`
	Lat    *float64
	Lon    *float64
	Rating float64 `gorm:"not null"`
	Rate   float64 `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "couriers".
func (CourierDTO) TableName() string {
	return "couriers"
}

func fromDomain(aggregate *account.Courier) CourierDTO {
	var lat, lon *float64
	if loc := aggregate.Location(); loc != nil {
		latVal, lonVal := loc.Lat(), loc.Lon()
		lat, lon = &latVal, &lonVal
	}

	return CourierDTO{
		ID:     aggregate.ID().Bytes(),
		Name:   aggregate.Name(),
		Lat:    lat,
		Lon:    lon,
		Rating: aggregate.Rating(),
		Rate:   aggregate.Rate(),
	}
}

func toDomain(dto CourierDTO) (*account.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.Lat != nil && dto.Lon != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.Lat, *dto.Lon)
		if pointErr != nil {
			return nil, pointErr
		}
		location = &point
	}

	return account.RestoreCourier(id, dto.Name, location, dto.Rating, dto.Rate)
}
