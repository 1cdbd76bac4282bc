// Package courierrepo provides data transfer objects and mapping functions
// for courier persistence. It implements the repository pattern for the
// courier aggregate, converting between domain entities and database rows.
package courierrepo

import (
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting courier
// aggregates. The position columns are nullable because a courier has no
// known position until the first location ping.
type CourierDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                string    `gorm:"type:varchar(255);not null"`
	Vehicle             string    `gorm:"type:varchar(16);not null"`
	Status              int       `gorm:"type:int;not null;index"`
	LocationLat         *float64  `gorm:"type:double precision"`
	LocationLon         *float64  `gorm:"type:double precision"`
	Rating              float64   `gorm:"type:double precision;not null"`
	CompletedDeliveries int       `gorm:"type:int;not null"`
}

// TableName overrides GORM's default naming convention to use "couriers".
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier domain aggregate to its database
// representation.
func fromDomain(aggregate *courier.Courier) CourierDTO {
	var lat, lon *float64
	if loc := aggregate.Location(); loc != nil {
		latVal, lonVal := loc.Latitude(), loc.Longitude()
		lat, lon = &latVal, &lonVal
	}

	return CourierDTO{
		ID:                  aggregate.ID().Bytes(),
		Name:                aggregate.Name(),
		Vehicle:             string(aggregate.Vehicle()),
		Status:              int(aggregate.Status()),
		LocationLat:         lat,
		LocationLon:         lon,
		Rating:              aggregate.Rating(),
		CompletedDeliveries: aggregate.CompletedDeliveries(),
	}
}

// toDomain converts a database row to a courier domain aggregate using
// RestoreCourier.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.LocationLat != nil && dto.LocationLon != nil {
		point, pErr := kernel.NewGeoPoint(*dto.LocationLat, *dto.LocationLon)
		if pErr != nil {
			return nil, pErr
		}
		location = &point
	}

	return courier.RestoreCourier(
		id,
		dto.Name,
		kernel.VehicleType(dto.Vehicle),
		courier.Status(dto.Status),
		location,
		dto.Rating,
		dto.CompletedDeliveries,
	)
}
