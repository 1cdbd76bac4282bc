// Package pharmacyrepo provides data transfer objects and mapping functions
// for pharmacy persistence.
package pharmacyrepo

import (
	"dispatch/internal/core/domain/model/commission"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/pharmacy"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
)

// PharmacyDTO represents the database structure for persisting pharmacy
// aggregates. The three rate columns are set together or not at all; NULL
// means the pharmacy settles at the platform-wide rates.
type PharmacyDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	LocationLat  *float64  `gorm:"type:double precision"`
	LocationLon  *float64  `gorm:"type:double precision"`
	RatePlatform *string   `gorm:"type:numeric(8,6)"`
	RatePharmacy *string   `gorm:"type:numeric(8,6)"`
	RateCourier  *string   `gorm:"type:numeric(8,6)"`
}

// TableName overrides GORM's default naming convention to use "pharmacies".
func (PharmacyDTO) TableName() string {
	return "pharmacies"
}

// fromDomain converts a pharmacy domain aggregate to its database
// representation.
func fromDomain(aggregate *pharmacy.Pharmacy) PharmacyDTO {
	var lat, lon *float64
	if loc := aggregate.Location(); loc != nil {
		latVal, lonVal := loc.Latitude(), loc.Longitude()
		lat, lon = &latVal, &lonVal
	}

	var platform, pharmacyRate, courier *string
	if rates := aggregate.RateOverride(); rates != nil {
		p, ph, c := rates.Platform.String(), rates.Pharmacy.String(), rates.Courier.String()
		platform, pharmacyRate, courier = &p, &ph, &c
	}

	return PharmacyDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		LocationLat:  lat,
		LocationLon:  lon,
		RatePlatform: platform,
		RatePharmacy: pharmacyRate,
		RateCourier:  courier,
	}
}

// toDomain converts a database row to a pharmacy domain aggregate using
// RestorePharmacy.
func toDomain(dto PharmacyDTO) (*pharmacy.Pharmacy, error) {
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

	var rateOverride *commission.RateSet
	if dto.RatePlatform != nil && dto.RatePharmacy != nil && dto.RateCourier != nil {
		platform, pErr := decimal.Parse(*dto.RatePlatform)
		if pErr != nil {
			return nil, pErr
		}
		pharmacyRate, pErr := decimal.Parse(*dto.RatePharmacy)
		if pErr != nil {
			return nil, pErr
		}
		courier, pErr := decimal.Parse(*dto.RateCourier)
		if pErr != nil {
			return nil, pErr
		}
		rates, pErr := commission.NewRateSet(platform, pharmacyRate, courier)
		if pErr != nil {
			return nil, pErr
		}
		rateOverride = &rates
	}

	return pharmacy.RestorePharmacy(id, dto.Name, location, rateOverride)
}
