// Package orderrepo provides data transfer objects and mapping functions
// for order persistence.
package orderrepo

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Monetary amounts are stored as numeric text alongside the
// currency code and reconstructed through the money value object.
type OrderDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Reference        string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	PharmacyID       uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomerID       uuid.UUID `gorm:"type:uuid;not null;index"`
	TotalAmount      string    `gorm:"type:numeric(14,2);not null"`
	Currency         string    `gorm:"type:varchar(3);not null"`
	DeliveryAddress  string    `gorm:"type:varchar(255);not null"`
	DropoffLat       float64   `gorm:"type:double precision;not null"`
	DropoffLon       float64   `gorm:"type:double precision;not null"`
	ConfirmationCode string    `gorm:"type:varchar(8);not null"`
	Status           int       `gorm:"type:int;not null;index"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database
// representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		Reference:        aggregate.Reference(),
		PharmacyID:       aggregate.PharmacyID().Bytes(),
		CustomerID:       aggregate.CustomerID().Bytes(),
		TotalAmount:      aggregate.Total().Amount().String(),
		Currency:         aggregate.Total().Currency(),
		DeliveryAddress:  aggregate.DeliveryAddress(),
		DropoffLat:       aggregate.Dropoff().Latitude(),
		DropoffLon:       aggregate.Dropoff().Longitude(),
		ConfirmationCode: aggregate.ConfirmationCode(),
		Status:           int(aggregate.Status()),
	}
}

// toDomain converts a database row to an order domain aggregate using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	pharmacyID, err := kernel.UUIDFromBytes(dto.PharmacyID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoneyFromString(dto.TotalAmount, dto.Currency)
	if err != nil {
		return nil, err
	}
	dropoff, err := kernel.NewGeoPoint(dto.DropoffLat, dto.DropoffLon)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.Reference,
		pharmacyID,
		customerID,
		total,
		dto.DeliveryAddress,
		dropoff,
		dto.ConfirmationCode,
		order.Status(dto.Status),
	)
}
