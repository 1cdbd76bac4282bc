// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence. The deliveries table carries the full lifecycle
// timeline of each leg so the aggregate can be restored at any state.
package deliveryrepo

import (
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates. The unique index on order_id enforces one delivery per order
// at the storage level. An open waiting window is a row with
// waiting_started_at set and waiting_ended_at still NULL; the timeout sweep
// selects on exactly that condition.
type DeliveryDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID            uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	CourierID          *uuid.UUID `gorm:"type:uuid;index"`
	Status             int        `gorm:"type:int;not null;index"`
	PickupLat          float64    `gorm:"type:double precision;not null"`
	PickupLon          float64    `gorm:"type:double precision;not null"`
	DropoffLat         float64    `gorm:"type:double precision;not null"`
	DropoffLon         float64    `gorm:"type:double precision;not null"`
	DistanceKm         float64    `gorm:"type:double precision;not null"`
	EstimatedMinutes   int        `gorm:"type:int;not null"`
	FeeAmount          string     `gorm:"type:numeric(14,2);not null"`
	Currency           string     `gorm:"type:varchar(3);not null"`
	CreatedAt          time.Time  `gorm:"not null"`
	AssignedAt         *time.Time
	PickedUpAt         *time.Time
	DeliveredAt        *time.Time
	WaitingStartedAt   *time.Time `gorm:"index"`
	WaitingEndedAt     *time.Time
	WaitingFeeAmount   *string    `gorm:"type:numeric(14,2)"`
	AutoCancelledAt    *time.Time
	CancellationReason string `gorm:"type:varchar(255);not null;default:''"`
	FailureReason      string `gorm:"type:varchar(255);not null;default:''"`
}

// TableName overrides GORM's default naming convention to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery domain aggregate to its database
// representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	var courierID *uuid.UUID
	if id := aggregate.CourierID(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	var waitingFee *string
	if fee := aggregate.WaitingFee(); fee != nil {
		amount := fee.Amount().String()
		waitingFee = &amount
	}

	return DeliveryDTO{
		ID:                 aggregate.ID().Bytes(),
		OrderID:            aggregate.OrderID().Bytes(),
		CourierID:          courierID,
		Status:             int(aggregate.Status()),
		PickupLat:          aggregate.Pickup().Latitude(),
		PickupLon:          aggregate.Pickup().Longitude(),
		DropoffLat:         aggregate.Dropoff().Latitude(),
		DropoffLon:         aggregate.Dropoff().Longitude(),
		DistanceKm:         aggregate.DistanceKm(),
		EstimatedMinutes:   aggregate.EstimatedMinutes(),
		FeeAmount:          aggregate.Fee().Amount().String(),
		Currency:           aggregate.Fee().Currency(),
		CreatedAt:          aggregate.CreatedAt(),
		AssignedAt:         aggregate.AssignedAt(),
		PickedUpAt:         aggregate.PickedUpAt(),
		DeliveredAt:        aggregate.DeliveredAt(),
		WaitingStartedAt:   aggregate.WaitingStartedAt(),
		WaitingEndedAt:     aggregate.WaitingEndedAt(),
		WaitingFeeAmount:   waitingFee,
		AutoCancelledAt:    aggregate.AutoCancelledAt(),
		CancellationReason: aggregate.CancellationReason(),
		FailureReason:      aggregate.FailureReason(),
	}
}

// toDomain converts a database row to a delivery domain aggregate using
// RestoreDelivery.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cid, cErr := kernel.UUIDFromBytes(dto.CourierID[:])
		if cErr != nil {
			return nil, cErr
		}
		courierID = &cid
	}

	pickup, err := kernel.NewGeoPoint(dto.PickupLat, dto.PickupLon)
	if err != nil {
		return nil, err
	}
	dropoff, err := kernel.NewGeoPoint(dto.DropoffLat, dto.DropoffLon)
	if err != nil {
		return nil, err
	}
	fee, err := kernel.NewMoneyFromString(dto.FeeAmount, dto.Currency)
	if err != nil {
		return nil, err
	}

	var waitingFee *kernel.Money
	if dto.WaitingFeeAmount != nil {
		amount, wErr := kernel.NewMoneyFromString(*dto.WaitingFeeAmount, dto.Currency)
		if wErr != nil {
			return nil, wErr
		}
		waitingFee = &amount
	}

	return delivery.RestoreDelivery(
		id,
		orderID,
		courierID,
		delivery.Status(dto.Status),
		pickup,
		dropoff,
		dto.DistanceKm,
		dto.EstimatedMinutes,
		fee,
		dto.CreatedAt,
		dto.AssignedAt, dto.PickedUpAt, dto.DeliveredAt,
		dto.WaitingStartedAt, dto.WaitingEndedAt,
		waitingFee,
		dto.AutoCancelledAt,
		dto.CancellationReason, dto.FailureReason,
	)
}
