// Package commissionrepo provides data transfer objects and mapping
// functions for commission persistence. A commission and its lines are
// written once when an order settles and never modified afterwards.
package commissionrepo

import (
	"time"

	"dispatch/internal/core/domain/model/commission"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
)

// CommissionDTO represents the database structure for persisting commission
// records. The unique index on order_id backs the settle-once guarantee.
type CommissionDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	TotalAmount string    `gorm:"type:numeric(14,2);not null"`
	Currency    string    `gorm:"type:varchar(3);not null"`
	CreatedAt   time.Time `gorm:"not null"`
	Lines       []LineDTO `gorm:"foreignKey:CommissionID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention to use "commissions".
func (CommissionDTO) TableName() string {
	return "commissions"
}

// LineDTO represents a single actor's share of a commission. The composite
// primary key allows at most one line per actor per commission.
type LineDTO struct {
	CommissionID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Actor        string    `gorm:"type:varchar(16);primaryKey"`
	Rate         string    `gorm:"type:numeric(8,6);not null"`
	Amount       string    `gorm:"type:numeric(14,2);not null"`
}

// TableName overrides GORM's default naming convention to use
// "commission_lines".
func (LineDTO) TableName() string {
	return "commission_lines"
}

// fromDomain converts a commission domain aggregate to its database
// representation.
func fromDomain(aggregate *commission.Commission) CommissionDTO {
	id := aggregate.ID().Bytes()
	lines := make([]LineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, LineDTO{
			CommissionID: id,
			Actor:        string(line.Actor()),
			Rate:         line.Rate().String(),
			Amount:       line.Amount().Amount().String(),
		})
	}

	return CommissionDTO{
		ID:          id,
		OrderID:     aggregate.OrderID().Bytes(),
		TotalAmount: aggregate.Total().Amount().String(),
		Currency:    aggregate.Total().Currency(),
		CreatedAt:   aggregate.CreatedAt(),
		Lines:       lines,
	}
}

// toDomain converts a database row with its lines to a commission domain
// aggregate using RestoreCommission.
func toDomain(dto CommissionDTO) (*commission.Commission, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoneyFromString(dto.TotalAmount, dto.Currency)
	if err != nil {
		return nil, err
	}

	lines := make([]commission.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		rate, lErr := decimal.Parse(lineDTO.Rate)
		if lErr != nil {
			return nil, lErr
		}
		amount, lErr := kernel.NewMoneyFromString(lineDTO.Amount, dto.Currency)
		if lErr != nil {
			return nil, lErr
		}
		line, lErr := commission.NewLine(commission.Actor(lineDTO.Actor), rate, amount)
		if lErr != nil {
			return nil, lErr
		}
		lines = append(lines, line)
	}

	return commission.RestoreCommission(id, orderID, total, lines, dto.CreatedAt)
}
