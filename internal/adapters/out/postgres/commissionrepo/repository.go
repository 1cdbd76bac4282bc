package commissionrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/commission"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCommissionRepository implements CommissionRepository using GORM.
type GormCommissionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCommissionRepository creates a new GORM commission repository.
func NewGormCommissionRepository(db *gorm.DB, tracker aggregateTracker) *GormCommissionRepository {
	return &GormCommissionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new commission with its lines. The unique index on order_id
// rejects a second commission for the same order.
func (r *GormCommissionRepository) Add(ctx context.Context, aggregate *commission.Commission) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a commission by ID.
func (r *GormCommissionRepository) Get(ctx context.Context, id kernel.UUID) (*commission.Commission, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CommissionDTO
	if err := r.db.WithContext(ctx).Preload("Lines").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("commission", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderID retrieves the commission distributed for an order, if one
// exists.
func (r *GormCommissionRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*commission.Commission, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto CommissionDTO
	if err := r.db.WithContext(ctx).Preload("Lines").First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("commission for order", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
