package pharmacyrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/pharmacy"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPharmacyRepository implements PharmacyRepository using GORM.
type GormPharmacyRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPharmacyRepository creates a new GORM pharmacy repository.
func NewGormPharmacyRepository(db *gorm.DB, tracker aggregateTracker) *GormPharmacyRepository {
	return &GormPharmacyRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new pharmacy to the database.
func (r *GormPharmacyRepository) Add(ctx context.Context, aggregate *pharmacy.Pharmacy) error {
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

// Update saves an existing pharmacy to the database.
func (r *GormPharmacyRepository) Update(ctx context.Context, aggregate *pharmacy.Pharmacy) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a pharmacy by ID.
func (r *GormPharmacyRepository) Get(ctx context.Context, id kernel.UUID) (*pharmacy.Pharmacy, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PharmacyDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pharmacy", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
