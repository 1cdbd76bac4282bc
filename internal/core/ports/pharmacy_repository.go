package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/pharmacy"
)

// PharmacyRepository defines the persistence contract for pharmacy
// aggregates.
type PharmacyRepository interface {
	// Add persists a new pharmacy aggregate to storage.
	Add(ctx context.Context, aggregate *pharmacy.Pharmacy) error

	// Update persists changes to an existing pharmacy aggregate.
	Update(ctx context.Context, aggregate *pharmacy.Pharmacy) error

	// Get retrieves a pharmacy aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*pharmacy.Pharmacy, error)
}
