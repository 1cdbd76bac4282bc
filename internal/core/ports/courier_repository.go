// Package ports defines the contracts between the domain layer and
// infrastructure: repositories, the unit of work, and the outbound
// collaborators of the dispatch flow. The interfaces enable dependency
// inversion and testability.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier
// aggregates.
type CourierRepository interface {
	// Add persists a new courier aggregate to storage.
	Add(ctx context.Context, courier *courier.Courier) error

	// Update persists changes to an existing courier aggregate.
	Update(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetForUpdate retrieves a courier and locks its row for the duration
	// of the surrounding transaction. Dispatch uses this to re-check
	// availability at commit time.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAllAssignable retrieves all couriers that are available and have
	// a known position. These are the dispatch candidates.
	GetAllAssignable(ctx context.Context) ([]*courier.Courier, error)
}
