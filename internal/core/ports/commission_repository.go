package ports

import (
	"context"

	"dispatch/internal/core/domain/model/commission"
	"dispatch/internal/core/domain/model/kernel"
)

// CommissionRepository defines the persistence contract for commission
// records. Commissions are unique per order and immutable once created.
type CommissionRepository interface {
	// Add persists a new commission with its lines.
	Add(ctx context.Context, aggregate *commission.Commission) error

	// Get retrieves a commission by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*commission.Commission, error)

	// GetByOrderID retrieves the commission distributed for an order, if
	// one exists. The distribution use case checks this inside its
	// transaction to stay idempotent.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*commission.Commission, error)
}
