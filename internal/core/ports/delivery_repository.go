package ports

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery
// aggregates. Deliveries are unique per order; Add fails on a second
// delivery for the same order.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetForUpdate retrieves a delivery and locks its row for the
	// duration of the surrounding transaction. State transitions load
	// through it so concurrent writers serialize on the row and the
	// loser of a deliver-vs-cancel race sees the winner's state.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetByOrderID retrieves the delivery tied to an order, if one exists.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)

	// GetAllWithOpenWaiting retrieves all deliveries whose waiting window
	// is open. The timeout sweep iterates over these.
	GetAllWithOpenWaiting(ctx context.Context) ([]*delivery.Delivery, error)
}
