package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
)

// NotificationSink delivers best-effort notifications to couriers and
// customers. Implementations may fail; callers log the failure and carry
// on, a lost notification never fails the surrounding use case.
type NotificationSink interface {
	// CourierAssigned tells a courier a delivery was assigned to them.
	CourierAssigned(ctx context.Context, courierID, deliveryID kernel.UUID) error

	// CourierArrived tells the customer the courier is at the door.
	CourierArrived(ctx context.Context, orderID, deliveryID kernel.UUID) error

	// DeliveryCancelled tells the affected parties a delivery was called
	// off.
	DeliveryCancelled(ctx context.Context, deliveryID kernel.UUID, reason string) error
}
