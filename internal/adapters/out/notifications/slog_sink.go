// Package notifications provides the outbound notification adapter.
// Notifications are best-effort: callers log a failed send and carry on.
package notifications

import (
	"context"
	"log/slog"

	"dispatch/internal/core/domain/model/kernel"
)

// SlogNotificationSink writes notifications to the structured log. It
// stands in for the push/SMS provider; swapping it out only requires
// another implementation of the same port.
type SlogNotificationSink struct {
	logger *slog.Logger
}

// NewSlogNotificationSink creates a log-backed notification sink.
func NewSlogNotificationSink(logger *slog.Logger) *SlogNotificationSink {
	return &SlogNotificationSink{
		logger: logger.With("component", "notifications"),
	}
}

// CourierAssigned tells a courier a delivery was assigned to them.
func (s *SlogNotificationSink) CourierAssigned(ctx context.Context, courierID, deliveryID kernel.UUID) error {
	s.logger.InfoContext(ctx, "notify courier assigned",
		"courier_id", courierID.String(),
		"delivery_id", deliveryID.String(),
	)
	return nil
}

// CourierArrived tells the customer the courier is at the door.
func (s *SlogNotificationSink) CourierArrived(ctx context.Context, orderID, deliveryID kernel.UUID) error {
	s.logger.InfoContext(ctx, "notify courier arrived",
		"order_id", orderID.String(),
		"delivery_id", deliveryID.String(),
	)
	return nil
}

// DeliveryCancelled tells the affected parties a delivery was called off.
func (s *SlogNotificationSink) DeliveryCancelled(ctx context.Context, deliveryID kernel.UUID, reason string) error {
	s.logger.InfoContext(ctx, "notify delivery cancelled",
		"delivery_id", deliveryID.String(),
		"reason", reason,
	)
	return nil
}
