package commands

import (
	"context"
	"log/slog"

	"dispatch/internal/core/ports"
)

// CancelDeliveryCommandHandler cancels a non-terminal delivery, closes an
// open waiting window, and frees the reserved courier.
type CancelDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	clock      ports.Clock
	notifier   ports.NotificationSink
	logger     *slog.Logger
}

// NewCancelDeliveryCommandHandler creates a handler for delivery
// cancellation.
func NewCancelDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	clock ports.Clock,
	notifier ports.NotificationSink,
	logger *slog.Logger,
) CancelDeliveryCommandHandler {
	return CancelDeliveryCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		notifier:   notifier,
		logger:     logger.With("component", "cancel_delivery"),
	}
}

// Handle processes the cancellation command.
func (h CancelDeliveryCommandHandler) Handle(ctx context.Context, cmd CancelDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	d, err := deliveryRepo.GetForUpdate(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = d.Cancel(cmd.Actor(), cmd.Reason(), h.clock.Now()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}

	if err = releaseCourier(ctx, uow.CourierRepository(), d.CourierID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.notifier.DeliveryCancelled(ctx, d.ID(), cmd.Reason()); err != nil {
		h.logger.WarnContext(ctx, "cancellation notification failed",
			"delivery_id", d.ID(), "error", err)
	}

	return nil
}
