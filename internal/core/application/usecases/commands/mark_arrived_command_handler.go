package commands

import (
	"context"
	"log/slog"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/ports"
)

// MarkArrivedCommandHandler moves an in-transit delivery to arrived,
// opens the waiting window, and tells the customer their courier is at
// the door.
type MarkArrivedCommandHandler struct {
	uowFactory DeliveryUoWFactory
	clock      ports.Clock
	notifier   ports.NotificationSink
	logger     *slog.Logger
}

// NewMarkArrivedCommandHandler creates a handler for the arrival event.
func NewMarkArrivedCommandHandler(
	uowFactory DeliveryUoWFactory,
	clock ports.Clock,
	notifier ports.NotificationSink,
	logger *slog.Logger,
) MarkArrivedCommandHandler {
	return MarkArrivedCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		notifier:   notifier,
		logger:     logger.With("component", "mark_arrived"),
	}
}

// Handle processes the arrival command. The customer notification is
// best-effort and sent only after the transaction commits.
func (h MarkArrivedCommandHandler) Handle(ctx context.Context, cmd MarkArrivedCommand) error {
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

	actor, err := delivery.CourierActor(cmd.CourierID())
	if err != nil {
		return err
	}
	if err = d.MarkArrived(actor, h.clock.Now()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.notifier.CourierArrived(ctx, d.OrderID(), d.ID()); err != nil {
		h.logger.WarnContext(ctx, "customer notification failed",
			"delivery_id", d.ID(), "error", err)
	}

	return nil
}
