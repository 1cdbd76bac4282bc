package commands

import (
	"context"
	"log/slog"

	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// ReassignDeliveryCommandHandler re-runs candidate selection for a
// pending delivery, excluding the unresponsive courier, within the
// tighter reassignment radius. The courier swap happens in place; the
// delivery stays pending.
type ReassignDeliveryCommandHandler struct {
	uowFactory DispatchUoWFactory
	engine     services.DispatchEngine
	cfg        ports.ConfigProvider
	notifier   ports.NotificationSink
	logger     *slog.Logger
}

// NewReassignDeliveryCommandHandler creates a handler for delivery
// reassignment.
func NewReassignDeliveryCommandHandler(
	uowFactory DispatchUoWFactory,
	engine services.DispatchEngine,
	cfg ports.ConfigProvider,
	notifier ports.NotificationSink,
	logger *slog.Logger,
) ReassignDeliveryCommandHandler {
	return ReassignDeliveryCommandHandler{
		uowFactory: uowFactory,
		engine:     engine,
		cfg:        cfg,
		notifier:   notifier,
		logger:     logger.With("component", "reassign_delivery"),
	}
}

// Handle processes the reassignment command.
func (h ReassignDeliveryCommandHandler) Handle(ctx context.Context, cmd ReassignDeliveryCommand) error {
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
	courierRepo := uow.CourierRepository()

	d, err := deliveryRepo.GetForUpdate(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	previousID := d.CourierID()

	candidates, err := courierRepo.GetAllAssignable(ctx)
	if err != nil {
		return err
	}

	pickup := d.Pickup()
	radius := h.cfg.GetFloat(ConfigReassignRadiusKm, DefaultReassignRadiusKm)
	winner, err := h.engine.SelectCourier(&pickup, candidates, radius, previousID)
	if err != nil {
		return err
	}

	locked, err := courierRepo.GetForUpdate(ctx, winner.ID())
	if err != nil {
		return err
	}
	if !locked.IsAssignable() {
		return services.ErrNoCourierAvailable
	}

	if err = d.Reassign(locked.ID()); err != nil {
		return err
	}
	if err = locked.MarkBusy(); err != nil {
		return err
	}

	// The previous courier was reserved at dispatch; give them back.
	if previousID != nil {
		previous, err := courierRepo.GetForUpdate(ctx, *previousID)
		if err != nil {
			return err
		}
		previous.Release()
		if err = courierRepo.Update(ctx, previous); err != nil {
			return err
		}
	}

	if err = courierRepo.Update(ctx, locked); err != nil {
		return err
	}
	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.notifier.CourierAssigned(ctx, locked.ID(), d.ID()); err != nil {
		h.logger.WarnContext(ctx, "courier notification failed",
			"courier_id", locked.ID(), "error", err)
	}

	return nil
}
