package commands

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/ports"
)

// PickUpDeliveryCommandHandler moves an assigned delivery to picked_up.
type PickUpDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	clock      ports.Clock
}

// NewPickUpDeliveryCommandHandler creates a handler for the pharmacy
// pickup.
func NewPickUpDeliveryCommandHandler(uowFactory DeliveryUoWFactory, clock ports.Clock) PickUpDeliveryCommandHandler {
	return PickUpDeliveryCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the pickup command.
func (h PickUpDeliveryCommandHandler) Handle(ctx context.Context, cmd PickUpDeliveryCommand) error {
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
	if err = d.PickUp(actor, h.clock.Now()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
