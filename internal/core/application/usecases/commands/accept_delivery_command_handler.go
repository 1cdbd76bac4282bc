package commands

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/ports"
)

// AcceptDeliveryCommandHandler moves a pending delivery to assigned when
// its courier takes it.
type AcceptDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	clock      ports.Clock
}

// NewAcceptDeliveryCommandHandler creates a handler for delivery
// acceptance.
func NewAcceptDeliveryCommandHandler(uowFactory DeliveryUoWFactory, clock ports.Clock) AcceptDeliveryCommandHandler {
	return AcceptDeliveryCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the acceptance command.
func (h AcceptDeliveryCommandHandler) Handle(ctx context.Context, cmd AcceptDeliveryCommand) error {
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
	if err = d.Accept(actor, h.clock.Now()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
