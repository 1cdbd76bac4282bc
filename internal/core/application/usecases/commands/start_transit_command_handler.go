package commands

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"
)

// StartTransitCommandHandler moves a picked-up delivery to in_transit.
type StartTransitCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewStartTransitCommandHandler creates a handler for the transit start.
func NewStartTransitCommandHandler(uowFactory DeliveryUoWFactory) StartTransitCommandHandler {
	return StartTransitCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transit-start command.
func (h StartTransitCommandHandler) Handle(ctx context.Context, cmd StartTransitCommand) error {
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
	if err = d.StartTransit(actor); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
