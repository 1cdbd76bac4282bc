package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles order intake. The fulfilling pharmacy
// must exist; its location may still be missing at this point, dispatch
// checks that later.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order intake.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	if _, err := uow.PharmacyRepository().Get(ctx, cmd.PharmacyID()); err != nil {
		return err
	}

	orderEntity, err := order.NewOrder(
		cmd.OrderID(), cmd.Reference(), cmd.PharmacyID(), cmd.CustomerID(),
		cmd.Total(), cmd.DeliveryAddress(), cmd.Dropoff(), cmd.ConfirmationCode(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, orderEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
