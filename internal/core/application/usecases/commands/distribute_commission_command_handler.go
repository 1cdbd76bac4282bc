package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/commission"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// ErrOrderNotDelivered is returned when settling an order that has not
// been delivered.
var ErrOrderNotDelivered = errors.New("order is not delivered")

// DistributeCommissionCommandHandler settles a delivered order into the
// platform, pharmacy and courier wallets. Safe to retry; an order is
// settled at most once.
type DistributeCommissionCommandHandler struct {
	uowFactory SettlementUoWFactory
	cfg        ports.ConfigProvider
	clock      ports.Clock
}

// NewDistributeCommissionCommandHandler creates a handler for commission
// distribution.
func NewDistributeCommissionCommandHandler(
	uowFactory SettlementUoWFactory,
	cfg ports.ConfigProvider,
	clock ports.Clock,
) DistributeCommissionCommandHandler {
	return DistributeCommissionCommandHandler{
		uowFactory: uowFactory,
		cfg:        cfg,
		clock:      clock,
	}
}

// Handle processes the distribution command.
func (h DistributeCommissionCommandHandler) Handle(
	ctx context.Context, cmd DistributeCommissionCommand,
) (*commission.Commission, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if ord.Status() != order.Delivered {
		return nil, ErrOrderNotDelivered
	}

	// Settlement without a delivery happens for over-the-counter hand-offs;
	// the courier share then folds into the pharmacy.
	var d *delivery.Delivery
	d, err = uow.DeliveryRepository().GetByOrderID(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		d = nil
	} else if err != nil {
		return nil, err
	}

	c, err := settleCommission(ctx, uow, h.cfg, ord, d, h.clock.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
