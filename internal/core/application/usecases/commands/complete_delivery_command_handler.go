package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/wallet"
	"dispatch/internal/core/ports"
)

// CompleteDeliveryCommandHandler performs the hand-over: it verifies the
// confirmation code, freezes the waiting fee, marks the order delivered,
// settles the commission and releases the courier, all in one
// transaction.
type CompleteDeliveryCommandHandler struct {
	uowFactory UoWFactory
	cfg        ports.ConfigProvider
	clock      ports.Clock
	logger     *slog.Logger
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery
// completion.
func NewCompleteDeliveryCommandHandler(
	uowFactory UoWFactory,
	cfg ports.ConfigProvider,
	clock ports.Clock,
	logger *slog.Logger,
) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		cfg:        cfg,
		clock:      clock,
		logger:     logger.With("component", "complete_delivery"),
	}
}

// Handle processes the completion command.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
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

	now := h.clock.Now()

	deliveryRepo := uow.DeliveryRepository()
	d, err := deliveryRepo.GetForUpdate(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	ord, err := orderRepo.Get(ctx, d.OrderID())
	if err != nil {
		return err
	}

	actor, err := delivery.CourierActor(cmd.CourierID())
	if err != nil {
		return err
	}

	if err = d.ConfirmDelivered(actor, cmd.Code(), ord.ConfirmationCode(), now); err != nil {
		return err
	}

	if err = h.settleWaitingFee(ctx, uow, d, now); err != nil {
		return err
	}

	if err = ord.MarkDelivered(); err != nil {
		return err
	}

	courierRepo := uow.CourierRepository()
	c, err := courierRepo.GetForUpdate(ctx, cmd.CourierID())
	if err != nil {
		return err
	}
	c.RecordCompletedDelivery()
	c.Release()

	if _, err = settleCommission(ctx, uow, h.cfg, ord, d, now); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}
	if err = courierRepo.Update(ctx, c); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "delivery completed",
		"delivery_id", d.ID(), "order_id", ord.ID(), "courier_id", cmd.CourierID())

	return nil
}

// settleWaitingFee freezes the accrued waiting fee on the delivery and,
// when the courier is the configured beneficiary, moves it from the
// platform wallet to the courier wallet. A fee the platform wallet cannot
// cover is recorded on the delivery but not transferred; any other
// transfer failure propagates so the transaction rolls back rather than
// committing a one-legged transfer.
func (h CompleteDeliveryCommandHandler) settleWaitingFee(
	ctx context.Context, uow UoW, d *delivery.Delivery, now time.Time,
) error {
	policy, err := waitingFeePolicy(h.cfg)
	if err != nil {
		return err
	}

	fee, err := policy.CurrentFee(d, now)
	if err != nil {
		return err
	}

	if err = d.RecordWaitingFee(fee); err != nil {
		return err
	}

	if !fee.IsPositive() {
		return nil
	}

	beneficiary := h.cfg.GetString(ConfigWaitingFeeBeneficiary, BeneficiaryCourier)
	if beneficiary != BeneficiaryCourier || d.CourierID() == nil {
		return nil
	}

	err = transferWaitingFee(ctx, uow.WalletRepository(), *d.CourierID(), d.ID(),
		currency(h.cfg), fee, now)
	if errors.Is(err, wallet.ErrInsufficientBalance) {
		h.logger.WarnContext(ctx, "waiting fee transfer skipped",
			"delivery_id", d.ID(), "fee", fee, "error", err)
		return nil
	}
	return err
}
