package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/wallet"
	"dispatch/internal/core/ports"
)

// AutoCancelReason is recorded on deliveries cancelled by the sweep.
const AutoCancelReason = "timeout"

// SweepWaitingTimeoutsCommandHandler cancels deliveries whose customer
// never showed up within the waiting timeout. The accrued waiting fee is
// frozen on each delivery, routed to the configured beneficiary, and the
// courier goes back to the dispatch pool.
type SweepWaitingTimeoutsCommandHandler struct {
	uowFactory SweepUoWFactory
	cfg        ports.ConfigProvider
	clock      ports.Clock
	notifier   ports.NotificationSink
	logger     *slog.Logger
}

// NewSweepWaitingTimeoutsCommandHandler creates a handler for the
// waiting-timeout sweep.
func NewSweepWaitingTimeoutsCommandHandler(
	uowFactory SweepUoWFactory,
	cfg ports.ConfigProvider,
	clock ports.Clock,
	notifier ports.NotificationSink,
	logger *slog.Logger,
) SweepWaitingTimeoutsCommandHandler {
	return SweepWaitingTimeoutsCommandHandler{
		uowFactory: uowFactory,
		cfg:        cfg,
		clock:      clock,
		notifier:   notifier,
		logger:     logger.With("component", "waiting_sweep"),
	}
}

// Handle processes the sweep and returns the number of deliveries it
// cancelled.
func (h SweepWaitingTimeoutsCommandHandler) Handle(ctx context.Context, cmd SweepWaitingTimeoutsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	policy, err := waitingFeePolicy(h.cfg)
	if err != nil {
		return 0, err
	}

	deliveryRepo := uow.DeliveryRepository()
	open, err := deliveryRepo.GetAllWithOpenWaiting(ctx)
	if err != nil {
		return 0, err
	}

	now := h.clock.Now()
	cancelled := make([]kernel.UUID, 0, len(open))

	for _, candidate := range open {
		if !policy.HasTimedOut(candidate, now) {
			continue
		}

		// Re-read under lock. A completion or cancellation committed
		// after the snapshot closes the waiting window; the sweep must
		// leave that delivery alone instead of overwriting it from the
		// stale copy.
		d, err := deliveryRepo.GetForUpdate(ctx, candidate.ID())
		if err != nil {
			return 0, err
		}
		if !policy.HasTimedOut(d, now) {
			continue
		}

		// The fee must be read before cancellation closes the window.
		fee, err := policy.CurrentFee(d, now)
		if err != nil {
			return 0, err
		}

		if err = d.AutoCancel(AutoCancelReason, now); err != nil {
			return 0, err
		}
		if err = d.RecordWaitingFee(fee); err != nil {
			return 0, err
		}

		if err = deliveryRepo.Update(ctx, d); err != nil {
			return 0, err
		}

		if err = releaseCourier(ctx, uow.CourierRepository(), d.CourierID()); err != nil {
			return 0, err
		}

		if err = h.settleFee(ctx, uow, d, fee, now); err != nil {
			return 0, err
		}

		cancelled = append(cancelled, d.ID())
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	for _, id := range cancelled {
		if err = h.notifier.DeliveryCancelled(ctx, id, AutoCancelReason); err != nil {
			h.logger.WarnContext(ctx, "cancellation notification failed",
				"delivery_id", id, "error", err)
		}
	}

	if len(cancelled) > 0 {
		h.logger.InfoContext(ctx, "waiting timeouts swept", "cancelled", len(cancelled))
	}

	return len(cancelled), nil
}

// settleFee routes a frozen waiting fee to the configured beneficiary. A
// transfer the platform wallet cannot cover is logged and skipped, with
// the fee left on the delivery for later reconciliation; any other
// failure aborts the sweep so the transaction rolls back rather than
// committing a one-legged transfer.
func (h SweepWaitingTimeoutsCommandHandler) settleFee(
	ctx context.Context, uow SweepUoW, d *delivery.Delivery, fee kernel.Money, now time.Time,
) error {
	if !fee.IsPositive() || d.CourierID() == nil {
		return nil
	}

	beneficiary := h.cfg.GetString(ConfigWaitingFeeBeneficiary, BeneficiaryCourier)
	if beneficiary != BeneficiaryCourier {
		return nil
	}

	err := transferWaitingFee(ctx, uow.WalletRepository(), *d.CourierID(), d.ID(),
		currency(h.cfg), fee, now)
	if errors.Is(err, wallet.ErrInsufficientBalance) {
		h.logger.WarnContext(ctx, "waiting fee transfer skipped",
			"delivery_id", d.ID(), "fee", fee, "error", err)
		return nil
	}
	return err
}
