package commands

import (
	"context"
	"errors"
	"log/slog"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrAlreadyAssigned is returned when manually assigning an order
	// that already has a delivery.
	ErrAlreadyAssigned = errors.New("order already has a delivery")
	// ErrOrderNotReady is returned when dispatching an order that has not
	// reached the ready status.
	ErrOrderNotReady = errors.New("order is not ready for dispatch")
	// ErrCourierNotAssignable is returned when a manually chosen courier
	// is unavailable or has no known position.
	ErrCourierNotAssignable = errors.New("courier is not assignable")
)

// DispatchOrderCommandHandler assigns a courier to a ready order and
// creates the delivery.
//
// The handler is idempotent: dispatching an order that already has a
// delivery returns that delivery unchanged. The selected courier's row is
// locked and availability re-checked inside the delivery-creating
// transaction, so two dispatch attempts racing for the same courier
// cannot both claim them.
type DispatchOrderCommandHandler struct {
	uowFactory DispatchUoWFactory
	engine     services.DispatchEngine
	cfg        ports.ConfigProvider
	clock      ports.Clock
	notifier   ports.NotificationSink
	logger     *slog.Logger
}

// NewDispatchOrderCommandHandler creates a handler for order dispatch.
func NewDispatchOrderCommandHandler(
	uowFactory DispatchUoWFactory,
	engine services.DispatchEngine,
	cfg ports.ConfigProvider,
	clock ports.Clock,
	notifier ports.NotificationSink,
	logger *slog.Logger,
) DispatchOrderCommandHandler {
	return DispatchOrderCommandHandler{
		uowFactory: uowFactory,
		engine:     engine,
		cfg:        cfg,
		clock:      clock,
		notifier:   notifier,
		logger:     logger.With("component", "dispatch_order"),
	}
}

// Handle processes the dispatch command and returns the order's delivery.
func (h DispatchOrderCommandHandler) Handle(ctx context.Context, cmd DispatchOrderCommand) (*delivery.Delivery, error) {
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

	existing, err := uow.DeliveryRepository().GetByOrderID(ctx, cmd.OrderID())
	if err == nil {
		if cmd.CourierID() != nil {
			return nil, ErrAlreadyAssigned
		}
		return existing, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if ord.Status() != order.Ready {
		return nil, ErrOrderNotReady
	}

	ph, err := uow.PharmacyRepository().Get(ctx, ord.PharmacyID())
	if err != nil {
		return nil, err
	}
	pickup := ph.Location()
	if pickup == nil {
		return nil, services.ErrNoPharmacyLocation
	}

	selected, err := h.selectCourier(ctx, uow, cmd, pickup)
	if err != nil {
		return nil, err
	}

	distance, err := pickup.DistanceKm(ord.Dropoff())
	if err != nil {
		return nil, err
	}

	fee, err := deliveryFee(h.cfg, distance)
	if err != nil {
		return nil, err
	}

	newDelivery, err := delivery.NewDelivery(
		kernel.NewUUID(), ord.ID(), selected.ID(),
		*pickup, ord.Dropoff(),
		distance, kernel.EstimateMinutes(distance, selected.Vehicle()),
		fee, h.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = selected.MarkBusy(); err != nil {
		return nil, err
	}
	if err = uow.CourierRepository().Update(ctx, selected); err != nil {
		return nil, err
	}
	if err = uow.DeliveryRepository().Add(ctx, newDelivery); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.notifier.CourierAssigned(ctx, selected.ID(), newDelivery.ID()); err != nil {
		h.logger.WarnContext(ctx, "courier notification failed",
			"courier_id", selected.ID(), "error", err)
	}

	return newDelivery, nil
}

// selectCourier resolves the courier to assign and returns it locked for
// the current transaction. Engine selection runs over an unlocked
// snapshot first; the winner is then re-read under lock and re-checked.
func (h DispatchOrderCommandHandler) selectCourier(
	ctx context.Context,
	uow DispatchUoW,
	cmd DispatchOrderCommand,
	pickup *kernel.GeoPoint,
) (*courier.Courier, error) {
	courierRepo := uow.CourierRepository()

	chosenID := cmd.CourierID()
	if chosenID == nil {
		candidates, err := courierRepo.GetAllAssignable(ctx)
		if err != nil {
			return nil, err
		}

		radius := h.cfg.GetFloat(ConfigDispatchRadiusKm, DefaultDispatchRadiusKm)
		winner, err := h.engine.SelectCourier(pickup, candidates, radius, nil)
		if err != nil {
			return nil, err
		}
		id := winner.ID()
		chosenID = &id
	}

	locked, err := courierRepo.GetForUpdate(ctx, *chosenID)
	if err != nil {
		return nil, err
	}
	if !locked.IsAssignable() {
		if cmd.CourierID() != nil {
			return nil, ErrCourierNotAssignable
		}
		return nil, services.ErrNoCourierAvailable
	}

	return locked, nil
}
