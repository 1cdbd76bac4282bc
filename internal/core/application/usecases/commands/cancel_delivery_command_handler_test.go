package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelDeliveryCommandHandler_Handle_CourierCancels(t *testing.T) {
	ctx := t.Context()

	busy, err := courier.RestoreCourier(
		kernel.NewUUID(), "Awa Diallo", kernel.VehicleMotorcycle,
		courier.StatusBusy, nil, 4.8, 120,
	)
	require.NoError(t, err)
	d := newPendingDelivery(t, kernel.NewUUID(), busy.ID())

	deliveryRepo := new(MockDeliveryRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("CourierRepository").Return(courierRepo)

	notifier := new(MockNotificationSink)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		deliveryRepo.On("GetForUpdate", ctx, d.ID()).Return(d, nil).Once(),
		deliveryRepo.On("Update", ctx, d).Return(nil).Once(),
		courierRepo.On("GetForUpdate", ctx, busy.ID()).Return(busy, nil).Once(),
		courierRepo.On("Update", ctx, busy).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	notifier.On("DeliveryCancelled", ctx, d.ID(), "customer unreachable").Return(nil).Once()

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewCancelDeliveryCommand(d.ID(), busy.ID(), "customer unreachable")
	require.NoError(t, err)

	handler := commands.NewCancelDeliveryCommandHandler(
		factory, fixedClock{now: testTime}, notifier, discardLogger())
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, delivery.StatusCancelled, d.Status())
	assert.Equal(t, "customer unreachable", d.CancellationReason())
	assert.Equal(t, courier.StatusAvailable, busy.Status())

	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCancelDeliveryCommandHandler_Handle_AdminCancelsTerminalDelivery(t *testing.T) {
	ctx := t.Context()

	courierID := kernel.NewUUID()
	d := newArrivedDelivery(t, kernel.NewUUID(), courierID, testTime)
	actor, err := delivery.CourierActor(courierID)
	require.NoError(t, err)
	require.NoError(t, d.Cancel(actor, "first cancellation", testTime))

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	deliveryRepo.On("GetForUpdate", ctx, d.ID()).Return(d, nil).Once()

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewAdminCancelDeliveryCommand(d.ID(), "stale record")
	require.NoError(t, err)

	handler := commands.NewCancelDeliveryCommandHandler(
		factory, fixedClock{now: testTime}, new(MockNotificationSink), discardLogger())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Equal(t, "first cancellation", d.CancellationReason())
	uow.AssertNotCalled(t, "Commit")
}

func TestNewCancelDeliveryCommand_RequiresReason(t *testing.T) {
	_, err := commands.NewCancelDeliveryCommand(kernel.NewUUID(), kernel.NewUUID(), "")
	require.ErrorIs(t, err, commands.ErrCancellationReasonIsRequired)

	_, err = commands.NewAdminCancelDeliveryCommand(kernel.NewUUID(), "")
	require.ErrorIs(t, err, commands.ErrCancellationReasonIsRequired)
}
