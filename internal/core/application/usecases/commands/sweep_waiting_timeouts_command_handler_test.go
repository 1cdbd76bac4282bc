package commands_test

import (
	"errors"
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/wallet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSweepWaitingTimeoutsCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	busy, err := courier.RestoreCourier(
		kernel.NewUUID(), "Awa Diallo", kernel.VehicleMotorcycle,
		courier.StatusBusy, nil, 4.8, 120,
	)
	require.NoError(t, err)

	// Twelve minutes of waiting breaches the ten-minute timeout; one
	// minute does not.
	timedOut := newArrivedDelivery(t, kernel.NewUUID(), busy.ID(), testTime.Add(-12*time.Minute))
	fresh := newArrivedDelivery(t, kernel.NewUUID(), kernel.NewUUID(), testTime.Add(-time.Minute))

	platformOwner := wallet.PlatformOwner()
	courierOwner, err := wallet.CourierOwner(busy.ID())
	require.NoError(t, err)
	platformWallet := newWalletWithBalance(t, platformOwner, "1000.00")
	courierWallet := newWalletWithBalance(t, courierOwner, "0.00")

	deliveryRepo := new(MockDeliveryRepository)
	courierRepo := new(MockCourierRepository)
	walletRepo := new(MockWalletRepository)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("CourierRepository").Return(courierRepo)
	uow.On("WalletRepository").Return(walletRepo)

	deliveryRepo.On("GetAllWithOpenWaiting", ctx).
		Return([]*delivery.Delivery{timedOut, fresh}, nil).Once()
	deliveryRepo.On("GetForUpdate", ctx, timedOut.ID()).Return(timedOut, nil).Once()
	deliveryRepo.On("Update", ctx, timedOut).Return(nil).Once()
	courierRepo.On("GetForUpdate", ctx, busy.ID()).Return(busy, nil).Once()
	courierRepo.On("Update", ctx, busy).Return(nil).Once()

	walletRepo.On("GetByOwnerForUpdate", ctx, platformOwner).Return(platformWallet, nil).Once()
	walletRepo.On("GetByOwnerForUpdate", ctx, courierOwner).Return(courierWallet, nil).Once()
	walletRepo.On("Update", ctx, mock.AnythingOfType("*wallet.Wallet")).Return(nil).Twice()
	walletRepo.On("AddTransaction", ctx, mock.AnythingOfType("*wallet.Transaction")).Return(nil).Twice()

	notifier := new(MockNotificationSink)
	notifier.On("DeliveryCancelled", ctx, timedOut.ID(), commands.AutoCancelReason).Return(nil).Once()

	factory := new(MockSweepUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSweepWaitingTimeoutsCommandHandler(
		factory, stubConfig{}, fixedClock{now: testTime}, notifier, discardLogger())
	count, err := handler.Handle(ctx, commands.NewSweepWaitingTimeoutsCommand())

	require.NoError(t, err)
	assert.Equal(t, 1, count)

	assert.Equal(t, delivery.StatusCancelled, timedOut.Status())
	require.NotNil(t, timedOut.AutoCancelledAt())
	assert.Equal(t, commands.AutoCancelReason, timedOut.CancellationReason())
	require.NotNil(t, timedOut.WaitingFee())
	assert.Equal(t, "10.00 XOF", timedOut.WaitingFee().String())
	assert.False(t, timedOut.IsWaitingOpen())

	assert.Equal(t, delivery.StatusArrived, fresh.Status())
	assert.True(t, fresh.IsWaitingOpen())

	assert.Equal(t, courier.StatusAvailable, busy.Status())
	assert.Equal(t, "990.00 XOF", platformWallet.Balance().String())
	assert.Equal(t, "10.00 XOF", courierWallet.Balance().String())

	uow.AssertExpectations(t)
	deliveryRepo.AssertExpectations(t)
	walletRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestSweepWaitingTimeoutsCommandHandler_Handle_NothingOpen(t *testing.T) {
	ctx := t.Context()

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo)

	deliveryRepo.On("GetAllWithOpenWaiting", ctx).Return([]*delivery.Delivery{}, nil).Once()

	factory := new(MockSweepUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotificationSink)
	handler := commands.NewSweepWaitingTimeoutsCommandHandler(
		factory, stubConfig{}, fixedClock{now: testTime}, notifier, discardLogger())
	count, err := handler.Handle(ctx, commands.NewSweepWaitingTimeoutsCommand())

	require.NoError(t, err)
	assert.Equal(t, 0, count)
	notifier.AssertNotCalled(t, "DeliveryCancelled")
}

func TestSweepWaitingTimeoutsCommandHandler_Handle_NoBeneficiary(t *testing.T) {
	ctx := t.Context()

	busy, err := courier.RestoreCourier(
		kernel.NewUUID(), "Moussa Ba", kernel.VehicleCar,
		courier.StatusBusy, nil, 4.1, 37,
	)
	require.NoError(t, err)
	timedOut := newArrivedDelivery(t, kernel.NewUUID(), busy.ID(), testTime.Add(-30*time.Minute))

	deliveryRepo := new(MockDeliveryRepository)
	courierRepo := new(MockCourierRepository)
	walletRepo := new(MockWalletRepository)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("CourierRepository").Return(courierRepo)
	uow.On("WalletRepository").Return(walletRepo)

	deliveryRepo.On("GetAllWithOpenWaiting", ctx).
		Return([]*delivery.Delivery{timedOut}, nil).Once()
	deliveryRepo.On("GetForUpdate", ctx, timedOut.ID()).Return(timedOut, nil).Once()
	deliveryRepo.On("Update", ctx, timedOut).Return(nil).Once()
	courierRepo.On("GetForUpdate", ctx, busy.ID()).Return(busy, nil).Once()
	courierRepo.On("Update", ctx, busy).Return(nil).Once()

	notifier := new(MockNotificationSink)
	notifier.On("DeliveryCancelled", ctx, timedOut.ID(), commands.AutoCancelReason).Return(nil).Once()

	factory := new(MockSweepUoWFactory)
	factory.On("Create").Return(uow).Once()

	cfg := stubConfig{strings: map[string]string{
		commands.ConfigWaitingFeeBeneficiary: commands.BeneficiaryNone,
	}}

	handler := commands.NewSweepWaitingTimeoutsCommandHandler(
		factory, cfg, fixedClock{now: testTime}, notifier, discardLogger())
	count, err := handler.Handle(ctx, commands.NewSweepWaitingTimeoutsCommand())

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	require.NotNil(t, timedOut.WaitingFee())
	assert.Equal(t, "28.00 XOF", timedOut.WaitingFee().String())
	walletRepo.AssertNotCalled(t, "GetByOwnerForUpdate")
}

func TestSweepWaitingTimeoutsCommandHandler_Handle_DeliveredAfterSnapshot_IsSkipped(t *testing.T) {
	ctx := t.Context()

	courierID := kernel.NewUUID()
	stale := newArrivedDelivery(t, kernel.NewUUID(), courierID, testTime.Add(-12*time.Minute))

	// The courier completed the hand-over after the sweep took its
	// snapshot; the locked re-read returns the delivered row with the
	// waiting window closed.
	deliveredAt := testTime.Add(-time.Minute)
	current, err := delivery.RestoreDelivery(
		stale.ID(), stale.OrderID(), stale.CourierID(), delivery.StatusDelivered,
		stale.Pickup(), stale.Dropoff(), stale.DistanceKm(), stale.EstimatedMinutes(),
		stale.Fee(), stale.CreatedAt(), stale.AssignedAt(), stale.PickedUpAt(),
		&deliveredAt, stale.WaitingStartedAt(), &deliveredAt, nil, nil, "", "",
	)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo)

	deliveryRepo.On("GetAllWithOpenWaiting", ctx).
		Return([]*delivery.Delivery{stale}, nil).Once()
	deliveryRepo.On("GetForUpdate", ctx, stale.ID()).Return(current, nil).Once()

	factory := new(MockSweepUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotificationSink)
	handler := commands.NewSweepWaitingTimeoutsCommandHandler(
		factory, stubConfig{}, fixedClock{now: testTime}, notifier, discardLogger())
	count, err := handler.Handle(ctx, commands.NewSweepWaitingTimeoutsCommand())

	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Equal(t, delivery.StatusDelivered, current.Status())
	deliveryRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "DeliveryCancelled", mock.Anything, mock.Anything, mock.Anything)
	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSweepWaitingTimeoutsCommandHandler_Handle_FeeTransferFailure_Aborts(t *testing.T) {
	ctx := t.Context()

	busy, err := courier.RestoreCourier(
		kernel.NewUUID(), "Fatou Sarr", kernel.VehicleMotorcycle,
		courier.StatusBusy, nil, 4.5, 64,
	)
	require.NoError(t, err)
	timedOut := newArrivedDelivery(t, kernel.NewUUID(), busy.ID(), testTime.Add(-12*time.Minute))

	storeErr := errors.New("wallet store unavailable")

	deliveryRepo := new(MockDeliveryRepository)
	courierRepo := new(MockCourierRepository)
	walletRepo := new(MockWalletRepository)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("CourierRepository").Return(courierRepo)
	uow.On("WalletRepository").Return(walletRepo)

	deliveryRepo.On("GetAllWithOpenWaiting", ctx).
		Return([]*delivery.Delivery{timedOut}, nil).Once()
	deliveryRepo.On("GetForUpdate", ctx, timedOut.ID()).Return(timedOut, nil).Once()
	deliveryRepo.On("Update", ctx, timedOut).Return(nil).Once()
	courierRepo.On("GetForUpdate", ctx, busy.ID()).Return(busy, nil).Once()
	courierRepo.On("Update", ctx, busy).Return(nil).Once()
	walletRepo.On("GetByOwnerForUpdate", ctx, wallet.PlatformOwner()).
		Return(nil, storeErr).Once()

	factory := new(MockSweepUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotificationSink)
	handler := commands.NewSweepWaitingTimeoutsCommandHandler(
		factory, stubConfig{}, fixedClock{now: testTime}, notifier, discardLogger())
	count, err := handler.Handle(ctx, commands.NewSweepWaitingTimeoutsCommand())

	require.ErrorIs(t, err, storeErr)
	assert.Equal(t, 0, count)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	notifier.AssertNotCalled(t, "DeliveryCancelled", mock.Anything, mock.Anything, mock.Anything)
}

func TestSweepWaitingTimeoutsCommandHandler_Handle_PlatformCannotCoverFee_StillCancels(t *testing.T) {
	ctx := t.Context()

	busy, err := courier.RestoreCourier(
		kernel.NewUUID(), "Omar Kane", kernel.VehicleMotorcycle,
		courier.StatusBusy, nil, 4.2, 45,
	)
	require.NoError(t, err)
	timedOut := newArrivedDelivery(t, kernel.NewUUID(), busy.ID(), testTime.Add(-12*time.Minute))

	// The accrued fee is 10.00 XOF; the platform wallet cannot cover it,
	// so the transfer is skipped but the cancellation still commits.
	platformWallet := newWalletWithBalance(t, wallet.PlatformOwner(), "1.00")

	deliveryRepo := new(MockDeliveryRepository)
	courierRepo := new(MockCourierRepository)
	walletRepo := new(MockWalletRepository)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("CourierRepository").Return(courierRepo)
	uow.On("WalletRepository").Return(walletRepo)

	deliveryRepo.On("GetAllWithOpenWaiting", ctx).
		Return([]*delivery.Delivery{timedOut}, nil).Once()
	deliveryRepo.On("GetForUpdate", ctx, timedOut.ID()).Return(timedOut, nil).Once()
	deliveryRepo.On("Update", ctx, timedOut).Return(nil).Once()
	courierRepo.On("GetForUpdate", ctx, busy.ID()).Return(busy, nil).Once()
	courierRepo.On("Update", ctx, busy).Return(nil).Once()
	walletRepo.On("GetByOwnerForUpdate", ctx, wallet.PlatformOwner()).
		Return(platformWallet, nil).Once()

	notifier := new(MockNotificationSink)
	notifier.On("DeliveryCancelled", ctx, timedOut.ID(), commands.AutoCancelReason).Return(nil).Once()

	factory := new(MockSweepUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSweepWaitingTimeoutsCommandHandler(
		factory, stubConfig{}, fixedClock{now: testTime}, notifier, discardLogger())
	count, err := handler.Handle(ctx, commands.NewSweepWaitingTimeoutsCommand())

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, delivery.StatusCancelled, timedOut.Status())
	assert.Equal(t, "1.00 XOF", platformWallet.Balance().String())
	walletRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	walletRepo.AssertNotCalled(t, "AddTransaction", mock.Anything, mock.Anything)
}
