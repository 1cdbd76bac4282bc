package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/commission"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/wallet"

	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func deliveredOrder(t *testing.T, pharmacyID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(
		kernel.NewUUID(), "ORD-2040", pharmacyID, kernel.NewUUID(),
		mustMoney(t, "12500.00"), "12 Rue des Manguiers",
		mustGeoPoint(t, 14.70, -17.46), "4821", order.Delivered,
	)
	require.NoError(t, err)
	return o
}

func TestDistributeCommissionCommandHandler_Handle_NoDeliveryFoldsCourierShare(t *testing.T) {
	ctx := t.Context()

	ph := newLocatedPharmacy(t)
	testOrder := deliveredOrder(t, ph.ID())

	platformOwner := wallet.PlatformOwner()
	pharmacyOwner, err := wallet.PharmacyOwner(ph.ID())
	require.NoError(t, err)
	platformWallet := newWalletWithBalance(t, platformOwner, "0.00")
	pharmacyWallet := newWalletWithBalance(t, pharmacyOwner, "0.00")

	orderRepo := new(MockOrderRepository)
	pharmacyRepo := new(MockPharmacyRepository)
	deliveryRepo := new(MockDeliveryRepository)
	walletRepo := new(MockWalletRepository)
	commissionRepo := new(MockCommissionRepository)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("PharmacyRepository").Return(pharmacyRepo)
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("WalletRepository").Return(walletRepo)
	uow.On("CommissionRepository").Return(commissionRepo)

	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	deliveryRepo.On("GetByOrderID", ctx, testOrder.ID()).
		Return(nil, errNotFound(testOrder.ID())).Once()
	commissionRepo.On("GetByOrderID", ctx, testOrder.ID()).
		Return(nil, errNotFound(testOrder.ID())).Once()
	pharmacyRepo.On("Get", ctx, ph.ID()).Return(ph, nil).Once()
	commissionRepo.On("Add", ctx, mock.AnythingOfType("*commission.Commission")).Return(nil).Once()

	walletRepo.On("GetByOwnerForUpdate", ctx, platformOwner).Return(platformWallet, nil).Once()
	walletRepo.On("GetByOwnerForUpdate", ctx, pharmacyOwner).Return(pharmacyWallet, nil).Once()
	walletRepo.On("Update", ctx, mock.AnythingOfType("*wallet.Wallet")).Return(nil).Twice()
	walletRepo.On("AddTransaction", ctx, mock.AnythingOfType("*wallet.Transaction")).Return(nil).Twice()

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewDistributeCommissionCommand(testOrder.ID())
	require.NoError(t, err)

	handler := commands.NewDistributeCommissionCommandHandler(
		factory, stubConfig{}, fixedClock{now: testTime})
	c, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Len(t, c.Lines(), 2)

	_, hasCourierLine := c.LineFor(commission.ActorCourier)
	assert.False(t, hasCourierLine)

	assert.Equal(t, "1250.00 XOF", platformWallet.Balance().String())
	assert.Equal(t, "11250.00 XOF", pharmacyWallet.Balance().String())

	walletRepo.AssertExpectations(t)
	commissionRepo.AssertExpectations(t)
}

func TestDistributeCommissionCommandHandler_Handle_AlreadySettled(t *testing.T) {
	ctx := t.Context()

	ph := newLocatedPharmacy(t)
	testOrder := deliveredOrder(t, ph.ID())

	rates, err := commission.NewRateSet(
		decimal.MustParse("0.10"), decimal.MustParse("0.80"), decimal.MustParse("0.10"))
	require.NoError(t, err)
	existing, err := commission.NewCommission(
		kernel.NewUUID(), testOrder.ID(), testOrder.Total(), rates, true, testTime)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	walletRepo := new(MockWalletRepository)
	commissionRepo := new(MockCommissionRepository)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("WalletRepository").Return(walletRepo)
	uow.On("CommissionRepository").Return(commissionRepo)

	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	deliveryRepo.On("GetByOrderID", ctx, testOrder.ID()).
		Return(nil, errNotFound(testOrder.ID())).Once()
	commissionRepo.On("GetByOrderID", ctx, testOrder.ID()).Return(existing, nil).Once()

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewDistributeCommissionCommand(testOrder.ID())
	require.NoError(t, err)

	handler := commands.NewDistributeCommissionCommandHandler(
		factory, stubConfig{}, fixedClock{now: testTime})
	c, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, existing.ID().IsEqual(c.ID()))
	walletRepo.AssertNotCalled(t, "GetByOwnerForUpdate")
	commissionRepo.AssertNotCalled(t, "Add")
}

func TestDistributeCommissionCommandHandler_Handle_OrderNotDelivered(t *testing.T) {
	ctx := t.Context()

	ph := newLocatedPharmacy(t)
	testOrder := newReadyOrder(t, ph.ID())

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)

	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewDistributeCommissionCommand(testOrder.ID())
	require.NoError(t, err)

	handler := commands.NewDistributeCommissionCommandHandler(
		factory, stubConfig{}, fixedClock{now: testTime})
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrOrderNotDelivered)
	uow.AssertNotCalled(t, "Commit")
}
