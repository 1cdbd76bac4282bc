package commands_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/pharmacy"
	"dispatch/internal/core/domain/model/wallet"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

func errNotFound(id kernel.UUID) error {
	return errs.NewObjectNotFoundError("id", id)
}

func mustMoney(t *testing.T, amount string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(amount, "XOF")
	require.NoError(t, err)
	return m
}

func mustGeoPoint(t *testing.T, lat, lon float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lon)
	require.NoError(t, err)
	return p
}

func newAvailableCourier(t *testing.T, lat, lon float64) *courier.Courier {
	t.Helper()
	loc := mustGeoPoint(t, lat, lon)
	c, err := courier.RestoreCourier(
		kernel.NewUUID(), "Awa Diallo", kernel.VehicleMotorcycle,
		courier.StatusAvailable, &loc, 4.8, 120,
	)
	require.NoError(t, err)
	return c
}

func newReadyOrder(t *testing.T, pharmacyID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(
		kernel.NewUUID(), "ORD-2031", pharmacyID, kernel.NewUUID(),
		mustMoney(t, "12500.00"), "12 Rue des Manguiers",
		mustGeoPoint(t, 14.70, -17.46), "4821", order.Ready,
	)
	require.NoError(t, err)
	return o
}

func newLocatedPharmacy(t *testing.T) *pharmacy.Pharmacy {
	t.Helper()
	loc := mustGeoPoint(t, 14.67, -17.43)
	p, err := pharmacy.RestorePharmacy(kernel.NewUUID(), "Pharmacie du Plateau", &loc, nil)
	require.NoError(t, err)
	return p
}

func newPendingDelivery(t *testing.T, orderID, courierID kernel.UUID) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(
		kernel.NewUUID(), orderID, courierID,
		mustGeoPoint(t, 14.67, -17.43), mustGeoPoint(t, 14.70, -17.46),
		4.6, 14, mustMoney(t, "960.00"), testTime,
	)
	require.NoError(t, err)
	return d
}

// newArrivedDelivery walks a fresh delivery to the arrived status, which
// opens the waiting window at the given instant.
func newArrivedDelivery(t *testing.T, orderID, courierID kernel.UUID, arrivedAt time.Time) *delivery.Delivery {
	t.Helper()
	d := newPendingDelivery(t, orderID, courierID)

	actor, err := delivery.CourierActor(courierID)
	require.NoError(t, err)
	require.NoError(t, d.Accept(actor, arrivedAt.Add(-20*time.Minute)))
	require.NoError(t, d.PickUp(actor, arrivedAt.Add(-15*time.Minute)))
	require.NoError(t, d.StartTransit(actor))
	require.NoError(t, d.MarkArrived(actor, arrivedAt))
	return d
}

func newWalletWithBalance(t *testing.T, owner wallet.Owner, balance string) *wallet.Wallet {
	t.Helper()
	w, err := wallet.RestoreWallet(kernel.NewUUID(), owner, mustMoney(t, balance))
	require.NoError(t, err)
	return w
}
