package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/commission"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/wallet"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// creditWallet credits an owner's wallet, creating it on first use. The
// wallet row is locked for the surrounding transaction before the balance
// moves, and the ledger entry is appended alongside the balance update.
func creditWallet(
	ctx context.Context,
	repo ports.WalletRepository,
	owner wallet.Owner,
	cur string,
	amount kernel.Money,
	reference, category string,
	deliveryID *kernel.UUID,
	now time.Time,
) (*wallet.Transaction, error) {
	w, err := repo.GetByOwnerForUpdate(ctx, owner)
	if errors.Is(err, errs.ErrObjectNotFound) {
		w, err = wallet.NewWallet(kernel.NewUUID(), owner, cur)
		if err != nil {
			return nil, err
		}
		if err = repo.Add(ctx, w); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	tx, err := w.Credit(amount, reference, category, deliveryID, now)
	if err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, w); err != nil {
		return nil, err
	}
	if err = repo.AddTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

// transferWaitingFee moves an accrued waiting fee from the platform
// wallet to the courier wallet as a paired debit and credit. Both legs
// happen inside the caller's transaction or not at all.
func transferWaitingFee(
	ctx context.Context,
	repo ports.WalletRepository,
	courierID kernel.UUID,
	deliveryID kernel.UUID,
	cur string,
	fee kernel.Money,
	now time.Time,
) error {
	platform, err := repo.GetByOwnerForUpdate(ctx, wallet.PlatformOwner())
	if err != nil {
		return err
	}

	reference := "waiting:" + deliveryID.String()
	tx, err := platform.Debit(fee, reference, wallet.CategoryWaitingFee, &deliveryID, now)
	if err != nil {
		return err
	}
	if err = repo.Update(ctx, platform); err != nil {
		return err
	}
	if err = repo.AddTransaction(ctx, tx); err != nil {
		return err
	}

	owner, err := wallet.CourierOwner(courierID)
	if err != nil {
		return err
	}

	_, err = creditWallet(ctx, repo, owner, cur, fee, reference,
		wallet.CategoryWaitingFee, &deliveryID, now)
	return err
}

// walletOwnerFor maps a commission line actor to the wallet it settles
// into.
func walletOwnerFor(actor commission.Actor, pharmacyID kernel.UUID, courierID *kernel.UUID) (wallet.Owner, error) {
	switch actor {
	case commission.ActorPlatform:
		return wallet.PlatformOwner(), nil
	case commission.ActorPharmacy:
		return wallet.PharmacyOwner(pharmacyID)
	case commission.ActorCourier:
		if courierID == nil {
			return wallet.Owner{}, errs.NewValueIsRequiredError("courierID")
		}
		return wallet.CourierOwner(*courierID)
	default:
		return wallet.Owner{}, errs.NewValueIsInvalidError("commission actor")
	}
}

// settleCommission splits the order total per the effective rate set and
// credits each participant's wallet inside the caller's transaction. When
// a commission already exists for the order the stored record is returned
// untouched; wallets are not credited twice.
func settleCommission(
	ctx context.Context,
	uow SettlementUoW,
	cfg ports.ConfigProvider,
	ord *order.Order,
	d *delivery.Delivery,
	now time.Time,
) (*commission.Commission, error) {
	commissionRepo := uow.CommissionRepository()

	existing, err := commissionRepo.GetByOrderID(ctx, ord.ID())
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	ph, err := uow.PharmacyRepository().Get(ctx, ord.PharmacyID())
	if err != nil {
		return nil, err
	}

	rates, err := commissionRates(cfg, ph.RateOverride())
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if d != nil {
		courierID = d.CourierID()
	}

	c, err := commission.NewCommission(
		kernel.NewUUID(), ord.ID(), ord.Total(), rates, courierID != nil, now)
	if err != nil {
		return nil, err
	}

	walletRepo := uow.WalletRepository()
	cur := currency(cfg)

	var deliveryID *kernel.UUID
	if d != nil {
		id := d.ID()
		deliveryID = &id
	}

	for _, line := range c.Lines() {
		if !line.Amount().IsPositive() {
			continue
		}

		owner, err := walletOwnerFor(line.Actor(), ord.PharmacyID(), courierID)
		if err != nil {
			return nil, err
		}

		_, err = creditWallet(ctx, walletRepo, owner, cur, line.Amount(),
			ord.Reference(), wallet.CategoryCommission, deliveryID, now)
		if err != nil {
			return nil, err
		}
	}

	if err = commissionRepo.Add(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}
