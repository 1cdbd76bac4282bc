package commands

import (
	"context"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/wallet"
	"dispatch/internal/core/ports"
)

// WithdrawFromWalletCommandHandler debits an owner's wallet and executes
// the payout through the payment gateway. The debit and the payout share
// the transaction: a rejected payout rolls the debit back.
type WithdrawFromWalletCommandHandler struct {
	uowFactory WalletUoWFactory
	gateway    ports.PaymentGateway
	cfg        ports.ConfigProvider
	clock      ports.Clock
}

// NewWithdrawFromWalletCommandHandler creates a handler for wallet
// withdrawals.
func NewWithdrawFromWalletCommandHandler(
	uowFactory WalletUoWFactory,
	gateway ports.PaymentGateway,
	cfg ports.ConfigProvider,
	clock ports.Clock,
) WithdrawFromWalletCommandHandler {
	return WithdrawFromWalletCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		cfg:        cfg,
		clock:      clock,
	}
}

// Handle processes the withdrawal command and returns the appended
// ledger entry.
func (h WithdrawFromWalletCommandHandler) Handle(ctx context.Context, cmd WithdrawFromWalletCommand) (*wallet.Transaction, error) {
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

	repo := uow.WalletRepository()
	w, err := repo.GetByOwnerForUpdate(ctx, cmd.Owner())
	if err != nil {
		return nil, err
	}

	if err = h.checkMinBalance(w, cmd.Amount()); err != nil {
		return nil, err
	}

	tx, err := w.Debit(cmd.Amount(), cmd.Reference(), wallet.CategoryWithdrawal, nil, h.clock.Now())
	if err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, w); err != nil {
		return nil, err
	}
	if err = repo.AddTransaction(ctx, tx); err != nil {
		return nil, err
	}

	if err = h.gateway.ExecutePayout(ctx, cmd.Reference(), cmd.Amount()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return tx, nil
}

// checkMinBalance enforces the configured balance floor on top of the
// wallet's own non-negative invariant.
func (h WithdrawFromWalletCommandHandler) checkMinBalance(w *wallet.Wallet, amount kernel.Money) error {
	minBalance, err := kernel.NewMoneyFromMinorUnits(
		int64(h.cfg.GetInt(ConfigMinWalletBalance, DefaultMinWalletBalance)), currency(h.cfg))
	if err != nil {
		return err
	}

	floor, err := minBalance.Add(amount)
	if err != nil {
		return err
	}

	cmp, err := w.Balance().Cmp(floor)
	if err != nil {
		return err
	}
	if cmp < 0 {
		return fmt.Errorf("%w: balance %s, withdrawal %s, minimum %s",
			wallet.ErrInsufficientBalance, w.Balance(), amount, minBalance)
	}

	return nil
}
