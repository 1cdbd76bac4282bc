package commands

import (
	"context"

	"dispatch/internal/core/domain/model/wallet"
	"dispatch/internal/core/ports"
)

// TopUpWalletCommandHandler confirms an external charge with the payment
// gateway and credits the owner's wallet. The wallet is created on first
// top-up.
type TopUpWalletCommandHandler struct {
	uowFactory WalletUoWFactory
	gateway    ports.PaymentGateway
	cfg        ports.ConfigProvider
	clock      ports.Clock
}

// NewTopUpWalletCommandHandler creates a handler for wallet top-ups.
func NewTopUpWalletCommandHandler(
	uowFactory WalletUoWFactory,
	gateway ports.PaymentGateway,
	cfg ports.ConfigProvider,
	clock ports.Clock,
) TopUpWalletCommandHandler {
	return TopUpWalletCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		cfg:        cfg,
		clock:      clock,
	}
}

// Handle processes the top-up command and returns the appended ledger
// entry.
func (h TopUpWalletCommandHandler) Handle(ctx context.Context, cmd TopUpWalletCommand) (*wallet.Transaction, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	// The charge is confirmed before any state changes; an unconfirmed
	// payment never reaches the ledger.
	if err := h.gateway.ConfirmTopUp(ctx, cmd.Reference(), cmd.Amount()); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tx, err := creditWallet(ctx, uow.WalletRepository(), cmd.Owner(), currency(h.cfg),
		cmd.Amount(), cmd.Reference(), wallet.CategoryTopUp, nil, h.clock.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return tx, nil
}
