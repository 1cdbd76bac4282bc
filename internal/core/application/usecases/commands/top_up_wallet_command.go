package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/wallet"
	"dispatch/internal/pkg/guard"
)

var (
	ErrTopUpWalletCommandIsNotConstructed = errors.New(
		"TopUpWalletCommand must be created via NewTopUpWalletCommand constructor",
	)
	ErrAmountMustBePositive     = errors.New("amount must be positive")
	ErrPaymentReferenceRequired = errors.New("payment reference is required")
)

// TopUpWalletCommand credits an owner's wallet with externally collected
// funds after the payment provider confirmed the charge.
type TopUpWalletCommand struct { //nolint:recvcheck //using for validation
	owner     wallet.Owner
	amount    kernel.Money
	reference string

	guard guard.ConstructorGuard
}

// NewTopUpWalletCommand creates a top-up command.
func NewTopUpWalletCommand(owner wallet.Owner, amount kernel.Money, reference string) (TopUpWalletCommand, error) {
	cmd := TopUpWalletCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := owner.Validate(); err != nil {
		return TopUpWalletCommand{}, err
	}
	if err := amount.Validate(); err != nil {
		return TopUpWalletCommand{}, err
	}
	if !amount.IsPositive() {
		return TopUpWalletCommand{}, ErrAmountMustBePositive
	}
	if reference == "" {
		return TopUpWalletCommand{}, ErrPaymentReferenceRequired
	}
	cmd.owner = owner
	cmd.amount = amount
	cmd.reference = reference

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TopUpWalletCommand) Validate() error {
	return c.guard.Validate(ErrTopUpWalletCommandIsNotConstructed)
}

// Owner returns the wallet owner being credited.
func (c TopUpWalletCommand) Owner() wallet.Owner { return c.owner }

// Amount returns the top-up amount.
func (c TopUpWalletCommand) Amount() kernel.Money { return c.amount }

// Reference returns the payment provider reference.
func (c TopUpWalletCommand) Reference() string { return c.reference }
