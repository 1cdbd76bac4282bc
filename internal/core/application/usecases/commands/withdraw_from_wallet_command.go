package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/wallet"
	"dispatch/internal/pkg/guard"
)

var ErrWithdrawFromWalletCommandIsNotConstructed = errors.New(
	"WithdrawFromWalletCommand must be created via NewWithdrawFromWalletCommand constructor",
)

// WithdrawFromWalletCommand pays funds out of an owner's wallet through
// the payment gateway.
type WithdrawFromWalletCommand struct { //nolint:recvcheck //using for validation
	owner     wallet.Owner
	amount    kernel.Money
	reference string

	guard guard.ConstructorGuard
}

// NewWithdrawFromWalletCommand creates a withdrawal command.
func NewWithdrawFromWalletCommand(owner wallet.Owner, amount kernel.Money, reference string) (WithdrawFromWalletCommand, error) {
	cmd := WithdrawFromWalletCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := owner.Validate(); err != nil {
		return WithdrawFromWalletCommand{}, err
	}
	if err := amount.Validate(); err != nil {
		return WithdrawFromWalletCommand{}, err
	}
	if !amount.IsPositive() {
		return WithdrawFromWalletCommand{}, ErrAmountMustBePositive
	}
	if reference == "" {
		return WithdrawFromWalletCommand{}, ErrPaymentReferenceRequired
	}
	cmd.owner = owner
	cmd.amount = amount
	cmd.reference = reference

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c WithdrawFromWalletCommand) Validate() error {
	return c.guard.Validate(ErrWithdrawFromWalletCommandIsNotConstructed)
}

// Owner returns the wallet owner being debited.
func (c WithdrawFromWalletCommand) Owner() wallet.Owner { return c.owner }

// Amount returns the withdrawal amount.
func (c WithdrawFromWalletCommand) Amount() kernel.Money { return c.amount }

// Reference returns the payout reference.
func (c WithdrawFromWalletCommand) Reference() string { return c.reference }
