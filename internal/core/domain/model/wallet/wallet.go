package wallet

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrWalletIsNotConstructed is returned when a Wallet instance was not
	// created through a constructor.
	ErrWalletIsNotConstructed = errors.New(
		"Wallet must be created via NewWallet constructor")
	// ErrInsufficientBalance is returned when a debit would push the
	// balance below zero.
	ErrInsufficientBalance = errors.New("insufficient wallet balance")
	// ErrAmountMustBePositive is returned when crediting or debiting a
	// zero or negative amount.
	ErrAmountMustBePositive = errs.NewValueIsInvalidError("amount must be positive")
	// ErrLedgerReplayMismatch is returned when replaying a wallet's
	// transactions does not reproduce a balance snapshot.
	ErrLedgerReplayMismatch = errors.New("ledger replay does not match balance snapshot")
)

// Wallet is the aggregate root holding one owner's balance. All balance
// movement goes through Credit and Debit, which append immutable ledger
// entries; the balance is never set directly.
type Wallet struct {
	// id is the unique identifier for the wallet
	id kernel.UUID

	// owner is the polymorphic owner key, unique per wallet
	owner Owner

	// balance is the current balance, kept consistent with the ledger
	balance kernel.Money

	// guard ensures the wallet was created via a constructor
	guard guard.ConstructorGuard
}

// NewWallet creates an empty wallet for an owner in the given currency.
func NewWallet(id kernel.UUID, owner Owner, currency string) (*Wallet, error) {
	zero, err := kernel.ZeroMoney(currency)
	if err != nil {
		return nil, err
	}

	return RestoreWallet(id, owner, zero)
}

// RestoreWallet reconstructs a Wallet from persistence.
func RestoreWallet(id kernel.UUID, owner Owner, balance kernel.Money) (*Wallet, error) {
	if err := errors.Join(id.Validate(), owner.Validate(), balance.Validate()); err != nil {
		return nil, err
	}
	if balance.IsNegative() {
		return nil, errs.NewValueIsInvalidError("balance must not be negative")
	}

	return &Wallet{
		id:      id,
		owner:   owner,
		balance: balance,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Wallet was created through a constructor.
func (w *Wallet) Validate() error {
	if w == nil {
		return ErrWalletIsNotConstructed
	}
	return w.guard.Validate(ErrWalletIsNotConstructed)
}

// ID returns the wallet's unique identifier.
func (w *Wallet) ID() kernel.UUID {
	return w.id
}

// Owner returns the polymorphic owner key.
func (w *Wallet) Owner() Owner {
	return w.owner
}

// Balance returns the current balance.
func (w *Wallet) Balance() kernel.Money {
	return w.balance
}

// Currency returns the wallet currency.
func (w *Wallet) Currency() string {
	return w.balance.Currency()
}

// Credit increases the balance and returns the appended ledger entry.
// The amount must be positive and in the wallet currency.
func (w *Wallet) Credit(
	amount kernel.Money,
	reference, category string,
	deliveryID *kernel.UUID,
	now time.Time,
) (*Transaction, error) {
	if err := w.checkAmount(amount); err != nil {
		return nil, err
	}

	newBalance, err := w.balance.Add(amount)
	if err != nil {
		return nil, err
	}

	return w.post(TransactionCredit, amount, newBalance, reference, category, deliveryID, now)
}

// Debit decreases the balance and returns the appended ledger entry. It
// fails with ErrInsufficientBalance when the balance does not cover the
// amount; the balance never goes negative.
func (w *Wallet) Debit(
	amount kernel.Money,
	reference, category string,
	deliveryID *kernel.UUID,
	now time.Time,
) (*Transaction, error) {
	if err := w.checkAmount(amount); err != nil {
		return nil, err
	}

	cmp, err := w.balance.Cmp(amount)
	if err != nil {
		return nil, err
	}
	if cmp < 0 {
		return nil, fmt.Errorf("%w: balance %s, debit %s",
			ErrInsufficientBalance, w.balance, amount)
	}

	newBalance, err := w.balance.Sub(amount)
	if err != nil {
		return nil, err
	}

	return w.post(TransactionDebit, amount, newBalance, reference, category, deliveryID, now)
}

func (w *Wallet) post(
	txType TransactionType,
	amount, newBalance kernel.Money,
	reference, category string,
	deliveryID *kernel.UUID,
	now time.Time,
) (*Transaction, error) {
	tx, err := RestoreTransaction(
		kernel.NewUUID(), w.id, txType, amount, newBalance,
		reference, category, deliveryID, now,
	)
	if err != nil {
		return nil, err
	}

	w.balance = newBalance
	return tx, nil
}

func (w *Wallet) checkAmount(amount kernel.Money) error {
	if err := errors.Join(w.Validate(), amount.Validate()); err != nil {
		return err
	}
	if !amount.IsPositive() {
		return ErrAmountMustBePositive
	}
	if amount.Currency() != w.balance.Currency() {
		return errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("%w: wallet %s, amount %s",
				kernel.ErrCurrencyMismatch, w.balance.Currency(), amount.Currency()))
	}
	return nil
}

// ReplayBalance replays ledger entries in creation order from a zero
// balance and checks every balanceAfter snapshot on the way. It returns
// the final balance, which for a complete ledger equals the wallet's
// stored balance.
func ReplayBalance(currency string, txs []*Transaction) (kernel.Money, error) {
	balance, err := kernel.ZeroMoney(currency)
	if err != nil {
		return kernel.Money{}, err
	}

	for i, tx := range txs {
		switch tx.Type() {
		case TransactionCredit:
			balance, err = balance.Add(tx.Amount())
		case TransactionDebit:
			balance, err = balance.Sub(tx.Amount())
		default:
			err = errs.NewValueIsInvalidError("transaction type")
		}
		if err != nil {
			return kernel.Money{}, err
		}

		if !balance.IsEqual(tx.BalanceAfter()) {
			return kernel.Money{}, fmt.Errorf(
				"%w: entry %d expects %s, replay gives %s",
				ErrLedgerReplayMismatch, i, tx.BalanceAfter(), balance)
		}
	}

	return balance, nil
}
