package wallet

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// TransactionType marks the direction of a ledger entry.
type TransactionType string

const (
	// TransactionCredit increases the wallet balance.
	TransactionCredit TransactionType = "CREDIT"
	// TransactionDebit decreases the wallet balance.
	TransactionDebit TransactionType = "DEBIT"
)

// Validate checks the transaction type is a known direction.
func (t TransactionType) Validate() error {
	switch t {
	case TransactionCredit, TransactionDebit:
		return nil
	default:
		return errs.NewValueIsInvalidError("transaction type")
	}
}

// Ledger entry categories used by the settlement flows.
const (
	CategoryCommission = "commission"
	CategoryWaitingFee = "waiting_fee"
	CategoryTopUp      = "top_up"
	CategoryWithdrawal = "withdrawal"
)

// Transaction is an immutable ledger entry. Entries are created only by
// Wallet.Credit and Wallet.Debit and are never mutated or deleted; the
// balanceAfter snapshot makes the ledger independently replayable.
type Transaction struct {
	id           kernel.UUID
	walletID     kernel.UUID
	txType       TransactionType
	amount       kernel.Money
	balanceAfter kernel.Money
	reference    string
	category     string
	deliveryID   *kernel.UUID
	createdAt    time.Time
}

// RestoreTransaction reconstructs a ledger entry from persistence.
func RestoreTransaction(
	id kernel.UUID,
	walletID kernel.UUID,
	txType TransactionType,
	amount kernel.Money,
	balanceAfter kernel.Money,
	reference string,
	category string,
	deliveryID *kernel.UUID,
	createdAt time.Time,
) (*Transaction, error) {
	if err := errors.Join(
		id.Validate(), walletID.Validate(), txType.Validate(),
		amount.Validate(), balanceAfter.Validate(),
	); err != nil {
		return nil, err
	}

	return &Transaction{
		id:           id,
		walletID:     walletID,
		txType:       txType,
		amount:       amount,
		balanceAfter: balanceAfter,
		reference:    reference,
		category:     category,
		deliveryID:   copyUUID(deliveryID),
		createdAt:    createdAt,
	}, nil
}

// ID returns the entry's unique identifier.
func (t *Transaction) ID() kernel.UUID {
	return t.id
}

// WalletID returns the owning wallet's identifier.
func (t *Transaction) WalletID() kernel.UUID {
	return t.walletID
}

// Type returns the entry direction.
func (t *Transaction) Type() TransactionType {
	return t.txType
}

// Amount returns the moved amount. Always positive; the direction is
// carried by Type.
func (t *Transaction) Amount() kernel.Money {
	return t.amount
}

// BalanceAfter returns the wallet balance snapshot taken when the entry
// was posted.
func (t *Transaction) BalanceAfter() kernel.Money {
	return t.balanceAfter
}

// Reference returns the business reference of the movement.
func (t *Transaction) Reference() string {
	return t.reference
}

// Category returns the settlement category of the movement.
func (t *Transaction) Category() string {
	return t.category
}

// DeliveryID returns a copy of the linked delivery identifier, or nil.
func (t *Transaction) DeliveryID() *kernel.UUID {
	return copyUUID(t.deliveryID)
}

// CreatedAt returns the posting timestamp.
func (t *Transaction) CreatedAt() time.Time {
	return t.createdAt
}

func copyUUID(id *kernel.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}
