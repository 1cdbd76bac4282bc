// Package walletrepo provides data transfer objects and mapping functions
// for wallet and ledger persistence. Wallet rows carry the current balance;
// wallet_transactions is an append-only ledger that can replay it.
package walletrepo

import (
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/wallet"

	"github.com/google/uuid"
)

// WalletDTO represents the database structure for persisting wallets. The
// unique index on (owner_kind, owner_id) enforces one wallet per owner; the
// platform wallet stores the zero UUID as its owner id.
type WalletDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerKind     string    `gorm:"type:varchar(16);not null;uniqueIndex:idx_wallets_owner"`
	OwnerID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wallets_owner"`
	BalanceAmount string    `gorm:"type:numeric(14,2);not null"`
	Currency      string    `gorm:"type:varchar(3);not null"`
}

// TableName overrides GORM's default naming convention to use "wallets".
func (WalletDTO) TableName() string {
	return "wallets"
}

// TransactionDTO represents a ledger entry row. Entries are write-once;
// there is no update path through this package.
type TransactionDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	WalletID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Type         string     `gorm:"type:varchar(8);not null"`
	Amount       string     `gorm:"type:numeric(14,2);not null"`
	BalanceAfter string     `gorm:"type:numeric(14,2);not null"`
	Currency     string     `gorm:"type:varchar(3);not null"`
	Reference    string     `gorm:"type:varchar(128);not null"`
	Category     string     `gorm:"type:varchar(32);not null;index"`
	DeliveryID   *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt    time.Time  `gorm:"not null;index"`
}

// TableName overrides GORM's default naming convention to use
// "wallet_transactions".
func (TransactionDTO) TableName() string {
	return "wallet_transactions"
}

// fromDomain converts a wallet domain aggregate to its database
// representation.
func fromDomain(aggregate *wallet.Wallet) WalletDTO {
	return WalletDTO{
		ID:            aggregate.ID().Bytes(),
		OwnerKind:     string(aggregate.Owner().Kind()),
		OwnerID:       aggregate.Owner().ID().Bytes(),
		BalanceAmount: aggregate.Balance().Amount().String(),
		Currency:      aggregate.Currency(),
	}
}

// toDomain converts a database row to a wallet domain aggregate using
// RestoreWallet.
func toDomain(dto WalletDTO) (*wallet.Wallet, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	owner, err := ownerFromRow(dto.OwnerKind, dto.OwnerID)
	if err != nil {
		return nil, err
	}
	balance, err := kernel.NewMoneyFromString(dto.BalanceAmount, dto.Currency)
	if err != nil {
		return nil, err
	}

	return wallet.RestoreWallet(id, owner, balance)
}

// ownerFromRow reconstructs the polymorphic owner key from its two columns.
func ownerFromRow(kind string, id uuid.UUID) (wallet.Owner, error) {
	switch wallet.OwnerKind(kind) {
	case wallet.OwnerKindPlatform:
		return wallet.PlatformOwner(), nil
	case wallet.OwnerKindCourier:
		courierID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return wallet.Owner{}, err
		}
		return wallet.CourierOwner(courierID)
	case wallet.OwnerKindPharmacy:
		pharmacyID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return wallet.Owner{}, err
		}
		return wallet.PharmacyOwner(pharmacyID)
	default:
		return wallet.Owner{}, fmt.Errorf("unknown wallet owner kind %q", kind)
	}
}

// transactionFromDomain converts a ledger entry to its database
// representation.
func transactionFromDomain(tx *wallet.Transaction) TransactionDTO {
	var deliveryID *uuid.UUID
	if id := tx.DeliveryID(); id != nil {
		raw := id.Bytes()
		deliveryID = &raw
	}

	return TransactionDTO{
		ID:           tx.ID().Bytes(),
		WalletID:     tx.WalletID().Bytes(),
		Type:         string(tx.Type()),
		Amount:       tx.Amount().Amount().String(),
		BalanceAfter: tx.BalanceAfter().Amount().String(),
		Currency:     tx.Amount().Currency(),
		Reference:    tx.Reference(),
		Category:     tx.Category(),
		DeliveryID:   deliveryID,
		CreatedAt:    tx.CreatedAt(),
	}
}

// transactionToDomain converts a ledger row back to a domain entry using
// RestoreTransaction.
func transactionToDomain(dto TransactionDTO) (*wallet.Transaction, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	walletID, err := kernel.UUIDFromBytes(dto.WalletID[:])
	if err != nil {
		return nil, err
	}
	amount, err := kernel.NewMoneyFromString(dto.Amount, dto.Currency)
	if err != nil {
		return nil, err
	}
	balanceAfter, err := kernel.NewMoneyFromString(dto.BalanceAfter, dto.Currency)
	if err != nil {
		return nil, err
	}

	var deliveryID *kernel.UUID
	if dto.DeliveryID != nil {
		did, dErr := kernel.UUIDFromBytes(dto.DeliveryID[:])
		if dErr != nil {
			return nil, dErr
		}
		deliveryID = &did
	}

	return wallet.RestoreTransaction(
		id,
		walletID,
		wallet.TransactionType(dto.Type),
		amount,
		balanceAfter,
		dto.Reference,
		dto.Category,
		deliveryID,
		dto.CreatedAt,
	)
}
