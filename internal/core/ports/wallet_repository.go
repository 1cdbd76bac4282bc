package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/wallet"
)

// WalletRepository defines the persistence contract for wallets and their
// append-only transaction ledger. Wallets are unique per owner key.
type WalletRepository interface {
	// Add persists a new wallet to storage.
	Add(ctx context.Context, aggregate *wallet.Wallet) error

	// Update persists the balance of an existing wallet.
	Update(ctx context.Context, aggregate *wallet.Wallet) error

	// Get retrieves a wallet by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*wallet.Wallet, error)

	// GetByOwner retrieves the wallet for an owner key.
	GetByOwner(ctx context.Context, owner wallet.Owner) (*wallet.Wallet, error)

	// GetByOwnerForUpdate retrieves an owner's wallet and locks its row
	// for the duration of the surrounding transaction. All balance
	// mutation goes through this method.
	GetByOwnerForUpdate(ctx context.Context, owner wallet.Owner) (*wallet.Wallet, error)

	// AddTransaction appends a ledger entry. Entries are immutable; there
	// is deliberately no update or delete.
	AddTransaction(ctx context.Context, tx *wallet.Transaction) error

	// GetTransactions retrieves a wallet's ledger entries in creation
	// order.
	GetTransactions(ctx context.Context, walletID kernel.UUID) ([]*wallet.Transaction, error)
}
