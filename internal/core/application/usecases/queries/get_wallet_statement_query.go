package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrGetWalletStatementQueryIsNotConstructed = errors.New(
		"GetWalletStatementQuery must be created via NewGetWalletStatementQuery constructor",
	)
)

// GetWalletStatementQuery retrieves a wallet with its full ledger. The
// statement is the reconciliation view: the balance plus every movement
// that produced it, oldest entry first.
type GetWalletStatementQuery struct {
	walletID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetWalletStatementQuery creates a query for one wallet's statement.
func NewGetWalletStatementQuery(walletID kernel.UUID) (GetWalletStatementQuery, error) {
	if err := walletID.Validate(); err != nil {
		return GetWalletStatementQuery{}, err
	}

	return GetWalletStatementQuery{
		walletID: walletID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWalletStatementQuery) Validate() error {
	return q.guard.Validate(ErrGetWalletStatementQueryIsNotConstructed)
}

// WalletID returns the identifier of the wallet to read.
func (q GetWalletStatementQuery) WalletID() kernel.UUID {
	return q.walletID
}

// GetWalletStatementQueryResponse is the read model for a wallet
// statement. OwnerID is nil for the platform wallet, which has no owning
// aggregate.
type GetWalletStatementQueryResponse struct {
	WalletID  kernel.UUID
	OwnerKind string
	OwnerID   *kernel.UUID
	Balance   kernel.Money
	Entries   []WalletStatementEntry
}

// WalletStatementEntry is one ledger movement in a statement.
type WalletStatementEntry struct {
	ID           kernel.UUID
	Type         string
	Amount       kernel.Money
	BalanceAfter kernel.Money
	Reference    string
	Category     string
	DeliveryID   *kernel.UUID
	CreatedAt    time.Time
}
