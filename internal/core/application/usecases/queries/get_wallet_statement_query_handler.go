package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetWalletStatementQueryHandler reads a wallet and its ledger straight
// from the database. Two queries, no locking; the statement is a snapshot
// and may trail a settlement that commits mid-read.
type GetWalletStatementQueryHandler struct {
	db *gorm.DB
}

// NewGetWalletStatementQueryHandler creates a handler for wallet statement
// queries. Requires a GORM database connection for query execution.
func NewGetWalletStatementQueryHandler(db *gorm.DB) GetWalletStatementQueryHandler {
	return GetWalletStatementQueryHandler{db: db}
}

// Handle executes the query and returns the wallet with its ledger entries
// in creation order.
func (h GetWalletStatementQueryHandler) Handle(
	ctx context.Context,
	query GetWalletStatementQuery,
) (GetWalletStatementQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetWalletStatementQueryResponse{}, err
	}

	var resp GetWalletStatementQueryResponse

	var walletID, ownerID uuid.UUID
	var ownerKind, balanceAmount, currency string

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			owner_kind,
			owner_id,
			balance_amount,
			currency
		FROM wallets
		WHERE id = ?
	`, query.WalletID().Bytes()).Row()

	err := row.Scan(&walletID, &ownerKind, &ownerID, &balanceAmount, &currency)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			return resp, errs.NewObjectNotFoundError("wallet", query.WalletID().String())
		}
		return resp, err
	}

	id, err := kernel.UUIDFromBytes(walletID[:])
	if err != nil {
		return resp, err
	}
	resp.WalletID = id
	resp.OwnerKind = ownerKind

	if ownerID != uuid.Nil {
		owner, oErr := kernel.UUIDFromBytes(ownerID[:])
		if oErr != nil {
			return resp, oErr
		}
		resp.OwnerID = &owner
	}

	balance, err := kernel.NewMoneyFromString(balanceAmount, currency)
	if err != nil {
		return resp, err
	}
	resp.Balance = balance

	entries, err := h.loadEntries(ctx, query.WalletID())
	if err != nil {
		return resp, err
	}
	resp.Entries = entries

	return resp, nil
}

func (h GetWalletStatementQueryHandler) loadEntries(
	ctx context.Context,
	walletID kernel.UUID,
) ([]WalletStatementEntry, error) {
	entries := make([]WalletStatementEntry, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			type,
			amount,
			balance_after,
			currency,
			reference,
			category,
			delivery_id,
			created_at
		FROM wallet_transactions
		WHERE wallet_id = ?
		ORDER BY created_at, id
	`, walletID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry WalletStatementEntry
		var id uuid.UUID
		var deliveryID *uuid.UUID
		var amount, balanceAfter, currency string
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&entry.Type,
			&amount,
			&balanceAfter,
			&currency,
			&entry.Reference,
			&entry.Category,
			&deliveryID,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.ID = entryID

		if deliveryID != nil {
			did, dErr := kernel.UUIDFromBytes(deliveryID[:])
			if dErr != nil {
				return nil, dErr
			}
			entry.DeliveryID = &did
		}

		entryAmount, mErr := kernel.NewMoneyFromString(amount, currency)
		if mErr != nil {
			return nil, mErr
		}
		entry.Amount = entryAmount

		after, mErr := kernel.NewMoneyFromString(balanceAfter, currency)
		if mErr != nil {
			return nil, mErr
		}
		entry.BalanceAfter = after

		entry.CreatedAt = createdAt
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
