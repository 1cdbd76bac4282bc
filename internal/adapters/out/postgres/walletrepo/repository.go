package walletrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/wallet"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormWalletRepository implements WalletRepository using GORM.
type GormWalletRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormWalletRepository creates a new GORM wallet repository.
func NewGormWalletRepository(db *gorm.DB, tracker aggregateTracker) *GormWalletRepository {
	return &GormWalletRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new wallet to the database. The unique owner index rejects a
// second wallet for the same owner.
func (r *GormWalletRepository) Add(ctx context.Context, aggregate *wallet.Wallet) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the balance of an existing wallet.
func (r *GormWalletRepository) Update(ctx context.Context, aggregate *wallet.Wallet) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a wallet by ID.
func (r *GormWalletRepository) Get(ctx context.Context, id kernel.UUID) (*wallet.Wallet, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WalletDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("wallet", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOwner retrieves the wallet for an owner key.
func (r *GormWalletRepository) GetByOwner(ctx context.Context, owner wallet.Owner) (*wallet.Wallet, error) {
	return r.getByOwner(ctx, r.db, owner)
}

// GetByOwnerForUpdate retrieves an owner's wallet and takes a row lock that
// lasts until the surrounding transaction ends. All balance mutation goes
// through this method so concurrent settlements serialize per wallet.
func (r *GormWalletRepository) GetByOwnerForUpdate(ctx context.Context, owner wallet.Owner) (*wallet.Wallet, error) {
	return r.getByOwner(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), owner)
}

func (r *GormWalletRepository) getByOwner(ctx context.Context, db *gorm.DB, owner wallet.Owner) (*wallet.Wallet, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}

	var dto WalletDTO
	if err := db.WithContext(ctx).
		First(&dto, "owner_kind = ? AND owner_id = ?", string(owner.Kind()), owner.ID().Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("wallet for owner", string(owner.Kind())+":"+owner.ID().String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// AddTransaction appends a ledger entry.
func (r *GormWalletRepository) AddTransaction(ctx context.Context, tx *wallet.Transaction) error {
	dto := transactionFromDomain(tx)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetTransactions retrieves a wallet's ledger entries in creation order.
func (r *GormWalletRepository) GetTransactions(ctx context.Context, walletID kernel.UUID) ([]*wallet.Transaction, error) {
	if err := walletID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TransactionDTO
	if err := r.db.WithContext(ctx).
		Where("wallet_id = ?", walletID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	txs := make([]*wallet.Transaction, 0, len(dtos))
	for _, dto := range dtos {
		tx, err := transactionToDomain(dto)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}

	return txs, nil
}
