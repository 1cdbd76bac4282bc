// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Handlers depend on the narrowest composition that covers the
// aggregates they touch; the persistence adapter's unit of work satisfies
// all of them.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CourierRepoFactory provides access to the courier repository within
	// a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PharmacyRepoFactory provides access to the pharmacy repository
	// within a transaction.
	PharmacyRepoFactory interface {
		PharmacyRepository() ports.PharmacyRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository
	// within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// WalletRepoFactory provides access to the wallet repository within a
	// transaction.
	WalletRepoFactory interface {
		WalletRepository() ports.WalletRepository
	}

	// CommissionRepoFactory provides access to the commission repository
	// within a transaction.
	CommissionRepoFactory interface {
		CommissionRepository() ports.CommissionRepository
	}

	// CourierUoW manages transactions for courier-only operations.
	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	// CourierUoWFactory creates new courier unit of work instances.
	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// OrderUoW manages transactions for order intake operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		PharmacyRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DeliveryUoW manages transactions for delivery lifecycle operations.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
		OrderRepoFactory
		CourierRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// DispatchUoW manages transactions for courier assignment. Dispatch
	// reads the order and pharmacy, locks the courier, and creates the
	// delivery in one transaction.
	DispatchUoW interface {
		TxManager
		OrderRepoFactory
		PharmacyRepoFactory
		CourierRepoFactory
		DeliveryRepoFactory
	}

	// DispatchUoWFactory creates new dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}

	// WalletUoW manages transactions for wallet-only operations.
	WalletUoW interface {
		TxManager
		WalletRepoFactory
	}

	// WalletUoWFactory creates new wallet unit of work instances.
	WalletUoWFactory interface {
		Create() WalletUoW
	}

	// SettlementUoW manages transactions for commission distribution.
	SettlementUoW interface {
		TxManager
		OrderRepoFactory
		PharmacyRepoFactory
		DeliveryRepoFactory
		WalletRepoFactory
		CommissionRepoFactory
	}

	// SettlementUoWFactory creates new settlement unit of work instances.
	SettlementUoWFactory interface {
		Create() SettlementUoW
	}

	// SweepUoW manages transactions for the waiting-timeout sweep.
	SweepUoW interface {
		TxManager
		DeliveryRepoFactory
		CourierRepoFactory
		WalletRepoFactory
	}

	// SweepUoWFactory creates new sweep unit of work instances.
	SweepUoWFactory interface {
		Create() SweepUoW
	}

	// UoW manages transactions across every aggregate. Used by hand-over
	// completion, which settles the courier, the order, and the
	// commission in a single transaction.
	UoW interface {
		TxManager
		CourierRepoFactory
		OrderRepoFactory
		PharmacyRepoFactory
		DeliveryRepoFactory
		WalletRepoFactory
		CommissionRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate
	// operations.
	UoWFactory interface {
		Create() UoW
	}
)
