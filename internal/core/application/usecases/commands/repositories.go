// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// remote confirmation, and persistence. The local transaction only commits
// after the backend has confirmed the change.
package commands

import (
	"context"

	"riderhub/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest unit of work that covers the
// aggregates it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// WalletRepoFactory provides access to the wallet repository within a transaction.
	WalletRepoFactory interface {
		WalletRepository() ports.WalletRepository
	}

	// LedgerRepoFactory provides access to the ledger repository within a transaction.
	LedgerRepoFactory interface {
		LedgerRepository() ports.LedgerRepository
	}

	// TicketRepoFactory provides access to the ticket repository within a transaction.
	TicketRepoFactory interface {
		TicketRepository() ports.TicketRepository
	}

	// AccountRepoFactory provides access to the account repository within a transaction.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// EarningsUoW manages transactions over the wallet and its ledger.
	EarningsUoW interface {
		TxManager
		WalletRepoFactory
		LedgerRepoFactory
	}

	// EarningsUoWFactory creates new earnings unit of work instances.
	EarningsUoWFactory interface {
		Create() EarningsUoW
	}

	// DeliveryUoW manages transactions that complete a delivery: the order
	// transition, the earnings posting, and the profile stats move together.
	DeliveryUoW interface {
		TxManager
		OrderRepoFactory
		WalletRepoFactory
		LedgerRepoFactory
		AccountRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// TicketUoW manages transactions for ticket operations.
	TicketUoW interface {
		TxManager
		TicketRepoFactory
	}

	// TicketUoWFactory creates new ticket unit of work instances.
	TicketUoWFactory interface {
		Create() TicketUoW
	}

	// AccountUoW manages transactions for profile, document, and rating
	// operations.
	AccountUoW interface {
		TxManager
		AccountRepoFactory
	}

	// AccountUoWFactory creates new account unit of work instances.
	AccountUoWFactory interface {
		Create() AccountUoW
	}
)
