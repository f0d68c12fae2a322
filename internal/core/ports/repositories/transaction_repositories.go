package repositories

import (
	"context"
	"time"

	"github.com/cambiosys/currency_exchange_app/internal/core/domain"
)

// TransactionReader defines read operations for exchange transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction by its identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a paginated list of transactions, newest first.
	ListTransactions(ctx context.Context, limit int, offset int) ([]domain.Transaction, error)

	// ListTransactionsByClient retrieves a paginated list of one client's transactions.
	ListTransactionsByClient(ctx context.Context, clientID string, limit int, offset int) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for exchange transaction data
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransactionStatus moves a transaction from one status to another.
	// The update is guarded on the expected current status; a stale expectation
	// fails with ErrConflict.
	UpdateTransactionStatus(ctx context.Context, transactionID string, from domain.TransactionStatus, to domain.TransactionStatus, userID string, now time.Time) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
// This is a facade for clients that need access to all operations
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// TransactionRepositoryWithTx extends TransactionRepositoryFacade with transaction capabilities
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
