package repositories

import (
	"context"

	"github.com/cambiosys/currency_exchange_app/internal/core/domain"
)

// ProfitReader defines read operations for profit data
type ProfitReader interface {
	// FindProfitByTransactionID retrieves the profit entry of a transaction.
	FindProfitByTransactionID(ctx context.Context, transactionID string) (*domain.Profit, error)

	// ListProfitsByPeriod retrieves the profit entries of one calendar month.
	ListProfitsByPeriod(ctx context.Context, year int, month int) ([]domain.Profit, error)
}

// ProfitWriter defines write operations for profit data
type ProfitWriter interface {
	// SaveProfit persists a new profit entry. A second entry for the same
	// transaction fails with ErrDuplicate.
	SaveProfit(ctx context.Context, profit domain.Profit) error
}

// ProfitRepositoryFacade combines all profit-related repository interfaces
// This is a facade for clients that need access to all operations
type ProfitRepositoryFacade interface {
	ProfitReader
	ProfitWriter
}

// ProfitRepositoryWithTx extends ProfitRepositoryFacade with transaction capabilities
type ProfitRepositoryWithTx interface {
	ProfitRepositoryFacade
	TransactionManager
}
