package services

import (
	"context"

	"github.com/cambiosys/currency_exchange_app/internal/core/domain"
)

// ProfitReaderSvc defines read operations for profit data
type ProfitReaderSvc interface {
	// GetProfitByTransactionID retrieves the profit entry of a transaction.
	GetProfitByTransactionID(ctx context.Context, transactionID string) (*domain.Profit, error)

	// ListProfitsByPeriod retrieves the profit entries of one calendar month.
	ListProfitsByPeriod(ctx context.Context, year int, month int) ([]domain.Profit, error)
}

// ProfitWriterSvc defines write operations for profit data
type ProfitWriterSvc interface {
	// RecordProfitForTransaction computes and persists the profit of a
	// completed transaction. A transaction yields at most one profit entry;
	// repeated calls return the existing one.
	RecordProfitForTransaction(ctx context.Context, txn domain.Transaction, userID string) (*domain.Profit, error)
}

// ProfitSvcFacade combines all profit-related service interfaces
type ProfitSvcFacade interface {
	ProfitReaderSvc
	ProfitWriterSvc
}
