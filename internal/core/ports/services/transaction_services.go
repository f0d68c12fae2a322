package services

import (
	"context"

	"github.com/cambiosys/currency_exchange_app/internal/core/domain"
	"github.com/cambiosys/currency_exchange_app/internal/dto"
)

// TransactionReaderSvc defines read operations for exchange transactions
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a transaction by its identifier.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a paginated list of transactions.
	ListTransactions(ctx context.Context, limit int, offset int) ([]domain.Transaction, error)

	// ListTransactionsByClient retrieves a paginated list of one client's transactions.
	ListTransactionsByClient(ctx context.Context, clientID string, limit int, offset int) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines lifecycle operations for exchange transactions
type TransactionWriterSvc interface {
	// CreateTransaction prices and opens a transaction. When the house sells
	// foreign cash through a terminal, the payout stock is reserved by an
	// automatically created withdrawal movement.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error)

	// CompleteTransaction finalizes the linked movement, records the profit
	// entry and marks the transaction completed.
	CompleteTransaction(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error)

	// CancelTransaction cancels the linked movement (restoring stock) and
	// marks the transaction cancelled.
	CancelTransaction(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error)

	// FailTransaction cancels the linked movement and marks the transaction failed.
	FailTransaction(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
