package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cambiosys/currency_exchange_app/internal/apperrors"
	"github.com/cambiosys/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/cambiosys/currency_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/cambiosys/currency_exchange_app/internal/core/ports/services"
	"github.com/cambiosys/currency_exchange_app/internal/dto"
	"github.com/google/uuid"
)

// transactionService drives the lifecycle of exchange transactions. Pricing
// comes from the operation service; the cash leg is delegated to the stock
// service; profit is recorded on completion.
type transactionService struct {
	txnRepo      portsrepo.TransactionRepositoryFacade
	operationSvc portssvc.OperationSvcFacade
	stockSvc     portssvc.StockSvcFacade
	profitSvc    portssvc.ProfitSvcFacade
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(
	txnRepo portsrepo.TransactionRepositoryFacade,
	operationSvc portssvc.OperationSvcFacade,
	stockSvc portssvc.StockSvcFacade,
	profitSvc portssvc.ProfitSvcFacade,
) portssvc.TransactionSvcFacade {
	return &transactionService{
		txnRepo:      txnRepo,
		operationSvc: operationSvc,
		stockSvc:     stockSvc,
		profitSvc:    profitSvc,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction prices the operation and opens the transaction. When the
// house sells foreign cash through a terminal, a linked withdrawal movement
// reserves the payout immediately; a payout that cannot be covered fails the
// transaction right away instead of leaving it dangling.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	quote, err := s.operationSvc.ComputeOperation(ctx, dto.ComputeOperationRequest{
		OriginCurrencyCode:      req.OriginCurrencyCode,
		DestinationCurrencyCode: req.DestinationCurrencyCode,
		Amount:                  req.Amount,
		ClientID:                req.ClientID,
		MethodDetailID:          req.MethodDetailID,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID:      uuid.NewString(),
		ClientID:           req.ClientID,
		HouseSide:          domain.OperationSide(quote.HouseSide),
		SourceCurrencyCode: quote.OriginCurrencyCode,
		DestCurrencyCode:   quote.DestinationCurrencyCode,
		SourceAmount:       quote.OriginAmount,
		DestAmount:         quote.DestinationAmount,
		MarketRate:         quote.MarketRate,
		AppliedRate:        quote.AppliedRate,
		MethodDetailID:     req.MethodDetailID,
		Status:             domain.TransactionPending,
		TerminalID:         req.TerminalID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	if txn.HouseSide == domain.Sell && req.TerminalID != nil {
		destAmount := txn.DestAmount
		_, err := s.stockSvc.CreateMovement(ctx, dto.CreateMovementRequest{
			Type:          string(domain.ClientWithdrawal),
			LocationID:    *req.TerminalID,
			CurrencyCode:  txn.DestCurrencyCode,
			Amount:        &destAmount,
			TransactionID: &txn.TransactionID,
		}, creatorUserID)
		if err != nil {
			if stErr := s.txnRepo.UpdateTransactionStatus(ctx, txn.TransactionID, domain.TransactionPending, domain.TransactionFailed, creatorUserID, time.Now()); stErr != nil {
				return nil, fmt.Errorf("failed to mark transaction failed after %v: %w", err, stErr)
			}
			return nil, err
		}
		if err := s.txnRepo.UpdateTransactionStatus(ctx, txn.TransactionID, domain.TransactionPending, domain.TransactionInProgress, creatorUserID, time.Now()); err != nil {
			return nil, err
		}
		txn.Status = domain.TransactionInProgress
	}

	return &txn, nil
}

// GetTransactionByID retrieves a transaction by its identifier.
func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

// ListTransactions retrieves a paginated list of transactions.
func (s *transactionService) ListTransactions(ctx context.Context, limit int, offset int) ([]domain.Transaction, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	txns, err := s.txnRepo.ListTransactions(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

// ListTransactionsByClient retrieves a paginated list of one client's transactions.
func (s *transactionService) ListTransactionsByClient(ctx context.Context, clientID string, limit int, offset int) ([]domain.Transaction, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	txns, err := s.txnRepo.ListTransactionsByClient(ctx, clientID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for client %s: %w", clientID, err)
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

// CompleteTransaction finalizes the linked movement, marks the transaction
// completed and records its profit. Completing an already-completed
// transaction only backfills a missing profit entry, so retries are safe.
func (s *transactionService) CompleteTransaction(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to complete transaction %s: %w", transactionID, err)
	}

	if txn.Status != domain.TransactionCompleted {
		if txn.Status.IsTerminal() {
			return nil, fmt.Errorf("transaction %s is %s: %w", transactionID, txn.Status, apperrors.ErrConflict)
		}

		movement, err := s.stockSvc.GetMovementByTransactionID(ctx, transactionID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		if movement != nil && movement.Status == domain.MovementInProgress {
			if _, err := s.stockSvc.FinalizeMovement(ctx, movement.MovementID, userID); err != nil {
				return nil, err
			}
		}

		if err := s.txnRepo.UpdateTransactionStatus(ctx, transactionID, txn.Status, domain.TransactionCompleted, userID, time.Now()); err != nil {
			return nil, err
		}
		txn.Status = domain.TransactionCompleted
	}

	if _, err := s.profitSvc.RecordProfitForTransaction(ctx, *txn, userID); err != nil {
		return nil, err
	}
	return txn, nil
}

// terminate cancels the linked movement (restoring stock) and moves the
// transaction into the given terminal state.
func (s *transactionService) terminate(ctx context.Context, transactionID string, to domain.TransactionStatus, userID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction %s: %w", transactionID, err)
	}
	if txn.Status == to {
		return txn, nil
	}
	if txn.Status.IsTerminal() {
		return nil, fmt.Errorf("transaction %s is %s: %w", transactionID, txn.Status, apperrors.ErrConflict)
	}

	movement, err := s.stockSvc.GetMovementByTransactionID(ctx, transactionID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if movement != nil {
		if _, err := s.stockSvc.CancelMovement(ctx, movement.MovementID, userID); err != nil {
			return nil, err
		}
	}

	if err := s.txnRepo.UpdateTransactionStatus(ctx, transactionID, txn.Status, to, userID, time.Now()); err != nil {
		return nil, err
	}
	txn.Status = to
	return txn, nil
}

// CancelTransaction cancels the transaction and restores any reserved stock.
func (s *transactionService) CancelTransaction(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error) {
	return s.terminate(ctx, transactionID, domain.TransactionCancelled, userID)
}

// FailTransaction marks the transaction failed and restores any reserved stock.
func (s *transactionService) FailTransaction(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error) {
	return s.terminate(ctx, transactionID, domain.TransactionFailed, userID)
}
