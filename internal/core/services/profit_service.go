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
	"github.com/cambiosys/currency_exchange_app/internal/utils/fxmath"
	"github.com/google/uuid"
)

// profitService derives and stores the earnings of completed transactions.
type profitService struct {
	profitRepo  portsrepo.ProfitRepositoryFacade
	currencySvc portssvc.CurrencyReaderSvc
	methodSvc   portssvc.MethodReaderSvc
}

// NewProfitService creates a new profit service.
func NewProfitService(
	profitRepo portsrepo.ProfitRepositoryFacade,
	currencySvc portssvc.CurrencyReaderSvc,
	methodSvc portssvc.MethodReaderSvc,
) portssvc.ProfitSvcFacade {
	return &profitService{
		profitRepo:  profitRepo,
		currencySvc: currencySvc,
		methodSvc:   methodSvc,
	}
}

var _ portssvc.ProfitSvcFacade = (*profitService)(nil)

// RecordProfitForTransaction computes and persists the profit entry of a
// completed transaction. The operation is idempotent: a transaction yields at
// most one profit entry, enforced both here and by the database.
func (s *profitService) RecordProfitForTransaction(ctx context.Context, txn domain.Transaction, userID string) (*domain.Profit, error) {
	if txn.Status != domain.TransactionCompleted {
		return nil, fmt.Errorf("%w: profit only accrues on completed transactions", apperrors.ErrValidation)
	}

	existing, err := s.profitRepo.FindProfitByTransactionID(ctx, txn.TransactionID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing profit for %s: %w", txn.TransactionID, err)
	}

	base, err := s.currencySvc.GetBaseCurrency(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve base currency: %w", err)
	}

	foreignCode := txn.ForeignCurrency(base.CurrencyCode)
	foreignAmount := txn.ForeignAmount(base.CurrencyCode)
	netProfit := fxmath.RoundAmount(fxmath.NetProfit(txn.HouseSide, txn.MarketRate, txn.AppliedRate, foreignAmount))

	var methodID *string
	if txn.MethodDetailID != nil {
		detail, err := s.methodSvc.GetMethodDetailByID(ctx, *txn.MethodDetailID)
		if err != nil {
			return nil, fmt.Errorf("failed to classify profit by method: %w", err)
		}
		methodID = &detail.MethodID
	}

	now := time.Now()
	profit := domain.Profit{
		ProfitID:      uuid.NewString(),
		TransactionID: txn.TransactionID,
		NetProfit:     netProfit,
		MarketRate:    txn.MarketRate,
		AppliedRate:   txn.AppliedRate,
		ForeignAmount: foreignAmount,
		CurrencyCode:  foreignCode,
		MethodID:      methodID,
		Year:          now.Year(),
		Month:         int(now.Month()),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.profitRepo.SaveProfit(ctx, profit); err != nil {
		// Lost a race with a concurrent completion; the winner's entry stands.
		if errors.Is(err, apperrors.ErrDuplicate) {
			return s.profitRepo.FindProfitByTransactionID(ctx, txn.TransactionID)
		}
		return nil, err
	}
	return &profit, nil
}

// GetProfitByTransactionID retrieves the profit entry of a transaction.
func (s *profitService) GetProfitByTransactionID(ctx context.Context, transactionID string) (*domain.Profit, error) {
	profit, err := s.profitRepo.FindProfitByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profit for transaction %s: %w", transactionID, err)
	}
	return profit, nil
}

// ListProfitsByPeriod retrieves the profit entries of one calendar month.
func (s *profitService) ListProfitsByPeriod(ctx context.Context, year int, month int) ([]domain.Profit, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be 1..12", apperrors.ErrValidation)
	}
	profits, err := s.profitRepo.ListProfitsByPeriod(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list profits for %d-%02d: %w", year, month, err)
	}
	if profits == nil {
		return []domain.Profit{}, nil
	}
	return profits, nil
}
