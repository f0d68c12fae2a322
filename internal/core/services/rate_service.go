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
	"github.com/cambiosys/currency_exchange_app/internal/utils/fxmath"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// rateService provides business logic for rate configurations and their
// append-only history.
type rateService struct {
	rateRepo    portsrepo.RateRepositoryFacade
	currencySvc portssvc.CurrencyReaderSvc
}

// NewRateService creates a new rate service.
func NewRateService(rateRepo portsrepo.RateRepositoryFacade, currencySvc portssvc.CurrencyReaderSvc) portssvc.RateSvcFacade {
	return &rateService{
		rateRepo:    rateRepo,
		currencySvc: currencySvc,
	}
}

var _ portssvc.RateSvcFacade = (*rateService)(nil)

func validateRateParams(basePrice, commissionBuy, commissionSell decimal.Decimal) error {
	if basePrice.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: base price must be positive", apperrors.ErrValidation)
	}
	if commissionBuy.IsNegative() || commissionSell.IsNegative() {
		return fmt.Errorf("%w: commissions cannot be negative", apperrors.ErrValidation)
	}
	return nil
}

// historySnapshot derives the public buy/sell rates (no method commission, no
// discount) and freezes them alongside the raw parameters.
func historySnapshot(rate domain.Rate, userID string, now time.Time) (domain.RateHistory, error) {
	buyRate, err := fxmath.HouseBuyRate(rate.BasePrice, rate.CommissionBuy, decimal.Zero, decimal.Zero)
	if err != nil {
		return domain.RateHistory{}, err
	}
	sellRate, err := fxmath.HouseSellRate(rate.BasePrice, rate.CommissionSell, decimal.Zero, decimal.Zero)
	if err != nil {
		return domain.RateHistory{}, err
	}

	return domain.RateHistory{
		RateHistoryID:  uuid.NewString(),
		RateID:         rate.RateID,
		CurrencyCode:   rate.CurrencyCode,
		BasePrice:      rate.BasePrice,
		CommissionBuy:  rate.CommissionBuy,
		CommissionSell: rate.CommissionSell,
		BuyRate:        fxmath.RoundRate(buyRate),
		SellRate:       fxmath.RoundRate(sellRate),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}, nil
}

// CreateRate persists a new rate configuration for a foreign currency. The
// first history snapshot is written in the same database transaction.
func (s *rateService) CreateRate(ctx context.Context, req dto.CreateRateRequest, creatorUserID string) (*domain.Rate, error) {
	if err := validateRateParams(req.BasePrice, req.CommissionBuy, req.CommissionSell); err != nil {
		return nil, err
	}

	currency, err := s.currencySvc.GetCurrencyByCode(ctx, req.CurrencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: currency %s not found", apperrors.ErrValidation, req.CurrencyCode)
		}
		return nil, fmt.Errorf("failed to validate currency %s: %w", req.CurrencyCode, err)
	}
	if currency.IsBase {
		return nil, fmt.Errorf("%w: base currency has no rate configuration", apperrors.ErrValidation)
	}
	if !currency.IsActive {
		return nil, fmt.Errorf("%w: currency %s is inactive", apperrors.ErrValidation, req.CurrencyCode)
	}

	now := time.Now()
	rate := domain.Rate{
		RateID:         uuid.NewString(),
		CurrencyCode:   req.CurrencyCode,
		BasePrice:      req.BasePrice,
		CommissionBuy:  req.CommissionBuy,
		CommissionSell: req.CommissionSell,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	history, err := historySnapshot(rate, creatorUserID, now)
	if err != nil {
		return nil, err
	}

	if err := s.rateRepo.SaveRateWithHistory(ctx, rate, history); err != nil {
		return nil, fmt.Errorf("failed to create rate: %w", err)
	}
	return &rate, nil
}

// GetActiveRate retrieves the active rate configuration of a currency.
func (s *rateService) GetActiveRate(ctx context.Context, currencyCode string) (*domain.Rate, error) {
	rate, err := s.rateRepo.FindActiveRateByCurrency(ctx, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get active rate for %s: %w", currencyCode, err)
	}
	return rate, nil
}

// ListActiveRates retrieves every currency's active rate configuration.
func (s *rateService) ListActiveRates(ctx context.Context) ([]domain.Rate, error) {
	rates, err := s.rateRepo.ListActiveRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active rates: %w", err)
	}
	if rates == nil {
		return []domain.Rate{}, nil
	}
	return rates, nil
}

// ListRateHistory retrieves the newest rate snapshots of a currency.
func (s *rateService) ListRateHistory(ctx context.Context, currencyCode string, limit int) ([]domain.RateHistory, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	history, err := s.rateRepo.ListRateHistory(ctx, currencyCode, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list rate history for %s: %w", currencyCode, err)
	}
	if history == nil {
		return []domain.RateHistory{}, nil
	}
	return history, nil
}

// UpdateRate applies a partial mutation to a rate configuration. The mutation
// and its history snapshot commit atomically; there is no way to change a
// parameter without leaving a snapshot behind.
func (s *rateService) UpdateRate(ctx context.Context, rateID string, req dto.UpdateRateRequest, userID string) (*domain.Rate, error) {
	rate, err := s.rateRepo.FindRateByID(ctx, rateID)
	if err != nil {
		return nil, fmt.Errorf("failed to update rate %s: %w", rateID, err)
	}
	if !rate.IsActive {
		return nil, fmt.Errorf("%w: rate %s is inactive", apperrors.ErrConflict, rateID)
	}

	if req.BasePrice != nil {
		rate.BasePrice = *req.BasePrice
	}
	if req.CommissionBuy != nil {
		rate.CommissionBuy = *req.CommissionBuy
	}
	if req.CommissionSell != nil {
		rate.CommissionSell = *req.CommissionSell
	}
	if err := validateRateParams(rate.BasePrice, rate.CommissionBuy, rate.CommissionSell); err != nil {
		return nil, err
	}

	now := time.Now()
	rate.LastUpdatedAt = now
	rate.LastUpdatedBy = userID

	history, err := historySnapshot(*rate, userID, now)
	if err != nil {
		return nil, err
	}

	if err := s.rateRepo.UpdateRateWithHistory(ctx, *rate, history); err != nil {
		return nil, fmt.Errorf("failed to update rate %s: %w", rateID, err)
	}
	return rate, nil
}

// DeactivateRate marks a rate configuration as inactive.
func (s *rateService) DeactivateRate(ctx context.Context, rateID string, userID string) error {
	if err := s.rateRepo.DeactivateRate(ctx, rateID, userID, time.Now()); err != nil {
		return fmt.Errorf("failed to deactivate rate %s: %w", rateID, err)
	}
	return nil
}
