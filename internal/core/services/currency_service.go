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

// currencyService provides business logic for currencies and denominations.
type currencyService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a new currency service.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

// CreateCurrency persists a new currency. When the request flags it as base,
// the base flag is moved onto it atomically after the insert.
func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error) {
	now := time.Now()

	currency := domain.Currency{
		CurrencyCode: req.CurrencyCode,
		Name:         req.Name,
		Symbol:       req.Symbol,
		Precision:    req.Precision,
		IsBase:       false,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		return nil, fmt.Errorf("failed to create currency: %w", err)
	}

	if req.IsBase {
		if err := s.currencyRepo.SetBaseCurrency(ctx, currency.CurrencyCode, creatorUserID, now); err != nil {
			return nil, fmt.Errorf("failed to flag %s as base: %w", currency.CurrencyCode, err)
		}
		currency.IsBase = true
	}

	return &currency, nil
}

// GetCurrencyByCode retrieves a currency by its code.
func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency %s: %w", currencyCode, err)
	}
	return currency, nil
}

// GetBaseCurrency retrieves the single base currency.
func (s *currencyService) GetBaseCurrency(ctx context.Context) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindBaseCurrency(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get base currency: %w", err)
	}
	return currency, nil
}

// ListCurrencies retrieves all currencies.
func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

// SetBaseCurrency moves the base flag onto the given currency.
func (s *currencyService) SetBaseCurrency(ctx context.Context, currencyCode string, userID string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to set base currency: %w", err)
	}
	if !currency.IsActive {
		return nil, fmt.Errorf("%w: inactive currency %s cannot be base", apperrors.ErrValidation, currencyCode)
	}

	if err := s.currencyRepo.SetBaseCurrency(ctx, currencyCode, userID, time.Now()); err != nil {
		return nil, fmt.Errorf("failed to set base currency: %w", err)
	}
	currency.IsBase = true
	return currency, nil
}

// DeactivateCurrency marks a currency as inactive. The base currency cannot
// be deactivated; move the flag first.
func (s *currencyService) DeactivateCurrency(ctx context.Context, currencyCode string, userID string) error {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return fmt.Errorf("failed to deactivate currency: %w", err)
	}
	if currency.IsBase {
		return fmt.Errorf("%w: cannot deactivate the base currency", apperrors.ErrConflict)
	}

	if err := s.currencyRepo.DeactivateCurrency(ctx, currencyCode, userID, time.Now()); err != nil {
		return fmt.Errorf("failed to deactivate currency %s: %w", currencyCode, err)
	}
	return nil
}

// CreateDenomination registers a new denomination under an active currency.
func (s *currencyService) CreateDenomination(ctx context.Context, req dto.CreateDenominationRequest, creatorUserID string) (*domain.Denomination, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, req.CurrencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: currency %s not found", apperrors.ErrValidation, req.CurrencyCode)
		}
		return nil, fmt.Errorf("failed to validate currency %s: %w", req.CurrencyCode, err)
	}
	if !currency.IsActive {
		return nil, fmt.Errorf("%w: currency %s is inactive", apperrors.ErrValidation, req.CurrencyCode)
	}

	now := time.Now()
	denomination := domain.Denomination{
		DenominationID: uuid.NewString(),
		CurrencyCode:   req.CurrencyCode,
		Value:          req.Value,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.currencyRepo.SaveDenomination(ctx, denomination); err != nil {
		return nil, fmt.Errorf("failed to create denomination: %w", err)
	}
	return &denomination, nil
}

// ListDenominations retrieves a currency's denominations.
func (s *currencyService) ListDenominations(ctx context.Context, currencyCode string, activeOnly bool) ([]domain.Denomination, error) {
	denominations, err := s.currencyRepo.ListDenominationsByCurrency(ctx, currencyCode, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list denominations for %s: %w", currencyCode, err)
	}
	if denominations == nil {
		return []domain.Denomination{}, nil
	}
	return denominations, nil
}

// DeactivateDenomination marks a denomination as inactive. Existing stock
// entries keep their quantities; the denomination just stops participating in
// new allocations.
func (s *currencyService) DeactivateDenomination(ctx context.Context, denominationID string, userID string) error {
	if err := s.currencyRepo.DeactivateDenomination(ctx, denominationID, userID, time.Now()); err != nil {
		return fmt.Errorf("failed to deactivate denomination %s: %w", denominationID, err)
	}
	return nil
}
