package services

import (
	"context"

	"github.com/cambiosys/currency_exchange_app/internal/core/domain"
	"github.com/cambiosys/currency_exchange_app/internal/dto"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// GetBaseCurrency retrieves the single base currency.
	GetBaseCurrency(ctx context.Context) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)

	// ListDenominations retrieves a currency's denominations.
	ListDenominations(ctx context.Context, currencyCode string, activeOnly bool) ([]domain.Denomination, error)
}

// CurrencyWriterSvc defines write operations for currency data
type CurrencyWriterSvc interface {
	// CreateCurrency persists a new currency.
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error)

	// SetBaseCurrency moves the base flag onto the given currency.
	SetBaseCurrency(ctx context.Context, currencyCode string, userID string) (*domain.Currency, error)

	// DeactivateCurrency marks a currency as inactive.
	DeactivateCurrency(ctx context.Context, currencyCode string, userID string) error

	// CreateDenomination registers a new denomination for a currency.
	CreateDenomination(ctx context.Context, req dto.CreateDenominationRequest, creatorUserID string) (*domain.Denomination, error)

	// DeactivateDenomination marks a denomination as inactive.
	DeactivateDenomination(ctx context.Context, denominationID string, userID string) error
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}
