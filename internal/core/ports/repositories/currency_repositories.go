package repositories

import (
	"context"
	"time"

	"github.com/cambiosys/currency_exchange_app/internal/core/domain"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a currency by its ISO-style code.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// FindBaseCurrency retrieves the single currency flagged as base.
	FindBaseCurrency(ctx context.Context) (*domain.Currency, error)

	// ListCurrencies retrieves all currencies, active and inactive.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency data
type CurrencyWriter interface {
	// SaveCurrency persists a new currency.
	SaveCurrency(ctx context.Context, currency domain.Currency) error

	// UpdateCurrency updates an existing currency's details.
	UpdateCurrency(ctx context.Context, currency domain.Currency) error

	// SetBaseCurrency atomically clears the current base flag and sets it on
	// the given currency, so exactly one base currency exists at any time.
	SetBaseCurrency(ctx context.Context, currencyCode string, userID string, now time.Time) error

	// DeactivateCurrency marks a currency as inactive.
	DeactivateCurrency(ctx context.Context, currencyCode string, userID string, now time.Time) error
}

// DenominationReader defines read operations for denomination data
type DenominationReader interface {
	// FindDenominationByID retrieves a denomination by its identifier.
	FindDenominationByID(ctx context.Context, denominationID string) (*domain.Denomination, error)

	// ListDenominationsByCurrency retrieves the denominations of a currency,
	// optionally restricted to active ones.
	ListDenominationsByCurrency(ctx context.Context, currencyCode string, activeOnly bool) ([]domain.Denomination, error)
}

// DenominationWriter defines write operations for denomination data
type DenominationWriter interface {
	// SaveDenomination persists a new denomination.
	SaveDenomination(ctx context.Context, denomination domain.Denomination) error

	// DeactivateDenomination marks a denomination as inactive.
	DeactivateDenomination(ctx context.Context, denominationID string, userID string, now time.Time) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
// This is a facade for clients that need access to all operations
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
	DenominationReader
	DenominationWriter
}

// CurrencyRepositoryWithTx extends CurrencyRepositoryFacade with transaction capabilities
type CurrencyRepositoryWithTx interface {
	CurrencyRepositoryFacade
	TransactionManager
}
