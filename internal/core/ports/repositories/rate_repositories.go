package repositories

import (
	"context"
	"time"

	"github.com/cambiosys/currency_exchange_app/internal/core/domain"
)

// RateReader defines read operations for rate configuration data
type RateReader interface {
	// FindRateByID retrieves a rate configuration by its identifier.
	FindRateByID(ctx context.Context, rateID string) (*domain.Rate, error)

	// FindActiveRateByCurrency retrieves the single active rate configuration
	// for a currency, or ErrRateNotFound when none exists.
	FindActiveRateByCurrency(ctx context.Context, currencyCode string) (*domain.Rate, error)

	// ListActiveRates retrieves the active rate configuration of every currency.
	ListActiveRates(ctx context.Context) ([]domain.Rate, error)

	// ListRateHistory retrieves the newest history snapshots for a currency.
	ListRateHistory(ctx context.Context, currencyCode string, limit int) ([]domain.RateHistory, error)
}

// RateWriter defines write operations for rate configuration data
type RateWriter interface {
	// SaveRateWithHistory persists a new rate configuration and its first
	// history snapshot in one transaction.
	SaveRateWithHistory(ctx context.Context, rate domain.Rate, history domain.RateHistory) error

	// UpdateRateWithHistory locks the rate row, applies the mutation and
	// appends a history snapshot in one transaction. Every parameter change
	// leaves a snapshot; there is no update path without one.
	UpdateRateWithHistory(ctx context.Context, rate domain.Rate, history domain.RateHistory) error

	// DeactivateRate marks a rate configuration as inactive.
	DeactivateRate(ctx context.Context, rateID string, userID string, now time.Time) error
}

// RateRepositoryFacade combines all rate-related repository interfaces
// This is a facade for clients that need access to all operations
type RateRepositoryFacade interface {
	RateReader
	RateWriter
}

// RateRepositoryWithTx extends RateRepositoryFacade with transaction capabilities
type RateRepositoryWithTx interface {
	RateRepositoryFacade
	TransactionManager
}
