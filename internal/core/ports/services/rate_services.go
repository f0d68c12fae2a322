package services

import (
	"context"

	"github.com/cambiosys/currency_exchange_app/internal/core/domain"
	"github.com/cambiosys/currency_exchange_app/internal/dto"
)

// RateReaderSvc defines read operations for rate configuration data
type RateReaderSvc interface {
	// GetActiveRate retrieves the active rate configuration of a currency.
	GetActiveRate(ctx context.Context, currencyCode string) (*domain.Rate, error)

	// ListActiveRates retrieves the active rate configuration of every currency.
	ListActiveRates(ctx context.Context) ([]domain.Rate, error)

	// ListRateHistory retrieves the newest rate snapshots of a currency.
	ListRateHistory(ctx context.Context, currencyCode string, limit int) ([]domain.RateHistory, error)
}

// RateWriterSvc defines write operations for rate configuration data
type RateWriterSvc interface {
	// CreateRate persists a new rate configuration and its first history snapshot.
	CreateRate(ctx context.Context, req dto.CreateRateRequest, creatorUserID string) (*domain.Rate, error)

	// UpdateRate applies a partial mutation and appends a history snapshot.
	UpdateRate(ctx context.Context, rateID string, req dto.UpdateRateRequest, userID string) (*domain.Rate, error)

	// DeactivateRate marks a rate configuration as inactive.
	DeactivateRate(ctx context.Context, rateID string, userID string) error
}

// RateSvcFacade combines all rate-related service interfaces
type RateSvcFacade interface {
	RateReaderSvc
	RateWriterSvc
}
