package services

import (
	"context"

	"github.com/cambiosys/currency_exchange_app/internal/core/domain"
	"github.com/cambiosys/currency_exchange_app/internal/dto"
	"github.com/shopspring/decimal"
)

// StockReaderSvc defines read operations for locations, stock and movements
type StockReaderSvc interface {
	// GetLocationByID retrieves a location by its identifier.
	GetLocationByID(ctx context.Context, locationID string) (*domain.Location, error)

	// ListLocations retrieves all locations.
	ListLocations(ctx context.Context) ([]domain.Location, error)

	// ListStock retrieves every stock entry at a location.
	ListStock(ctx context.Context, locationID string) ([]domain.StockEntry, error)

	// TerminalCanCover reports whether the terminal's stock of the currency
	// can pay out the exact amount with some denomination combination.
	TerminalCanCover(ctx context.Context, locationID string, currencyCode string, amount decimal.Decimal) (bool, error)

	// GetMovementByID retrieves a movement with its detail lines.
	GetMovementByID(ctx context.Context, movementID string) (*domain.StockMovement, error)

	// GetMovementByTransactionID retrieves the non-cancelled movement linked
	// to a transaction, or ErrNotFound.
	GetMovementByTransactionID(ctx context.Context, transactionID string) (*domain.StockMovement, error)

	// ListMovementsByLocation retrieves a paginated list of movements at a location.
	ListMovementsByLocation(ctx context.Context, locationID string, limit int, offset int) ([]domain.StockMovement, error)
}

// StockWriterSvc defines write operations for locations and movements
type StockWriterSvc interface {
	// CreateLocation persists a new stock location.
	CreateLocation(ctx context.Context, req dto.CreateLocationRequest, creatorUserID string) (*domain.Location, error)

	// DeactivateLocation marks a location as inactive.
	DeactivateLocation(ctx context.Context, locationID string, userID string) error

	// CreateMovement records a cash flow event and applies its stock deltas.
	CreateMovement(ctx context.Context, req dto.CreateMovementRequest, creatorUserID string) (*domain.StockMovement, error)

	// FinalizeMovement seals an in-progress movement.
	FinalizeMovement(ctx context.Context, movementID string, userID string) (*domain.StockMovement, error)

	// CancelMovement cancels a movement and restores its stock. Cancelling an
	// already-cancelled movement is a no-op.
	CancelMovement(ctx context.Context, movementID string, userID string) (*domain.StockMovement, error)
}

// StockSvcFacade combines all stock-related service interfaces
type StockSvcFacade interface {
	StockReaderSvc
	StockWriterSvc
}
