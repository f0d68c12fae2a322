package repositories

import (
	"context"
	"time"

	"github.com/cambiosys/currency_exchange_app/internal/core/domain"
)

// LocationReader defines read operations for stock location data
type LocationReader interface {
	// FindLocationByID retrieves a location by its identifier.
	FindLocationByID(ctx context.Context, locationID string) (*domain.Location, error)

	// FindVault retrieves the central vault location.
	FindVault(ctx context.Context) (*domain.Location, error)

	// ListLocations retrieves all locations.
	ListLocations(ctx context.Context) ([]domain.Location, error)
}

// LocationWriter defines write operations for stock location data
type LocationWriter interface {
	// SaveLocation persists a new location.
	SaveLocation(ctx context.Context, location domain.Location) error

	// DeactivateLocation marks a location as inactive.
	DeactivateLocation(ctx context.Context, locationID string, userID string, now time.Time) error
}

// StockReader defines read operations for stock level data
type StockReader interface {
	// ListStockByLocation retrieves every stock entry at a location.
	ListStockByLocation(ctx context.Context, locationID string) ([]domain.StockEntry, error)

	// ListDenominationStock retrieves the active denominations of a currency
	// joined with their quantities at a location. Denominations with no stock
	// row appear with quantity zero.
	ListDenominationStock(ctx context.Context, locationID string, currencyCode string) ([]domain.DenominationStock, error)
}

// MovementReader defines read operations for stock movement data
type MovementReader interface {
	// FindMovementByID retrieves a movement with its detail lines.
	FindMovementByID(ctx context.Context, movementID string) (*domain.StockMovement, error)

	// FindActiveMovementByTransactionID retrieves the single non-cancelled
	// movement linked to a transaction, or ErrNotFound.
	FindActiveMovementByTransactionID(ctx context.Context, transactionID string) (*domain.StockMovement, error)

	// ListMovementsByLocation retrieves a paginated list of movements at a location.
	ListMovementsByLocation(ctx context.Context, locationID string, limit int, offset int) ([]domain.StockMovement, error)
}

// MovementWriter defines write operations for stock movement data
type MovementWriter interface {
	// CreateMovement persists the movement with its detail lines and applies
	// the stock deltas of effect to the terminal and, when the effect says so,
	// the vault, all in one transaction. Debits are conditional on sufficient
	// quantity and fail with ErrInsufficientStock; a second non-cancelled
	// movement for the same transaction fails with ErrDuplicateMovement.
	CreateMovement(ctx context.Context, movement domain.StockMovement, effect domain.StockEffect, vaultID string) error

	// FinalizeMovement seals an in-progress movement. Finalizing anything not
	// in progress fails with ErrConflict.
	FinalizeMovement(ctx context.Context, movementID string, userID string, now time.Time) error

	// CancelMovement marks an in-progress movement cancelled and inverts its
	// stock deltas in one transaction. Cancelling anything not in progress
	// fails with ErrConflict.
	CancelMovement(ctx context.Context, movement domain.StockMovement, effect domain.StockEffect, vaultID string, userID string, now time.Time) error
}

// StockRepositoryFacade combines all stock-related repository interfaces
// This is a facade for clients that need access to all operations
type StockRepositoryFacade interface {
	LocationReader
	LocationWriter
	StockReader
	MovementReader
	MovementWriter
}

// StockRepositoryWithTx extends StockRepositoryFacade with transaction capabilities
type StockRepositoryWithTx interface {
	StockRepositoryFacade
	TransactionManager
}
