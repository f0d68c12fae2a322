package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cambiosys/currency_exchange_app/internal/apperrors"
	"github.com/cambiosys/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/cambiosys/currency_exchange_app/internal/core/ports/repositories"
	"github.com/cambiosys/currency_exchange_app/internal/models"
	"github.com/cambiosys/currency_exchange_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxStockRepository struct {
	BaseRepository
}

// newPgxStockRepository creates a new repository for locations, stock levels
// and movements.
func newPgxStockRepository(pool *pgxpool.Pool) portsrepo.StockRepositoryWithTx {
	return &PgxStockRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.StockRepositoryWithTx = (*PgxStockRepository)(nil)

const locationColumns = `location_id, kind, name, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanLocation(row pgx.Row) (models.Location, error) {
	var m models.Location
	err := row.Scan(
		&m.LocationID,
		&m.Kind,
		&m.Name,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveLocation inserts a new location.
func (r *PgxStockRepository) SaveLocation(ctx context.Context, location domain.Location) error {
	modelLoc := mapping.ToModelLocation(location)

	query := `
		INSERT INTO locations (location_id, kind, name, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelLoc.LocationID,
		modelLoc.Kind,
		modelLoc.Name,
		modelLoc.IsActive,
		modelLoc.CreatedAt,
		modelLoc.CreatedBy,
		modelLoc.LastUpdatedAt,
		modelLoc.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation: second vault
			return fmt.Errorf("vault location already exists: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save location %s: %w", modelLoc.LocationID, err)
	}
	return nil
}

// FindLocationByID retrieves a location by its identifier.
func (r *PgxStockRepository) FindLocationByID(ctx context.Context, locationID string) (*domain.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE location_id = $1;`

	modelLoc, err := scanLocation(r.Pool.QueryRow(ctx, query, locationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find location %s: %w", locationID, err)
	}

	domainLoc := mapping.ToDomainLocation(modelLoc)
	return &domainLoc, nil
}

// FindVault retrieves the central vault location.
func (r *PgxStockRepository) FindVault(ctx context.Context) (*domain.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE kind = 'VAULT';`

	modelLoc, err := scanLocation(r.Pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find vault location: %w", err)
	}

	domainLoc := mapping.ToDomainLocation(modelLoc)
	return &domainLoc, nil
}

// ListLocations retrieves all locations.
func (r *PgxStockRepository) ListLocations(ctx context.Context) ([]domain.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}
	defer rows.Close()

	modelLocs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Location, error) {
		return scanLocation(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect location rows: %w", err)
	}

	return mapping.ToDomainLocationSlice(modelLocs), nil
}

// DeactivateLocation marks a location as inactive.
func (r *PgxStockRepository) DeactivateLocation(ctx context.Context, locationID string, userID string, now time.Time) error {
	query := `
		UPDATE locations SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE location_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, locationID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate location %s: %w", locationID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListStockByLocation retrieves every stock entry at a location.
func (r *PgxStockRepository) ListStockByLocation(ctx context.Context, locationID string) ([]domain.StockEntry, error) {
	query := `
		SELECT location_id, denomination_id, quantity, created_at, created_by, last_updated_at, last_updated_by
		FROM stock_entries
		WHERE location_id = $1
		ORDER BY denomination_id;
	`
	rows, err := r.Pool.Query(ctx, query, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock at %s: %w", locationID, err)
	}
	defer rows.Close()

	modelEntries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.StockEntry, error) {
		var m models.StockEntry
		err := row.Scan(
			&m.LocationID,
			&m.DenominationID,
			&m.Quantity,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect stock rows: %w", err)
	}

	return mapping.ToDomainStockEntrySlice(modelEntries), nil
}

// ListDenominationStock joins a currency's active denominations with their
// quantities at a location. Denominations without a stock row come back with
// quantity zero, so allocation sees the full denomination set.
func (r *PgxStockRepository) ListDenominationStock(ctx context.Context, locationID string, currencyCode string) ([]domain.DenominationStock, error) {
	query := `
		SELECT d.denomination_id, d.value, COALESCE(s.quantity, 0)
		FROM denominations d
		LEFT JOIN stock_entries s ON s.denomination_id = d.denomination_id AND s.location_id = $1
		WHERE d.currency_code = $2 AND d.is_active
		ORDER BY d.value DESC;
	`
	rows, err := r.Pool.Query(ctx, query, locationID, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to query denomination stock at %s: %w", locationID, err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DenominationStock, error) {
		var ds domain.DenominationStock
		err := row.Scan(&ds.DenominationID, &ds.FaceValue, &ds.Quantity)
		return ds, err
	})
}

// applyStockDelta credits or debits one denomination at one location inside a
// transaction. Credits upsert; debits are conditional on sufficient quantity
// and fail with ErrInsufficientStock when the row is missing or short.
func applyStockDelta(ctx context.Context, tx pgx.Tx, locationID, denominationID string, delta int64, userID string, now time.Time) error {
	if delta == 0 {
		return nil
	}

	if delta > 0 {
		query := `
			INSERT INTO stock_entries (location_id, denomination_id, quantity, created_at, created_by, last_updated_at, last_updated_by)
			VALUES ($1, $2, $3, $4, $5, $4, $5)
			ON CONFLICT (location_id, denomination_id) DO UPDATE SET
				quantity = stock_entries.quantity + EXCLUDED.quantity,
				last_updated_at = EXCLUDED.last_updated_at,
				last_updated_by = EXCLUDED.last_updated_by;
		`
		if _, err := tx.Exec(ctx, query, locationID, denominationID, delta, now, userID); err != nil {
			return fmt.Errorf("failed to credit %d of %s at %s: %w", delta, denominationID, locationID, err)
		}
		return nil
	}

	debit := -delta
	query := `
		UPDATE stock_entries
		SET quantity = quantity - $3, last_updated_at = $4, last_updated_by = $5
		WHERE location_id = $1 AND denomination_id = $2 AND quantity >= $3;
	`
	cmdTag, err := tx.Exec(ctx, query, locationID, denominationID, debit, now, userID)
	if err != nil {
		return fmt.Errorf("failed to debit %d of %s at %s: %w", debit, denominationID, locationID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("cannot debit %d of %s at %s: %w", debit, denominationID, locationID, apperrors.ErrInsufficientStock)
	}
	return nil
}

// applyMovementEffect applies effect to every detail line of the movement,
// optionally inverted (for cancellation restock).
func applyMovementEffect(ctx context.Context, tx pgx.Tx, movement domain.StockMovement, effect domain.StockEffect, vaultID string, invert bool, userID string, now time.Time) error {
	sign := int64(1)
	if invert {
		sign = -1
	}
	for _, detail := range movement.Details {
		if err := applyStockDelta(ctx, tx, movement.LocationID, detail.DenominationID, sign*effect.TerminalDelta*detail.Quantity, userID, now); err != nil {
			return err
		}
		if effect.VaultDelta != 0 {
			if err := applyStockDelta(ctx, tx, vaultID, detail.DenominationID, sign*effect.VaultDelta*detail.Quantity, userID, now); err != nil {
				return err
			}
		}
	}
	return nil
}

// CreateMovement persists the movement with its detail lines and applies the
// stock deltas in one transaction. Either everything lands or nothing does.
func (r *PgxStockRepository) CreateMovement(ctx context.Context, movement domain.StockMovement, effect domain.StockEffect, vaultID string) error {
	modelMov := mapping.ToModelStockMovement(movement)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO stock_movements (movement_id, movement_type, location_id, currency_code, amount, status, transaction_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, query,
		modelMov.MovementID,
		modelMov.Type,
		modelMov.LocationID,
		modelMov.CurrencyCode,
		modelMov.Amount,
		modelMov.Status,
		modelMov.TransactionID,
		modelMov.CreatedAt,
		modelMov.CreatedBy,
		modelMov.LastUpdatedAt,
		modelMov.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // partial unique index on transaction_id
			return fmt.Errorf("transaction %v already has a movement: %w", movement.TransactionID, apperrors.ErrDuplicateMovement)
		}
		return fmt.Errorf("failed to save movement %s: %w", modelMov.MovementID, err)
	}

	batch := &pgx.Batch{}
	for _, detail := range movement.Details {
		batch.Queue(`
			INSERT INTO stock_movement_details (detail_id, movement_id, denomination_id, quantity)
			VALUES ($1, $2, $3, $4);
		`, detail.DetailID, detail.MovementID, detail.DenominationID, detail.Quantity)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to save movement details for %s: %w", modelMov.MovementID, err)
	}

	if err := applyMovementEffect(ctx, tx, movement, effect, vaultID, false, movement.CreatedBy, movement.CreatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func (r *PgxStockRepository) loadMovementDetails(ctx context.Context, movementID string) ([]domain.StockMovementDetail, error) {
	query := `
		SELECT detail_id, movement_id, denomination_id, quantity
		FROM stock_movement_details
		WHERE movement_id = $1
		ORDER BY detail_id;
	`
	rows, err := r.Pool.Query(ctx, query, movementID)
	if err != nil {
		return nil, fmt.Errorf("failed to query details for movement %s: %w", movementID, err)
	}
	defer rows.Close()

	modelDetails, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.StockMovementDetail, error) {
		var m models.StockMovementDetail
		err := row.Scan(&m.DetailID, &m.MovementID, &m.DenominationID, &m.Quantity)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect movement detail rows: %w", err)
	}

	return mapping.ToDomainMovementDetailSlice(modelDetails), nil
}

const movementColumns = `movement_id, movement_type, location_id, currency_code, amount, status, transaction_id, created_at, created_by, last_updated_at, last_updated_by`

func scanMovement(row pgx.Row) (models.StockMovement, error) {
	var m models.StockMovement
	err := row.Scan(
		&m.MovementID,
		&m.Type,
		&m.LocationID,
		&m.CurrencyCode,
		&m.Amount,
		&m.Status,
		&m.TransactionID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindMovementByID retrieves a movement with its detail lines.
func (r *PgxStockRepository) FindMovementByID(ctx context.Context, movementID string) (*domain.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE movement_id = $1;`

	modelMov, err := scanMovement(r.Pool.QueryRow(ctx, query, movementID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find movement %s: %w", movementID, err)
	}

	domainMov := mapping.ToDomainStockMovement(modelMov)
	domainMov.Details, err = r.loadMovementDetails(ctx, movementID)
	if err != nil {
		return nil, err
	}
	return &domainMov, nil
}

// FindActiveMovementByTransactionID retrieves the single non-cancelled
// movement linked to a transaction.
func (r *PgxStockRepository) FindActiveMovementByTransactionID(ctx context.Context, transactionID string) (*domain.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE transaction_id = $1 AND status <> 'CANCELLED';`

	modelMov, err := scanMovement(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find movement for transaction %s: %w", transactionID, err)
	}

	domainMov := mapping.ToDomainStockMovement(modelMov)
	domainMov.Details, err = r.loadMovementDetails(ctx, domainMov.MovementID)
	if err != nil {
		return nil, err
	}
	return &domainMov, nil
}

// ListMovementsByLocation retrieves a paginated list of movements at a
// location, newest first, without detail lines.
func (r *PgxStockRepository) ListMovementsByLocation(ctx context.Context, locationID string, limit int, offset int) ([]domain.StockMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM stock_movements
		WHERE location_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, locationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query movements at %s: %w", locationID, err)
	}
	defer rows.Close()

	modelMovs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.StockMovement, error) {
		return scanMovement(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect movement rows: %w", err)
	}

	return mapping.ToDomainStockMovementSlice(modelMovs), nil
}

// FinalizeMovement seals an in-progress movement. Stock was already applied
// at creation; this only closes the record.
func (r *PgxStockRepository) FinalizeMovement(ctx context.Context, movementID string, userID string, now time.Time) error {
	query := `
		UPDATE stock_movements
		SET status = 'FINALIZED', last_updated_at = $2, last_updated_by = $3
		WHERE movement_id = $1 AND status = 'IN_PROGRESS';
	`
	cmdTag, err := r.Pool.Exec(ctx, query, movementID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to finalize movement %s: %w", movementID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("movement %s is not in progress: %w", movementID, apperrors.ErrConflict)
	}
	return nil
}

// CancelMovement marks an in-progress movement cancelled and inverts its
// stock deltas in one transaction. The guarded status update makes concurrent
// cancels race-safe: exactly one caller restocks.
func (r *PgxStockRepository) CancelMovement(ctx context.Context, movement domain.StockMovement, effect domain.StockEffect, vaultID string, userID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	cmdTag, err := tx.Exec(ctx, `
		UPDATE stock_movements
		SET status = 'CANCELLED', last_updated_at = $2, last_updated_by = $3
		WHERE movement_id = $1 AND status = 'IN_PROGRESS';
	`, movement.MovementID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to cancel movement %s: %w", movement.MovementID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("movement %s is not in progress: %w", movement.MovementID, apperrors.ErrConflict)
	}

	if err := applyMovementEffect(ctx, tx, movement, effect, vaultID, true, userID, now); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}
