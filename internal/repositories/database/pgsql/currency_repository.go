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

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency and
// denomination data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryWithTx {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryWithTx = (*PgxCurrencyRepository)(nil)

const currencyColumns = `currency_code, name, symbol, precision, is_base, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanCurrency(row pgx.Row) (models.Currency, error) {
	var c models.Currency
	err := row.Scan(
		&c.CurrencyCode,
		&c.Name,
		&c.Symbol,
		&c.Precision,
		&c.IsBase,
		&c.IsActive,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	return c, err
}

// SaveCurrency inserts a new currency.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	modelCurr := mapping.ToModelCurrency(currency)

	query := `
		INSERT INTO currencies (currency_code, name, symbol, precision, is_base, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelCurr.CurrencyCode,
		modelCurr.Name,
		modelCurr.Symbol,
		modelCurr.Precision,
		modelCurr.IsBase,
		modelCurr.IsActive,
		modelCurr.CreatedAt,
		modelCurr.CreatedBy,
		modelCurr.LastUpdatedAt,
		modelCurr.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("currency %s already exists: %w", modelCurr.CurrencyCode, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save currency %s: %w", modelCurr.CurrencyCode, err)
	}
	return nil
}

// FindCurrencyByCode retrieves a currency by its code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE currency_code = $1;`

	modelCurr, err := scanCurrency(r.Pool.QueryRow(ctx, query, currencyCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency by code %s: %w", currencyCode, err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// FindBaseCurrency retrieves the single currency flagged as base.
func (r *PgxCurrencyRepository) FindBaseCurrency(ctx context.Context) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE is_base;`

	modelCurr, err := scanCurrency(r.Pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find base currency: %w", err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// ListCurrencies retrieves all currencies.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies ORDER BY currency_code;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	modelCurrencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		return scanCurrency(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect currency rows: %w", err)
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}

// UpdateCurrency updates a currency's mutable details.
func (r *PgxCurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.Currency) error {
	modelCurr := mapping.ToModelCurrency(currency)

	query := `
		UPDATE currencies
		SET name = $2, symbol = $3, precision = $4, is_active = $5, last_updated_at = $6, last_updated_by = $7
		WHERE currency_code = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelCurr.CurrencyCode,
		modelCurr.Name,
		modelCurr.Symbol,
		modelCurr.Precision,
		modelCurr.IsActive,
		modelCurr.LastUpdatedAt,
		modelCurr.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update currency %s: %w", modelCurr.CurrencyCode, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SetBaseCurrency flips the base flag onto currencyCode. Both updates run in
// one transaction so the partial unique index on is_base never sees two rows.
func (r *PgxCurrencyRepository) SetBaseCurrency(ctx context.Context, currencyCode string, userID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	_, err = tx.Exec(ctx, `
		UPDATE currencies SET is_base = FALSE, last_updated_at = $1, last_updated_by = $2 WHERE is_base;
	`, now, userID)
	if err != nil {
		return fmt.Errorf("failed to clear base currency flag: %w", err)
	}

	cmdTag, err := tx.Exec(ctx, `
		UPDATE currencies SET is_base = TRUE, last_updated_at = $2, last_updated_by = $3 WHERE currency_code = $1;
	`, currencyCode, now, userID)
	if err != nil {
		return fmt.Errorf("failed to set base currency %s: %w", currencyCode, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// DeactivateCurrency marks a currency as inactive.
func (r *PgxCurrencyRepository) DeactivateCurrency(ctx context.Context, currencyCode string, userID string, now time.Time) error {
	query := `
		UPDATE currencies SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE currency_code = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, currencyCode, now, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate currency %s: %w", currencyCode, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

const denominationColumns = `denomination_id, currency_code, value, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanDenomination(row pgx.Row) (models.Denomination, error) {
	var d models.Denomination
	err := row.Scan(
		&d.DenominationID,
		&d.CurrencyCode,
		&d.Value,
		&d.IsActive,
		&d.CreatedAt,
		&d.CreatedBy,
		&d.LastUpdatedAt,
		&d.LastUpdatedBy,
	)
	return d, err
}

// SaveDenomination inserts a new denomination.
func (r *PgxCurrencyRepository) SaveDenomination(ctx context.Context, denomination domain.Denomination) error {
	modelDen := mapping.ToModelDenomination(denomination)

	query := `
		INSERT INTO denominations (denomination_id, currency_code, value, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelDen.DenominationID,
		modelDen.CurrencyCode,
		modelDen.Value,
		modelDen.IsActive,
		modelDen.CreatedAt,
		modelDen.CreatedBy,
		modelDen.LastUpdatedAt,
		modelDen.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("denomination %d for %s already exists: %w", modelDen.Value, modelDen.CurrencyCode, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save denomination: %w", err)
	}
	return nil
}

// FindDenominationByID retrieves a denomination by its identifier.
func (r *PgxCurrencyRepository) FindDenominationByID(ctx context.Context, denominationID string) (*domain.Denomination, error) {
	query := `SELECT ` + denominationColumns + ` FROM denominations WHERE denomination_id = $1;`

	modelDen, err := scanDenomination(r.Pool.QueryRow(ctx, query, denominationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find denomination %s: %w", denominationID, err)
	}

	domainDen := mapping.ToDomainDenomination(modelDen)
	return &domainDen, nil
}

// ListDenominationsByCurrency retrieves a currency's denominations, largest first.
func (r *PgxCurrencyRepository) ListDenominationsByCurrency(ctx context.Context, currencyCode string, activeOnly bool) ([]domain.Denomination, error) {
	query := `SELECT ` + denominationColumns + ` FROM denominations WHERE currency_code = $1`
	if activeOnly {
		query += ` AND is_active`
	}
	query += ` ORDER BY value DESC;`

	rows, err := r.Pool.Query(ctx, query, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to query denominations for %s: %w", currencyCode, err)
	}
	defer rows.Close()

	modelDens, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Denomination, error) {
		return scanDenomination(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect denomination rows: %w", err)
	}

	return mapping.ToDomainDenominationSlice(modelDens), nil
}

// DeactivateDenomination marks a denomination as inactive.
func (r *PgxCurrencyRepository) DeactivateDenomination(ctx context.Context, denominationID string, userID string, now time.Time) error {
	query := `
		UPDATE denominations SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE denomination_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, denominationID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate denomination %s: %w", denominationID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
