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

type PgxRateRepository struct {
	BaseRepository
}

// newPgxRateRepository creates a new repository for rate configuration data.
func newPgxRateRepository(pool *pgxpool.Pool) portsrepo.RateRepositoryWithTx {
	return &PgxRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.RateRepositoryWithTx = (*PgxRateRepository)(nil)

const rateColumns = `rate_id, currency_code, base_price, commission_buy, commission_sell, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanRate(row pgx.Row) (models.Rate, error) {
	var m models.Rate
	err := row.Scan(
		&m.RateID,
		&m.CurrencyCode,
		&m.BasePrice,
		&m.CommissionBuy,
		&m.CommissionSell,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func insertRateHistory(ctx context.Context, tx pgx.Tx, history domain.RateHistory) error {
	modelHist := mapping.ToModelRateHistory(history)

	query := `
		INSERT INTO rate_history (rate_history_id, rate_id, currency_code, base_price, commission_buy, commission_sell, buy_rate, sell_rate, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := tx.Exec(ctx, query,
		modelHist.RateHistoryID,
		modelHist.RateID,
		modelHist.CurrencyCode,
		modelHist.BasePrice,
		modelHist.CommissionBuy,
		modelHist.CommissionSell,
		modelHist.BuyRate,
		modelHist.SellRate,
		modelHist.CreatedAt,
		modelHist.CreatedBy,
		modelHist.LastUpdatedAt,
		modelHist.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert rate history for rate %s: %w", modelHist.RateID, err)
	}
	return nil
}

// SaveRateWithHistory inserts a new rate configuration together with its
// first history snapshot. The partial unique index on active rates rejects a
// second active configuration for the same currency.
func (r *PgxRateRepository) SaveRateWithHistory(ctx context.Context, rate domain.Rate, history domain.RateHistory) error {
	modelRate := mapping.ToModelRate(rate)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO rates (rate_id, currency_code, base_price, commission_buy, commission_sell, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, query,
		modelRate.RateID,
		modelRate.CurrencyCode,
		modelRate.BasePrice,
		modelRate.CommissionBuy,
		modelRate.CommissionSell,
		modelRate.IsActive,
		modelRate.CreatedAt,
		modelRate.CreatedBy,
		modelRate.LastUpdatedAt,
		modelRate.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("active rate for %s already exists: %w", modelRate.CurrencyCode, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save rate for %s: %w", modelRate.CurrencyCode, err)
	}

	if err := insertRateHistory(ctx, tx, history); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// FindRateByID retrieves a rate configuration by its identifier.
func (r *PgxRateRepository) FindRateByID(ctx context.Context, rateID string) (*domain.Rate, error) {
	query := `SELECT ` + rateColumns + ` FROM rates WHERE rate_id = $1;`

	modelRate, err := scanRate(r.Pool.QueryRow(ctx, query, rateID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find rate %s: %w", rateID, err)
	}

	domainRate := mapping.ToDomainRate(modelRate)
	return &domainRate, nil
}

// FindActiveRateByCurrency retrieves the active rate configuration of a currency.
func (r *PgxRateRepository) FindActiveRateByCurrency(ctx context.Context, currencyCode string) (*domain.Rate, error) {
	query := `SELECT ` + rateColumns + ` FROM rates WHERE currency_code = $1 AND is_active;`

	modelRate, err := scanRate(r.Pool.QueryRow(ctx, query, currencyCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("no active rate for %s: %w", currencyCode, apperrors.ErrRateNotFound)
		}
		return nil, fmt.Errorf("failed to find active rate for %s: %w", currencyCode, err)
	}

	domainRate := mapping.ToDomainRate(modelRate)
	return &domainRate, nil
}

// ListActiveRates retrieves the active rate configuration of every currency.
func (r *PgxRateRepository) ListActiveRates(ctx context.Context) ([]domain.Rate, error) {
	query := `SELECT ` + rateColumns + ` FROM rates WHERE is_active ORDER BY currency_code;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query active rates: %w", err)
	}
	defer rows.Close()

	modelRates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Rate, error) {
		return scanRate(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect rate rows: %w", err)
	}

	return mapping.ToDomainRateSlice(modelRates), nil
}

// ListRateHistory retrieves the newest history snapshots of a currency.
func (r *PgxRateRepository) ListRateHistory(ctx context.Context, currencyCode string, limit int) ([]domain.RateHistory, error) {
	query := `
		SELECT rate_history_id, rate_id, currency_code, base_price, commission_buy, commission_sell, buy_rate, sell_rate, created_at, created_by, last_updated_at, last_updated_by
		FROM rate_history
		WHERE currency_code = $1
		ORDER BY created_at DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, currencyCode, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query rate history for %s: %w", currencyCode, err)
	}
	defer rows.Close()

	modelHist, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.RateHistory, error) {
		var m models.RateHistory
		err := row.Scan(
			&m.RateHistoryID,
			&m.RateID,
			&m.CurrencyCode,
			&m.BasePrice,
			&m.CommissionBuy,
			&m.CommissionSell,
			&m.BuyRate,
			&m.SellRate,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect rate history rows: %w", err)
	}

	return mapping.ToDomainRateHistorySlice(modelHist), nil
}

// UpdateRateWithHistory locks the rate row, applies the mutation and appends
// the history snapshot in the same transaction. Concurrent updates serialize
// on the row lock, so each snapshot reflects exactly one mutation.
func (r *PgxRateRepository) UpdateRateWithHistory(ctx context.Context, rate domain.Rate, history domain.RateHistory) error {
	modelRate := mapping.ToModelRate(rate)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var lockedID string
	err = tx.QueryRow(ctx, `SELECT rate_id FROM rates WHERE rate_id = $1 FOR UPDATE;`, modelRate.RateID).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to lock rate %s: %w", modelRate.RateID, err)
	}

	query := `
		UPDATE rates
		SET base_price = $2, commission_buy = $3, commission_sell = $4, last_updated_at = $5, last_updated_by = $6
		WHERE rate_id = $1;
	`
	_, err = tx.Exec(ctx, query,
		modelRate.RateID,
		modelRate.BasePrice,
		modelRate.CommissionBuy,
		modelRate.CommissionSell,
		modelRate.LastUpdatedAt,
		modelRate.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update rate %s: %w", modelRate.RateID, err)
	}

	if err := insertRateHistory(ctx, tx, history); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// DeactivateRate marks a rate configuration as inactive.
func (r *PgxRateRepository) DeactivateRate(ctx context.Context, rateID string, userID string, now time.Time) error {
	query := `
		UPDATE rates SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE rate_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, rateID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate rate %s: %w", rateID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
