package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cambiosys/currency_exchange_app/internal/apperrors"
	"github.com/cambiosys/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/cambiosys/currency_exchange_app/internal/core/ports/repositories"
	"github.com/cambiosys/currency_exchange_app/internal/models"
	"github.com/cambiosys/currency_exchange_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProfitRepository struct {
	BaseRepository
}

// newPgxProfitRepository creates a new repository for profit entries.
func newPgxProfitRepository(pool *pgxpool.Pool) portsrepo.ProfitRepositoryWithTx {
	return &PgxProfitRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ProfitRepositoryWithTx = (*PgxProfitRepository)(nil)

const profitColumns = `profit_id, transaction_id, net_profit, market_rate, applied_rate, foreign_amount, currency_code, method_id, year, month, created_at, created_by, last_updated_at, last_updated_by`

func scanProfit(row pgx.Row) (models.Profit, error) {
	var m models.Profit
	err := row.Scan(
		&m.ProfitID,
		&m.TransactionID,
		&m.NetProfit,
		&m.MarketRate,
		&m.AppliedRate,
		&m.ForeignAmount,
		&m.CurrencyCode,
		&m.MethodID,
		&m.Year,
		&m.Month,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveProfit inserts a profit entry. The unique index on transaction_id keeps
// the one-entry-per-transaction invariant at the database level.
func (r *PgxProfitRepository) SaveProfit(ctx context.Context, profit domain.Profit) error {
	modelProfit := mapping.ToModelProfit(profit)

	query := `
		INSERT INTO profits (profit_id, transaction_id, net_profit, market_rate, applied_rate, foreign_amount, currency_code, method_id, year, month, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelProfit.ProfitID,
		modelProfit.TransactionID,
		modelProfit.NetProfit,
		modelProfit.MarketRate,
		modelProfit.AppliedRate,
		modelProfit.ForeignAmount,
		modelProfit.CurrencyCode,
		modelProfit.MethodID,
		modelProfit.Year,
		modelProfit.Month,
		modelProfit.CreatedAt,
		modelProfit.CreatedBy,
		modelProfit.LastUpdatedAt,
		modelProfit.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("profit for transaction %s already recorded: %w", modelProfit.TransactionID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save profit %s: %w", modelProfit.ProfitID, err)
	}
	return nil
}

// FindProfitByTransactionID retrieves the profit entry of a transaction.
func (r *PgxProfitRepository) FindProfitByTransactionID(ctx context.Context, transactionID string) (*domain.Profit, error) {
	query := `SELECT ` + profitColumns + ` FROM profits WHERE transaction_id = $1;`

	modelProfit, err := scanProfit(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find profit for transaction %s: %w", transactionID, err)
	}

	domainProfit := mapping.ToDomainProfit(modelProfit)
	return &domainProfit, nil
}

// ListProfitsByPeriod retrieves the profit entries of one calendar month.
func (r *PgxProfitRepository) ListProfitsByPeriod(ctx context.Context, year int, month int) ([]domain.Profit, error) {
	query := `SELECT ` + profitColumns + ` FROM profits WHERE year = $1 AND month = $2 ORDER BY created_at;`

	rows, err := r.Pool.Query(ctx, query, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to query profits for %d-%02d: %w", year, month, err)
	}
	defer rows.Close()

	modelProfits, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Profit, error) {
		return scanProfit(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect profit rows: %w", err)
	}

	return mapping.ToDomainProfitSlice(modelProfits), nil
}
