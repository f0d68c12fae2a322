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
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for exchange
// transactions.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, client_id, house_side, source_currency_code, dest_currency_code, source_amount, dest_amount, market_rate, applied_rate, method_detail_id, status, terminal_id, created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.ClientID,
		&m.HouseSide,
		&m.SourceCurrencyCode,
		&m.DestCurrencyCode,
		&m.SourceAmount,
		&m.DestAmount,
		&m.MarketRate,
		&m.AppliedRate,
		&m.MethodDetailID,
		&m.Status,
		&m.TerminalID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveTransaction inserts a new transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	modelTxn := mapping.ToModelTransaction(txn)

	query := `
		INSERT INTO transactions (transaction_id, client_id, house_side, source_currency_code, dest_currency_code, source_amount, dest_amount, market_rate, applied_rate, method_detail_id, status, terminal_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelTxn.TransactionID,
		modelTxn.ClientID,
		modelTxn.HouseSide,
		modelTxn.SourceCurrencyCode,
		modelTxn.DestCurrencyCode,
		modelTxn.SourceAmount,
		modelTxn.DestAmount,
		modelTxn.MarketRate,
		modelTxn.AppliedRate,
		modelTxn.MethodDetailID,
		modelTxn.Status,
		modelTxn.TerminalID,
		modelTxn.CreatedAt,
		modelTxn.CreatedBy,
		modelTxn.LastUpdatedAt,
		modelTxn.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", modelTxn.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves a transaction by its identifier.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	modelTxn, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	domainTxn := mapping.ToDomainTransaction(modelTxn)
	return &domainTxn, nil
}

// ListTransactions retrieves a paginated list of transactions, newest first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, limit int, offset int) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY created_at DESC LIMIT $1 OFFSET $2;`

	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	modelTxns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		return scanTransaction(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect transaction rows: %w", err)
	}

	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

// ListTransactionsByClient retrieves a paginated list of one client's
// transactions, newest first.
func (r *PgxTransactionRepository) ListTransactionsByClient(ctx context.Context, clientID string, limit int, offset int) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE client_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3;`

	rows, err := r.Pool.Query(ctx, query, clientID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for client %s: %w", clientID, err)
	}
	defer rows.Close()

	modelTxns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		return scanTransaction(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect transaction rows: %w", err)
	}

	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

// UpdateTransactionStatus moves a transaction between lifecycle states. The
// WHERE clause carries the expected current status, so a transition raced by
// another writer affects zero rows and surfaces as ErrConflict.
func (r *PgxTransactionRepository) UpdateTransactionStatus(ctx context.Context, transactionID string, from domain.TransactionStatus, to domain.TransactionStatus, userID string, now time.Time) error {
	query := `
		UPDATE transactions
		SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE transaction_id = $1 AND status = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, transactionID, string(from), string(to), now, userID)
	if err != nil {
		return fmt.Errorf("failed to update status of transaction %s: %w", transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("transaction %s is not %s: %w", transactionID, from, apperrors.ErrConflict)
	}
	return nil
}
