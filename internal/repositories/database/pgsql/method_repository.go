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

type PgxMethodRepository struct {
	BaseRepository
}

// newPgxMethodRepository creates a new repository for financial methods and
// their details.
func newPgxMethodRepository(pool *pgxpool.Pool) portsrepo.MethodRepositoryWithTx {
	return &PgxMethodRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.MethodRepositoryWithTx = (*PgxMethodRepository)(nil)

const methodColumns = `method_id, name, kind, commission_pct, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanMethod(row pgx.Row) (models.FinancialMethod, error) {
	var m models.FinancialMethod
	err := row.Scan(
		&m.MethodID,
		&m.Name,
		&m.Kind,
		&m.CommissionPct,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

const methodDetailColumns = `detail_id, method_id, owner_name, handle, commission_pct, is_active, deactivated_by_cascade, created_at, created_by, last_updated_at, last_updated_by`

func scanMethodDetail(row pgx.Row) (models.FinancialMethodDetail, error) {
	var m models.FinancialMethodDetail
	err := row.Scan(
		&m.DetailID,
		&m.MethodID,
		&m.OwnerName,
		&m.Handle,
		&m.CommissionPct,
		&m.IsActive,
		&m.DeactivatedByCascade,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveMethod inserts a new financial method.
func (r *PgxMethodRepository) SaveMethod(ctx context.Context, method domain.FinancialMethod) error {
	modelMethod := mapping.ToModelFinancialMethod(method)

	query := `
		INSERT INTO financial_methods (method_id, name, kind, commission_pct, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelMethod.MethodID,
		modelMethod.Name,
		modelMethod.Kind,
		modelMethod.CommissionPct,
		modelMethod.IsActive,
		modelMethod.CreatedAt,
		modelMethod.CreatedBy,
		modelMethod.LastUpdatedAt,
		modelMethod.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save financial method %s: %w", modelMethod.MethodID, err)
	}
	return nil
}

// FindMethodByID retrieves a financial method by its identifier.
func (r *PgxMethodRepository) FindMethodByID(ctx context.Context, methodID string) (*domain.FinancialMethod, error) {
	query := `SELECT ` + methodColumns + ` FROM financial_methods WHERE method_id = $1;`

	modelMethod, err := scanMethod(r.Pool.QueryRow(ctx, query, methodID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find financial method %s: %w", methodID, err)
	}

	domainMethod := mapping.ToDomainFinancialMethod(modelMethod)
	return &domainMethod, nil
}

// ListMethods retrieves all financial methods.
func (r *PgxMethodRepository) ListMethods(ctx context.Context) ([]domain.FinancialMethod, error) {
	query := `SELECT ` + methodColumns + ` FROM financial_methods ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query financial methods: %w", err)
	}
	defer rows.Close()

	modelMethods, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.FinancialMethod, error) {
		return scanMethod(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect method rows: %w", err)
	}

	return mapping.ToDomainFinancialMethodSlice(modelMethods), nil
}

// SaveMethodDetail inserts a new method detail.
func (r *PgxMethodRepository) SaveMethodDetail(ctx context.Context, detail domain.FinancialMethodDetail) error {
	modelDetail := mapping.ToModelFinancialMethodDetail(detail)

	query := `
		INSERT INTO financial_method_details (detail_id, method_id, owner_name, handle, commission_pct, is_active, deactivated_by_cascade, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelDetail.DetailID,
		modelDetail.MethodID,
		modelDetail.OwnerName,
		modelDetail.Handle,
		modelDetail.CommissionPct,
		modelDetail.IsActive,
		modelDetail.DeactivatedByCascade,
		modelDetail.CreatedAt,
		modelDetail.CreatedBy,
		modelDetail.LastUpdatedAt,
		modelDetail.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save method detail %s: %w", modelDetail.DetailID, err)
	}
	return nil
}

// FindMethodDetailByID retrieves a method detail by its identifier.
func (r *PgxMethodRepository) FindMethodDetailByID(ctx context.Context, detailID string) (*domain.FinancialMethodDetail, error) {
	query := `SELECT ` + methodDetailColumns + ` FROM financial_method_details WHERE detail_id = $1;`

	modelDetail, err := scanMethodDetail(r.Pool.QueryRow(ctx, query, detailID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find method detail %s: %w", detailID, err)
	}

	domainDetail := mapping.ToDomainFinancialMethodDetail(modelDetail)
	return &domainDetail, nil
}

// ListDetailsByMethod retrieves the details of a method.
func (r *PgxMethodRepository) ListDetailsByMethod(ctx context.Context, methodID string) ([]domain.FinancialMethodDetail, error) {
	query := `SELECT ` + methodDetailColumns + ` FROM financial_method_details WHERE method_id = $1 ORDER BY owner_name;`

	rows, err := r.Pool.Query(ctx, query, methodID)
	if err != nil {
		return nil, fmt.Errorf("failed to query details for method %s: %w", methodID, err)
	}
	defer rows.Close()

	modelDetails, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.FinancialMethodDetail, error) {
		return scanMethodDetail(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect method detail rows: %w", err)
	}

	return mapping.ToDomainFinancialMethodDetailSlice(modelDetails), nil
}

// DeactivateMethodCascading marks a method inactive and takes its active
// details down with it, flagging each so a later reactivation can tell them
// apart from directly deactivated ones.
func (r *PgxMethodRepository) DeactivateMethodCascading(ctx context.Context, methodID string, userID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	cmdTag, err := tx.Exec(ctx, `
		UPDATE financial_methods SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE method_id = $1;
	`, methodID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate method %s: %w", methodID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	_, err = tx.Exec(ctx, `
		UPDATE financial_method_details
		SET is_active = FALSE, deactivated_by_cascade = TRUE, last_updated_at = $2, last_updated_by = $3
		WHERE method_id = $1 AND is_active;
	`, methodID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to cascade deactivation for method %s: %w", methodID, err)
	}

	return r.Commit(ctx, tx)
}

// ReactivateMethodCascading marks a method active again and restores only the
// details the cascade took down. Directly deactivated details stay off.
func (r *PgxMethodRepository) ReactivateMethodCascading(ctx context.Context, methodID string, userID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	cmdTag, err := tx.Exec(ctx, `
		UPDATE financial_methods SET is_active = TRUE, last_updated_at = $2, last_updated_by = $3
		WHERE method_id = $1;
	`, methodID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to reactivate method %s: %w", methodID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	_, err = tx.Exec(ctx, `
		UPDATE financial_method_details
		SET is_active = TRUE, deactivated_by_cascade = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE method_id = $1 AND deactivated_by_cascade;
	`, methodID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to cascade reactivation for method %s: %w", methodID, err)
	}

	return r.Commit(ctx, tx)
}

// DeactivateMethodDetail marks a single detail inactive without the cascade flag.
func (r *PgxMethodRepository) DeactivateMethodDetail(ctx context.Context, detailID string, userID string, now time.Time) error {
	query := `
		UPDATE financial_method_details
		SET is_active = FALSE, deactivated_by_cascade = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE detail_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, detailID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate method detail %s: %w", detailID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
