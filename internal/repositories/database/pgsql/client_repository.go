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

type PgxClientRepository struct {
	BaseRepository
}

// newPgxClientRepository creates a new repository for clients and their
// discount categories.
func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepositoryWithTx {
	return &PgxClientRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ClientRepositoryWithTx = (*PgxClientRepository)(nil)

const categoryColumns = `category_id, name, discount_pct, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanCategory(row pgx.Row) (models.ClientCategory, error) {
	var m models.ClientCategory
	err := row.Scan(
		&m.CategoryID,
		&m.Name,
		&m.DiscountPct,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveCategory inserts a new client category.
func (r *PgxClientRepository) SaveCategory(ctx context.Context, category domain.ClientCategory) error {
	modelCat := mapping.ToModelClientCategory(category)

	query := `
		INSERT INTO client_categories (category_id, name, discount_pct, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelCat.CategoryID,
		modelCat.Name,
		modelCat.DiscountPct,
		modelCat.IsActive,
		modelCat.CreatedAt,
		modelCat.CreatedBy,
		modelCat.LastUpdatedAt,
		modelCat.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save client category %s: %w", modelCat.CategoryID, err)
	}
	return nil
}

// FindCategoryByID retrieves a client category by its identifier.
func (r *PgxClientRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.ClientCategory, error) {
	query := `SELECT ` + categoryColumns + ` FROM client_categories WHERE category_id = $1;`

	modelCat, err := scanCategory(r.Pool.QueryRow(ctx, query, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client category %s: %w", categoryID, err)
	}

	domainCat := mapping.ToDomainClientCategory(modelCat)
	return &domainCat, nil
}

// ListCategories retrieves all client categories.
func (r *PgxClientRepository) ListCategories(ctx context.Context) ([]domain.ClientCategory, error) {
	query := `SELECT ` + categoryColumns + ` FROM client_categories ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query client categories: %w", err)
	}
	defer rows.Close()

	modelCats, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ClientCategory, error) {
		return scanCategory(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect category rows: %w", err)
	}

	return mapping.ToDomainClientCategorySlice(modelCats), nil
}

// UpdateCategory updates a category's mutable details.
func (r *PgxClientRepository) UpdateCategory(ctx context.Context, category domain.ClientCategory) error {
	modelCat := mapping.ToModelClientCategory(category)

	query := `
		UPDATE client_categories
		SET name = $2, discount_pct = $3, is_active = $4, last_updated_at = $5, last_updated_by = $6
		WHERE category_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelCat.CategoryID,
		modelCat.Name,
		modelCat.DiscountPct,
		modelCat.IsActive,
		modelCat.LastUpdatedAt,
		modelCat.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update client category %s: %w", modelCat.CategoryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateCategory marks a category as inactive.
func (r *PgxClientRepository) DeactivateCategory(ctx context.Context, categoryID string, userID string, now time.Time) error {
	query := `
		UPDATE client_categories SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE category_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, categoryID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate client category %s: %w", categoryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

const clientColumns = `client_id, name, category_id, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanClient(row pgx.Row) (models.Client, error) {
	var m models.Client
	err := row.Scan(
		&m.ClientID,
		&m.Name,
		&m.CategoryID,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveClient inserts a new client.
func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	modelClient := mapping.ToModelClient(client)

	query := `
		INSERT INTO clients (client_id, name, category_id, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelClient.ClientID,
		modelClient.Name,
		modelClient.CategoryID,
		modelClient.IsActive,
		modelClient.CreatedAt,
		modelClient.CreatedBy,
		modelClient.LastUpdatedAt,
		modelClient.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save client %s: %w", modelClient.ClientID, err)
	}
	return nil
}

// FindClientByID retrieves a client by its identifier.
func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE client_id = $1;`

	modelClient, err := scanClient(r.Pool.QueryRow(ctx, query, clientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client %s: %w", clientID, err)
	}

	domainClient := mapping.ToDomainClient(modelClient)
	return &domainClient, nil
}

// ListClients retrieves a paginated list of clients.
func (r *PgxClientRepository) ListClients(ctx context.Context, limit int, offset int) ([]domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY name LIMIT $1 OFFSET $2;`

	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	modelClients, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Client, error) {
		return scanClient(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect client rows: %w", err)
	}

	return mapping.ToDomainClientSlice(modelClients), nil
}

// UpdateClient updates a client's mutable details.
func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	modelClient := mapping.ToModelClient(client)

	query := `
		UPDATE clients
		SET name = $2, category_id = $3, is_active = $4, last_updated_at = $5, last_updated_by = $6
		WHERE client_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelClient.ClientID,
		modelClient.Name,
		modelClient.CategoryID,
		modelClient.IsActive,
		modelClient.LastUpdatedAt,
		modelClient.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update client %s: %w", modelClient.ClientID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateClient marks a client as inactive.
func (r *PgxClientRepository) DeactivateClient(ctx context.Context, clientID string, userID string, now time.Time) error {
	query := `
		UPDATE clients SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE client_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, clientID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate client %s: %w", clientID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
