package repositories

import (
	"context"
	"time"

	"github.com/cambiosys/currency_exchange_app/internal/core/domain"
)

// ClientCategoryReader defines read operations for client category data
type ClientCategoryReader interface {
	// FindCategoryByID retrieves a client category by its identifier.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.ClientCategory, error)

	// ListCategories retrieves all client categories.
	ListCategories(ctx context.Context) ([]domain.ClientCategory, error)
}

// ClientCategoryWriter defines write operations for client category data
type ClientCategoryWriter interface {
	// SaveCategory persists a new client category.
	SaveCategory(ctx context.Context, category domain.ClientCategory) error

	// UpdateCategory updates an existing category's details.
	UpdateCategory(ctx context.Context, category domain.ClientCategory) error

	// DeactivateCategory marks a category as inactive.
	DeactivateCategory(ctx context.Context, categoryID string, userID string, now time.Time) error
}

// ClientReader defines read operations for client data
type ClientReader interface {
	// FindClientByID retrieves a client by its identifier.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClients retrieves a paginated list of clients.
	ListClients(ctx context.Context, limit int, offset int) ([]domain.Client, error)
}

// ClientWriter defines write operations for client data
type ClientWriter interface {
	// SaveClient persists a new client.
	SaveClient(ctx context.Context, client domain.Client) error

	// UpdateClient updates an existing client's details.
	UpdateClient(ctx context.Context, client domain.Client) error

	// DeactivateClient marks a client as inactive.
	DeactivateClient(ctx context.Context, clientID string, userID string, now time.Time) error
}

// ClientRepositoryFacade combines all client-related repository interfaces
// This is a facade for clients that need access to all operations
type ClientRepositoryFacade interface {
	ClientCategoryReader
	ClientCategoryWriter
	ClientReader
	ClientWriter
}

// ClientRepositoryWithTx extends ClientRepositoryFacade with transaction capabilities
type ClientRepositoryWithTx interface {
	ClientRepositoryFacade
	TransactionManager
}
