package services

import (
	"context"

	"github.com/cambiosys/currency_exchange_app/internal/core/domain"
	"github.com/cambiosys/currency_exchange_app/internal/dto"
	"github.com/shopspring/decimal"
)

// ClientReaderSvc defines read operations for clients and their categories
type ClientReaderSvc interface {
	// GetClientByID retrieves a client by its identifier.
	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClients retrieves a paginated list of clients.
	ListClients(ctx context.Context, limit int, offset int) ([]domain.Client, error)

	// ListCategories retrieves all client categories.
	ListCategories(ctx context.Context) ([]domain.ClientCategory, error)

	// ResolveDiscount returns the commission discount percentage a client is
	// entitled to. Unknown or inactive clients cannot transact; an inactive
	// category contributes no discount.
	ResolveDiscount(ctx context.Context, clientID string) (decimal.Decimal, error)
}

// ClientWriterSvc defines write operations for clients and their categories
type ClientWriterSvc interface {
	// CreateCategory persists a new client category.
	CreateCategory(ctx context.Context, req dto.CreateClientCategoryRequest, creatorUserID string) (*domain.ClientCategory, error)

	// DeactivateCategory marks a category as inactive.
	DeactivateCategory(ctx context.Context, categoryID string, userID string) error

	// CreateClient persists a new client.
	CreateClient(ctx context.Context, req dto.CreateClientRequest, creatorUserID string) (*domain.Client, error)

	// DeactivateClient marks a client as inactive.
	DeactivateClient(ctx context.Context, clientID string, userID string) error
}

// ClientSvcFacade combines all client-related service interfaces
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
}
