package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cambiosys/currency_exchange_app/internal/apperrors"
	"github.com/cambiosys/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/cambiosys/currency_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/cambiosys/currency_exchange_app/internal/core/ports/services"
	"github.com/cambiosys/currency_exchange_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// clientService provides business logic for clients and discount categories.
type clientService struct {
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates a new client service.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade) portssvc.ClientSvcFacade {
	return &clientService{clientRepo: clientRepo}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

func validatePct(pct decimal.Decimal) error {
	if pct.IsNegative() || pct.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("%w: percentage must be between 0 and 100", apperrors.ErrValidation)
	}
	return nil
}

// CreateCategory persists a new client category.
func (s *clientService) CreateCategory(ctx context.Context, req dto.CreateClientCategoryRequest, creatorUserID string) (*domain.ClientCategory, error) {
	if err := validatePct(req.DiscountPct); err != nil {
		return nil, err
	}

	now := time.Now()
	category := domain.ClientCategory{
		CategoryID:  uuid.NewString(),
		Name:        req.Name,
		DiscountPct: req.DiscountPct,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.clientRepo.SaveCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create client category: %w", err)
	}
	return &category, nil
}

// ListCategories retrieves all client categories.
func (s *clientService) ListCategories(ctx context.Context) ([]domain.ClientCategory, error) {
	categories, err := s.clientRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list client categories: %w", err)
	}
	if categories == nil {
		return []domain.ClientCategory{}, nil
	}
	return categories, nil
}

// DeactivateCategory marks a category as inactive. Clients keep the
// reference; their discount drops to zero until the category returns.
func (s *clientService) DeactivateCategory(ctx context.Context, categoryID string, userID string) error {
	if err := s.clientRepo.DeactivateCategory(ctx, categoryID, userID, time.Now()); err != nil {
		return fmt.Errorf("failed to deactivate category %s: %w", categoryID, err)
	}
	return nil
}

// CreateClient persists a new client under an active category.
func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest, creatorUserID string) (*domain.Client, error) {
	category, err := s.clientRepo.FindCategoryByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: category %s not found", apperrors.ErrValidation, req.CategoryID)
		}
		return nil, fmt.Errorf("failed to validate category %s: %w", req.CategoryID, err)
	}
	if !category.IsActive {
		return nil, fmt.Errorf("%w: category %s is inactive", apperrors.ErrValidation, req.CategoryID)
	}

	now := time.Now()
	client := domain.Client{
		ClientID:   uuid.NewString(),
		Name:       req.Name,
		CategoryID: req.CategoryID,
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return &client, nil
}

// GetClientByID retrieves a client by its identifier.
func (s *clientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get client %s: %w", clientID, err)
	}
	return client, nil
}

// ListClients retrieves a paginated list of clients.
func (s *clientService) ListClients(ctx context.Context, limit int, offset int) ([]domain.Client, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	clients, err := s.clientRepo.ListClients(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	if clients == nil {
		return []domain.Client{}, nil
	}
	return clients, nil
}

// DeactivateClient marks a client as inactive.
func (s *clientService) DeactivateClient(ctx context.Context, clientID string, userID string) error {
	if err := s.clientRepo.DeactivateClient(ctx, clientID, userID, time.Now()); err != nil {
		return fmt.Errorf("failed to deactivate client %s: %w", clientID, err)
	}
	return nil
}

// ResolveDiscount returns the commission discount a client is entitled to.
// Inactive clients cannot transact. An inactive category simply stops
// granting its discount instead of blocking the client.
func (s *clientService) ResolveDiscount(ctx context.Context, clientID string) (decimal.Decimal, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, fmt.Errorf("%w: client %s not found", apperrors.ErrValidation, clientID)
		}
		return decimal.Zero, fmt.Errorf("failed to resolve discount for client %s: %w", clientID, err)
	}
	if !client.IsActive {
		return decimal.Zero, fmt.Errorf("%w: client %s is inactive", apperrors.ErrValidation, clientID)
	}

	category, err := s.clientRepo.FindCategoryByID(ctx, client.CategoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("failed to resolve category %s: %w", client.CategoryID, err)
	}
	if !category.IsActive {
		return decimal.Zero, nil
	}
	return category.DiscountPct, nil
}
