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

// methodService provides business logic for financial methods and their
// concrete details.
type methodService struct {
	methodRepo portsrepo.MethodRepositoryFacade
}

// NewMethodService creates a new method service.
func NewMethodService(methodRepo portsrepo.MethodRepositoryFacade) portssvc.MethodSvcFacade {
	return &methodService{methodRepo: methodRepo}
}

var _ portssvc.MethodSvcFacade = (*methodService)(nil)

// CreateMethod persists a new financial method.
func (s *methodService) CreateMethod(ctx context.Context, req dto.CreateFinancialMethodRequest, creatorUserID string) (*domain.FinancialMethod, error) {
	if err := validatePct(req.CommissionPct); err != nil {
		return nil, err
	}

	now := time.Now()
	method := domain.FinancialMethod{
		MethodID:      uuid.NewString(),
		Name:          req.Name,
		Kind:          domain.MethodKind(req.Kind),
		CommissionPct: req.CommissionPct,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.methodRepo.SaveMethod(ctx, method); err != nil {
		return nil, fmt.Errorf("failed to create financial method: %w", err)
	}
	return &method, nil
}

// GetMethodByID retrieves a financial method by its identifier.
func (s *methodService) GetMethodByID(ctx context.Context, methodID string) (*domain.FinancialMethod, error) {
	method, err := s.methodRepo.FindMethodByID(ctx, methodID)
	if err != nil {
		return nil, fmt.Errorf("failed to get method %s: %w", methodID, err)
	}
	return method, nil
}

// ListMethods retrieves all financial methods.
func (s *methodService) ListMethods(ctx context.Context) ([]domain.FinancialMethod, error) {
	methods, err := s.methodRepo.ListMethods(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list methods: %w", err)
	}
	if methods == nil {
		return []domain.FinancialMethod{}, nil
	}
	return methods, nil
}

// CreateMethodDetail persists a new detail under an active method.
func (s *methodService) CreateMethodDetail(ctx context.Context, req dto.CreateMethodDetailRequest, creatorUserID string) (*domain.FinancialMethodDetail, error) {
	if req.CommissionPct != nil {
		if err := validatePct(*req.CommissionPct); err != nil {
			return nil, err
		}
	}

	method, err := s.methodRepo.FindMethodByID(ctx, req.MethodID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: method %s not found", apperrors.ErrValidation, req.MethodID)
		}
		return nil, fmt.Errorf("failed to validate method %s: %w", req.MethodID, err)
	}
	if !method.IsActive {
		return nil, fmt.Errorf("%w: method %s is inactive", apperrors.ErrValidation, req.MethodID)
	}

	now := time.Now()
	detail := domain.FinancialMethodDetail{
		DetailID:      uuid.NewString(),
		MethodID:      req.MethodID,
		OwnerName:     req.OwnerName,
		Handle:        req.Handle,
		CommissionPct: req.CommissionPct,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.methodRepo.SaveMethodDetail(ctx, detail); err != nil {
		return nil, fmt.Errorf("failed to create method detail: %w", err)
	}
	return &detail, nil
}

// GetMethodDetailByID retrieves a method detail by its identifier.
func (s *methodService) GetMethodDetailByID(ctx context.Context, detailID string) (*domain.FinancialMethodDetail, error) {
	detail, err := s.methodRepo.FindMethodDetailByID(ctx, detailID)
	if err != nil {
		return nil, fmt.Errorf("failed to get method detail %s: %w", detailID, err)
	}
	return detail, nil
}

// ListMethodDetails retrieves the details of a method.
func (s *methodService) ListMethodDetails(ctx context.Context, methodID string) ([]domain.FinancialMethodDetail, error) {
	details, err := s.methodRepo.ListDetailsByMethod(ctx, methodID)
	if err != nil {
		return nil, fmt.Errorf("failed to list details for method %s: %w", methodID, err)
	}
	if details == nil {
		return []domain.FinancialMethodDetail{}, nil
	}
	return details, nil
}

// DeactivateMethod marks a method inactive and cascades to its active details.
func (s *methodService) DeactivateMethod(ctx context.Context, methodID string, userID string) error {
	if err := s.methodRepo.DeactivateMethodCascading(ctx, methodID, userID, time.Now()); err != nil {
		return fmt.Errorf("failed to deactivate method %s: %w", methodID, err)
	}
	return nil
}

// ReactivateMethod marks a method active again, restoring only the details
// that were deactivated by the cascade.
func (s *methodService) ReactivateMethod(ctx context.Context, methodID string, userID string) error {
	if err := s.methodRepo.ReactivateMethodCascading(ctx, methodID, userID, time.Now()); err != nil {
		return fmt.Errorf("failed to reactivate method %s: %w", methodID, err)
	}
	return nil
}

// DeactivateMethodDetail marks a single detail inactive.
func (s *methodService) DeactivateMethodDetail(ctx context.Context, detailID string, userID string) error {
	if err := s.methodRepo.DeactivateMethodDetail(ctx, detailID, userID, time.Now()); err != nil {
		return fmt.Errorf("failed to deactivate method detail %s: %w", detailID, err)
	}
	return nil
}

// ResolveCommission returns the commission percentage to apply for the given
// method or detail reference. A detail override wins over the method default.
// Inactive methods and details are unusable for pricing.
func (s *methodService) ResolveCommission(ctx context.Context, methodID, detailID *string) (decimal.Decimal, *string, error) {
	if methodID != nil && detailID != nil {
		return decimal.Zero, nil, fmt.Errorf("%w: give a method or a method detail, not both", apperrors.ErrValidation)
	}

	if detailID != nil {
		detail, err := s.methodRepo.FindMethodDetailByID(ctx, *detailID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return decimal.Zero, nil, fmt.Errorf("%w: detail %s", apperrors.ErrMethodUnavailable, *detailID)
			}
			return decimal.Zero, nil, fmt.Errorf("failed to resolve method detail %s: %w", *detailID, err)
		}
		if !detail.IsActive {
			return decimal.Zero, nil, fmt.Errorf("%w: detail %s is inactive", apperrors.ErrMethodUnavailable, *detailID)
		}

		method, err := s.methodRepo.FindMethodByID(ctx, detail.MethodID)
		if err != nil {
			return decimal.Zero, nil, fmt.Errorf("failed to resolve method %s: %w", detail.MethodID, err)
		}
		if !method.IsActive {
			return decimal.Zero, nil, fmt.Errorf("%w: method %s is inactive", apperrors.ErrMethodUnavailable, detail.MethodID)
		}
		return detail.EffectiveCommission(*method), &method.MethodID, nil
	}

	if methodID != nil {
		method, err := s.methodRepo.FindMethodByID(ctx, *methodID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return decimal.Zero, nil, fmt.Errorf("%w: method %s", apperrors.ErrMethodUnavailable, *methodID)
			}
			return decimal.Zero, nil, fmt.Errorf("failed to resolve method %s: %w", *methodID, err)
		}
		if !method.IsActive {
			return decimal.Zero, nil, fmt.Errorf("%w: method %s is inactive", apperrors.ErrMethodUnavailable, *methodID)
		}
		return method.CommissionPct, &method.MethodID, nil
	}

	// No method reference: price without a channel commission.
	return decimal.Zero, nil, nil
}
