package services

import (
	"context"

	"github.com/cambiosys/currency_exchange_app/internal/core/domain"
	"github.com/cambiosys/currency_exchange_app/internal/dto"
	"github.com/shopspring/decimal"
)

// MethodReaderSvc defines read operations for financial methods
type MethodReaderSvc interface {
	// GetMethodByID retrieves a financial method by its identifier.
	GetMethodByID(ctx context.Context, methodID string) (*domain.FinancialMethod, error)

	// ListMethods retrieves all financial methods.
	ListMethods(ctx context.Context) ([]domain.FinancialMethod, error)

	// GetMethodDetailByID retrieves a method detail by its identifier.
	GetMethodDetailByID(ctx context.Context, detailID string) (*domain.FinancialMethodDetail, error)

	// ListMethodDetails retrieves the details of a method.
	ListMethodDetails(ctx context.Context, methodID string) ([]domain.FinancialMethodDetail, error)

	// ResolveCommission returns the commission percentage to apply for the
	// given method or detail (at most one set, detail preferred) and the
	// owning method's ID. Inactive methods and details fail with
	// ErrMethodUnavailable; with neither set the commission is zero.
	ResolveCommission(ctx context.Context, methodID, detailID *string) (decimal.Decimal, *string, error)
}

// MethodWriterSvc defines write operations for financial methods
type MethodWriterSvc interface {
	// CreateMethod persists a new financial method.
	CreateMethod(ctx context.Context, req dto.CreateFinancialMethodRequest, creatorUserID string) (*domain.FinancialMethod, error)

	// CreateMethodDetail persists a new detail under an active method.
	CreateMethodDetail(ctx context.Context, req dto.CreateMethodDetailRequest, creatorUserID string) (*domain.FinancialMethodDetail, error)

	// DeactivateMethod marks a method inactive, cascading to its details.
	DeactivateMethod(ctx context.Context, methodID string, userID string) error

	// ReactivateMethod marks a method active again, restoring only the
	// details that the deactivation cascade took down.
	ReactivateMethod(ctx context.Context, methodID string, userID string) error

	// DeactivateMethodDetail marks a single detail inactive.
	DeactivateMethodDetail(ctx context.Context, detailID string, userID string) error
}

// MethodSvcFacade combines all method-related service interfaces
type MethodSvcFacade interface {
	MethodReaderSvc
	MethodWriterSvc
}
