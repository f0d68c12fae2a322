package repositories

import (
	"context"
	"time"

	"github.com/cambiosys/currency_exchange_app/internal/core/domain"
)

// MethodReader defines read operations for financial method data
type MethodReader interface {
	// FindMethodByID retrieves a financial method by its identifier.
	FindMethodByID(ctx context.Context, methodID string) (*domain.FinancialMethod, error)

	// ListMethods retrieves all financial methods.
	ListMethods(ctx context.Context) ([]domain.FinancialMethod, error)

	// FindMethodDetailByID retrieves a method detail by its identifier.
	FindMethodDetailByID(ctx context.Context, detailID string) (*domain.FinancialMethodDetail, error)

	// ListDetailsByMethod retrieves the details of a method.
	ListDetailsByMethod(ctx context.Context, methodID string) ([]domain.FinancialMethodDetail, error)
}

// MethodWriter defines write operations for financial method data
type MethodWriter interface {
	// SaveMethod persists a new financial method.
	SaveMethod(ctx context.Context, method domain.FinancialMethod) error

	// SaveMethodDetail persists a new method detail.
	SaveMethodDetail(ctx context.Context, detail domain.FinancialMethodDetail) error

	// DeactivateMethodCascading marks a method inactive and cascades to its
	// active details, flagging each one as cascade-deactivated, in one
	// transaction.
	DeactivateMethodCascading(ctx context.Context, methodID string, userID string, now time.Time) error

	// ReactivateMethodCascading marks a method active again and reactivates
	// only the details that were deactivated by the cascade. Details that were
	// deactivated directly stay inactive.
	ReactivateMethodCascading(ctx context.Context, methodID string, userID string, now time.Time) error

	// DeactivateMethodDetail marks a single detail inactive, without the
	// cascade flag.
	DeactivateMethodDetail(ctx context.Context, detailID string, userID string, now time.Time) error
}

// MethodRepositoryFacade combines all method-related repository interfaces
// This is a facade for clients that need access to all operations
type MethodRepositoryFacade interface {
	MethodReader
	MethodWriter
}

// MethodRepositoryWithTx extends MethodRepositoryFacade with transaction capabilities
type MethodRepositoryWithTx interface {
	MethodRepositoryFacade
	TransactionManager
}
