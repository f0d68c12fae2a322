package services_test

import (
	"context"

	"github.com/cambiosys/currency_exchange_app/internal/core/domain"
	"github.com/cambiosys/currency_exchange_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// Shared service mocks for suites that exercise a service through its
// collaborators rather than through a repository.

// --- Mock CurrencyReaderSvc ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) GetBaseCurrency(ctx context.Context) (*domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) ListDenominations(ctx context.Context, currencyCode string, activeOnly bool) ([]domain.Denomination, error) {
	args := m.Called(ctx, currencyCode, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Denomination), args.Error(1)
}

// --- Mock RateReaderSvc ---
type MockRateService struct {
	mock.Mock
}

func (m *MockRateService) GetActiveRate(ctx context.Context, currencyCode string) (*domain.Rate, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rate), args.Error(1)
}

func (m *MockRateService) ListActiveRates(ctx context.Context) ([]domain.Rate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rate), args.Error(1)
}

func (m *MockRateService) ListRateHistory(ctx context.Context, currencyCode string, limit int) ([]domain.RateHistory, error) {
	args := m.Called(ctx, currencyCode, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RateHistory), args.Error(1)
}

// --- Mock MethodReaderSvc ---
type MockMethodService struct {
	mock.Mock
}

func (m *MockMethodService) GetMethodByID(ctx context.Context, methodID string) (*domain.FinancialMethod, error) {
	args := m.Called(ctx, methodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialMethod), args.Error(1)
}

func (m *MockMethodService) ListMethods(ctx context.Context) ([]domain.FinancialMethod, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialMethod), args.Error(1)
}

func (m *MockMethodService) GetMethodDetailByID(ctx context.Context, detailID string) (*domain.FinancialMethodDetail, error) {
	args := m.Called(ctx, detailID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialMethodDetail), args.Error(1)
}

func (m *MockMethodService) ListMethodDetails(ctx context.Context, methodID string) ([]domain.FinancialMethodDetail, error) {
	args := m.Called(ctx, methodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialMethodDetail), args.Error(1)
}

func (m *MockMethodService) ResolveCommission(ctx context.Context, methodID, detailID *string) (decimal.Decimal, *string, error) {
	args := m.Called(ctx, methodID, detailID)
	var owner *string
	if args.Get(1) != nil {
		owner = args.Get(1).(*string)
	}
	return args.Get(0).(decimal.Decimal), owner, args.Error(2)
}

// --- Mock ClientReaderSvc ---
type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientService) ListClients(ctx context.Context, limit int, offset int) ([]domain.Client, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientService) ListCategories(ctx context.Context) ([]domain.ClientCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClientCategory), args.Error(1)
}

func (m *MockClientService) ResolveDiscount(ctx context.Context, clientID string) (decimal.Decimal, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock OperationSvcFacade ---
type MockOperationService struct {
	mock.Mock
}

func (m *MockOperationService) ComputeOperation(ctx context.Context, req dto.ComputeOperationRequest) (*dto.ComputeOperationResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ComputeOperationResponse), args.Error(1)
}

// --- Mock StockSvcFacade ---
type MockStockService struct {
	mock.Mock
}

func (m *MockStockService) GetLocationByID(ctx context.Context, locationID string) (*domain.Location, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}

func (m *MockStockService) ListLocations(ctx context.Context) ([]domain.Location, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Location), args.Error(1)
}

func (m *MockStockService) ListStock(ctx context.Context, locationID string) ([]domain.StockEntry, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockEntry), args.Error(1)
}

func (m *MockStockService) TerminalCanCover(ctx context.Context, locationID string, currencyCode string, amount decimal.Decimal) (bool, error) {
	args := m.Called(ctx, locationID, currencyCode, amount)
	return args.Bool(0), args.Error(1)
}

func (m *MockStockService) GetMovementByID(ctx context.Context, movementID string) (*domain.StockMovement, error) {
	args := m.Called(ctx, movementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockMovement), args.Error(1)
}

func (m *MockStockService) GetMovementByTransactionID(ctx context.Context, transactionID string) (*domain.StockMovement, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockMovement), args.Error(1)
}

func (m *MockStockService) ListMovementsByLocation(ctx context.Context, locationID string, limit int, offset int) ([]domain.StockMovement, error) {
	args := m.Called(ctx, locationID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockMovement), args.Error(1)
}

func (m *MockStockService) CreateLocation(ctx context.Context, req dto.CreateLocationRequest, creatorUserID string) (*domain.Location, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}

func (m *MockStockService) DeactivateLocation(ctx context.Context, locationID string, userID string) error {
	args := m.Called(ctx, locationID, userID)
	return args.Error(0)
}

func (m *MockStockService) CreateMovement(ctx context.Context, req dto.CreateMovementRequest, creatorUserID string) (*domain.StockMovement, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockMovement), args.Error(1)
}

func (m *MockStockService) FinalizeMovement(ctx context.Context, movementID string, userID string) (*domain.StockMovement, error) {
	args := m.Called(ctx, movementID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockMovement), args.Error(1)
}

func (m *MockStockService) CancelMovement(ctx context.Context, movementID string, userID string) (*domain.StockMovement, error) {
	args := m.Called(ctx, movementID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockMovement), args.Error(1)
}

// --- Mock ProfitSvcFacade ---
type MockProfitService struct {
	mock.Mock
}

func (m *MockProfitService) GetProfitByTransactionID(ctx context.Context, transactionID string) (*domain.Profit, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profit), args.Error(1)
}

func (m *MockProfitService) ListProfitsByPeriod(ctx context.Context, year int, month int) ([]domain.Profit, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profit), args.Error(1)
}

func (m *MockProfitService) RecordProfitForTransaction(ctx context.Context, txn domain.Transaction, userID string) (*domain.Profit, error) {
	args := m.Called(ctx, txn, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profit), args.Error(1)
}
