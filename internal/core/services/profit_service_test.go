package services_test

import (
	"context"
	"testing"

	"github.com/cambiosys/currency_exchange_app/internal/apperrors"
	"github.com/cambiosys/currency_exchange_app/internal/core/domain"
	portssvc "github.com/cambiosys/currency_exchange_app/internal/core/ports/services"
	"github.com/cambiosys/currency_exchange_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ProfitRepository ---
type MockProfitRepository struct {
	mock.Mock
}

func (m *MockProfitRepository) FindProfitByTransactionID(ctx context.Context, transactionID string) (*domain.Profit, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profit), args.Error(1)
}

func (m *MockProfitRepository) ListProfitsByPeriod(ctx context.Context, year int, month int) ([]domain.Profit, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profit), args.Error(1)
}

func (m *MockProfitRepository) SaveProfit(ctx context.Context, profit domain.Profit) error {
	args := m.Called(ctx, profit)
	return args.Error(0)
}

// --- Test Suite ---
type ProfitServiceTestSuite struct {
	suite.Suite
	mockRepo        *MockProfitRepository
	mockCurrencySvc *MockCurrencyService
	mockMethodSvc   *MockMethodService
	service         portssvc.ProfitSvcFacade
}

func (suite *ProfitServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockProfitRepository)
	suite.mockCurrencySvc = new(MockCurrencyService)
	suite.mockMethodSvc = new(MockMethodService)
	suite.service = services.NewProfitService(suite.mockRepo, suite.mockCurrencySvc, suite.mockMethodSvc)
}

func (suite *ProfitServiceTestSuite) baseUSD() *domain.Currency {
	return &domain.Currency{CurrencyCode: "USD", IsBase: true, IsActive: true}
}

// completedSellTxn is a house sell: 105 USD in, 10 EUR out at applied 10.5
// against market 10.
func completedSellTxn() domain.Transaction {
	return domain.Transaction{
		TransactionID:      uuid.NewString(),
		HouseSide:          domain.Sell,
		SourceCurrencyCode: "USD",
		DestCurrencyCode:   "EUR",
		SourceAmount:       decimal.NewFromInt(105),
		DestAmount:         decimal.NewFromInt(10),
		MarketRate:         decimal.NewFromInt(10),
		AppliedRate:        decimal.NewFromFloat(10.5),
		Status:             domain.TransactionCompleted,
	}
}

// --- Test Cases ---

func (suite *ProfitServiceTestSuite) TestRecordProfit_NotCompleted() {
	ctx := context.Background()
	txn := completedSellTxn()
	txn.Status = domain.TransactionInProgress

	profit, err := suite.service.RecordProfitForTransaction(ctx, txn, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(profit)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveProfit", mock.Anything, mock.Anything)
}

func (suite *ProfitServiceTestSuite) TestRecordProfit_AlreadyRecorded() {
	ctx := context.Background()
	txn := completedSellTxn()
	existing := &domain.Profit{ProfitID: uuid.NewString(), TransactionID: txn.TransactionID}

	suite.mockRepo.On("FindProfitByTransactionID", ctx, txn.TransactionID).Return(existing, nil).Once()

	profit, err := suite.service.RecordProfitForTransaction(ctx, txn, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(existing, profit)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveProfit", mock.Anything, mock.Anything)
}

func (suite *ProfitServiceTestSuite) TestRecordProfit_HouseSellMargin() {
	ctx := context.Background()
	userID := uuid.NewString()
	txn := completedSellTxn()

	suite.mockRepo.On("FindProfitByTransactionID", ctx, txn.TransactionID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCurrencySvc.On("GetBaseCurrency", ctx).Return(suite.baseUSD(), nil).Once()
	suite.mockRepo.On("SaveProfit", ctx, mock.MatchedBy(func(p domain.Profit) bool {
		// (10.5 - 10) * 10 foreign units
		return p.TransactionID == txn.TransactionID &&
			p.NetProfit.Equal(decimal.NewFromInt(5)) &&
			p.CurrencyCode == "EUR" &&
			p.ForeignAmount.Equal(decimal.NewFromInt(10)) &&
			p.MethodID == nil
	})).Return(nil).Once()

	profit, err := suite.service.RecordProfitForTransaction(ctx, txn, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(profit)
	suite.True(profit.NetProfit.Equal(decimal.NewFromInt(5)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProfitServiceTestSuite) TestRecordProfit_HouseBuyMargin() {
	ctx := context.Background()
	txn := domain.Transaction{
		TransactionID:      uuid.NewString(),
		HouseSide:          domain.Buy,
		SourceCurrencyCode: "EUR",
		DestCurrencyCode:   "USD",
		SourceAmount:       decimal.NewFromInt(100),
		DestAmount:         decimal.NewFromInt(950),
		MarketRate:         decimal.NewFromInt(10),
		AppliedRate:        decimal.NewFromFloat(9.5),
		Status:             domain.TransactionCompleted,
	}

	suite.mockRepo.On("FindProfitByTransactionID", ctx, txn.TransactionID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCurrencySvc.On("GetBaseCurrency", ctx).Return(suite.baseUSD(), nil).Once()
	suite.mockRepo.On("SaveProfit", ctx, mock.MatchedBy(func(p domain.Profit) bool {
		// (10 - 9.5) * 100 foreign units
		return p.NetProfit.Equal(decimal.NewFromInt(50)) && p.CurrencyCode == "EUR" && p.ForeignAmount.Equal(decimal.NewFromInt(100))
	})).Return(nil).Once()

	profit, err := suite.service.RecordProfitForTransaction(ctx, txn, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(profit.NetProfit.Equal(decimal.NewFromInt(50)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProfitServiceTestSuite) TestRecordProfit_ClassifiesByMethod() {
	ctx := context.Background()
	txn := completedSellTxn()
	detailID := uuid.NewString()
	methodID := uuid.NewString()
	txn.MethodDetailID = &detailID
	detail := &domain.FinancialMethodDetail{DetailID: detailID, MethodID: methodID, IsActive: true}

	suite.mockRepo.On("FindProfitByTransactionID", ctx, txn.TransactionID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCurrencySvc.On("GetBaseCurrency", ctx).Return(suite.baseUSD(), nil).Once()
	suite.mockMethodSvc.On("GetMethodDetailByID", ctx, detailID).Return(detail, nil).Once()
	suite.mockRepo.On("SaveProfit", ctx, mock.MatchedBy(func(p domain.Profit) bool {
		return p.MethodID != nil && *p.MethodID == methodID
	})).Return(nil).Once()

	profit, err := suite.service.RecordProfitForTransaction(ctx, txn, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(profit.MethodID)
	suite.Equal(methodID, *profit.MethodID)
	suite.mockMethodSvc.AssertExpectations(suite.T())
}

func (suite *ProfitServiceTestSuite) TestRecordProfit_DuplicateRaceReturnsWinner() {
	ctx := context.Background()
	txn := completedSellTxn()
	winner := &domain.Profit{ProfitID: uuid.NewString(), TransactionID: txn.TransactionID}

	suite.mockRepo.On("FindProfitByTransactionID", ctx, txn.TransactionID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCurrencySvc.On("GetBaseCurrency", ctx).Return(suite.baseUSD(), nil).Once()
	suite.mockRepo.On("SaveProfit", ctx, mock.AnythingOfType("domain.Profit")).Return(apperrors.ErrDuplicate).Once()
	suite.mockRepo.On("FindProfitByTransactionID", ctx, txn.TransactionID).Return(winner, nil).Once()

	profit, err := suite.service.RecordProfitForTransaction(ctx, txn, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(winner, profit)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProfitServiceTestSuite) TestListProfitsByPeriod_BadMonth() {
	ctx := context.Background()

	profits, err := suite.service.ListProfitsByPeriod(ctx, 2026, 13)

	suite.Require().Error(err)
	suite.Nil(profits)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListProfitsByPeriod", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProfitServiceTestSuite) TestListProfitsByPeriod_Empty() {
	ctx := context.Background()
	var none []domain.Profit

	suite.mockRepo.On("ListProfitsByPeriod", ctx, 2026, 8).Return(none, nil).Once()

	profits, err := suite.service.ListProfitsByPeriod(ctx, 2026, 8)

	suite.Require().NoError(err)
	suite.NotNil(profits)
	suite.Empty(profits)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestProfitService(t *testing.T) {
	suite.Run(t, new(ProfitServiceTestSuite))
}
