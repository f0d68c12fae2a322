package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/cambiosys/currency_exchange_app/internal/apperrors"
	"github.com/cambiosys/currency_exchange_app/internal/core/domain"
	portssvc "github.com/cambiosys/currency_exchange_app/internal/core/ports/services"
	"github.com/cambiosys/currency_exchange_app/internal/core/services"
	"github.com/cambiosys/currency_exchange_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) FindBaseCurrency(ctx context.Context) (*domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) SetBaseCurrency(ctx context.Context, currencyCode string, userID string, now time.Time) error {
	args := m.Called(ctx, currencyCode, userID, now)
	return args.Error(0)
}

func (m *MockCurrencyRepository) DeactivateCurrency(ctx context.Context, currencyCode string, userID string, now time.Time) error {
	args := m.Called(ctx, currencyCode, userID, now)
	return args.Error(0)
}

func (m *MockCurrencyRepository) FindDenominationByID(ctx context.Context, denominationID string) (*domain.Denomination, error) {
	args := m.Called(ctx, denominationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Denomination), args.Error(1)
}

func (m *MockCurrencyRepository) ListDenominationsByCurrency(ctx context.Context, currencyCode string, activeOnly bool) ([]domain.Denomination, error) {
	args := m.Called(ctx, currencyCode, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Denomination), args.Error(1)
}

func (m *MockCurrencyRepository) SaveDenomination(ctx context.Context, denomination domain.Denomination) error {
	args := m.Called(ctx, denomination)
	return args.Error(0)
}

func (m *MockCurrencyRepository) DeactivateDenomination(ctx context.Context, denominationID string, userID string, now time.Time) error {
	args := m.Called(ctx, denominationID, userID, now)
	return args.Error(0)
}

// --- Test Suite ---
type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyRepository
	service  portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRepository)
	suite.service = services.NewCurrencyService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateCurrencyRequest{
		CurrencyCode: "EUR",
		Name:         "Euro",
		Symbol:       "€",
		Precision:    2,
	}

	suite.mockRepo.On("SaveCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.CurrencyCode == req.CurrencyCode && c.Name == req.Name && !c.IsBase && c.IsActive && c.CreatedBy == creatorUserID
	})).Return(nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(currency)
	suite.Equal(req.CurrencyCode, currency.CurrencyCode)
	suite.False(currency.IsBase)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_AsBase() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateCurrencyRequest{
		CurrencyCode: "USD",
		Name:         "US Dollar",
		Symbol:       "$",
		Precision:    2,
		IsBase:       true,
	}

	suite.mockRepo.On("SaveCurrency", ctx, mock.AnythingOfType("domain.Currency")).Return(nil).Once()
	suite.mockRepo.On("SetBaseCurrency", ctx, "USD", creatorUserID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(currency)
	suite.True(currency.IsBase)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_SaveError() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{CurrencyCode: "ERR", Name: "Error", Symbol: "E"}
	expectedErr := assert.AnError

	suite.mockRepo.On("SaveCurrency", ctx, mock.AnythingOfType("domain.Currency")).Return(expectedErr).Once()

	currency, err := suite.service.CreateCurrency(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindCurrencyByCode", ctx, "XXX").Return(nil, apperrors.ErrNotFound).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, "XXX")

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetBaseCurrency_Success() {
	ctx := context.Background()
	expected := &domain.Currency{CurrencyCode: "USD", IsBase: true}

	suite.mockRepo.On("FindBaseCurrency", ctx).Return(expected, nil).Once()

	currency, err := suite.service.GetBaseCurrency(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, currency)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_Empty() {
	ctx := context.Background()
	var none []domain.Currency

	suite.mockRepo.On("ListCurrencies", ctx).Return(none, nil).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().NoError(err)
	suite.NotNil(currencies)
	suite.Empty(currencies)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestSetBaseCurrency_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	existing := &domain.Currency{CurrencyCode: "EUR", IsActive: true}

	suite.mockRepo.On("FindCurrencyByCode", ctx, "EUR").Return(existing, nil).Once()
	suite.mockRepo.On("SetBaseCurrency", ctx, "EUR", userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	currency, err := suite.service.SetBaseCurrency(ctx, "EUR", userID)

	suite.Require().NoError(err)
	suite.True(currency.IsBase)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestSetBaseCurrency_Inactive() {
	ctx := context.Background()
	existing := &domain.Currency{CurrencyCode: "EUR", IsActive: false}

	suite.mockRepo.On("FindCurrencyByCode", ctx, "EUR").Return(existing, nil).Once()

	currency, err := suite.service.SetBaseCurrency(ctx, "EUR", uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRepo.AssertNotCalled(suite.T(), "SetBaseCurrency", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestDeactivateCurrency_Base() {
	ctx := context.Background()
	base := &domain.Currency{CurrencyCode: "USD", IsBase: true, IsActive: true}

	suite.mockRepo.On("FindCurrencyByCode", ctx, "USD").Return(base, nil).Once()

	err := suite.service.DeactivateCurrency(ctx, "USD", uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRepo.AssertNotCalled(suite.T(), "DeactivateCurrency", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestDeactivateCurrency_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	foreign := &domain.Currency{CurrencyCode: "EUR", IsActive: true}

	suite.mockRepo.On("FindCurrencyByCode", ctx, "EUR").Return(foreign, nil).Once()
	suite.mockRepo.On("DeactivateCurrency", ctx, "EUR", userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeactivateCurrency(ctx, "EUR", userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCreateDenomination_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateDenominationRequest{CurrencyCode: "EUR", Value: 5000}
	currency := &domain.Currency{CurrencyCode: "EUR", IsActive: true}

	suite.mockRepo.On("FindCurrencyByCode", ctx, "EUR").Return(currency, nil).Once()
	suite.mockRepo.On("SaveDenomination", ctx, mock.MatchedBy(func(d domain.Denomination) bool {
		return d.CurrencyCode == "EUR" && d.Value == 5000 && d.IsActive && d.DenominationID != ""
	})).Return(nil).Once()

	denomination, err := suite.service.CreateDenomination(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(denomination)
	suite.Equal(int64(5000), denomination.Value)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCreateDenomination_UnknownCurrency() {
	ctx := context.Background()
	req := dto.CreateDenominationRequest{CurrencyCode: "XXX", Value: 100}

	suite.mockRepo.On("FindCurrencyByCode", ctx, "XXX").Return(nil, apperrors.ErrNotFound).Once()

	denomination, err := suite.service.CreateDenomination(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(denomination)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCreateDenomination_InactiveCurrency() {
	ctx := context.Background()
	req := dto.CreateDenominationRequest{CurrencyCode: "EUR", Value: 100}
	currency := &domain.Currency{CurrencyCode: "EUR", IsActive: false}

	suite.mockRepo.On("FindCurrencyByCode", ctx, "EUR").Return(currency, nil).Once()

	denomination, err := suite.service.CreateDenomination(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(denomination)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestListDenominations_Empty() {
	ctx := context.Background()
	var none []domain.Denomination

	suite.mockRepo.On("ListDenominationsByCurrency", ctx, "EUR", true).Return(none, nil).Once()

	denominations, err := suite.service.ListDenominations(ctx, "EUR", true)

	suite.Require().NoError(err)
	suite.NotNil(denominations)
	suite.Empty(denominations)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestDeactivateDenomination_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	denominationID := uuid.NewString()

	suite.mockRepo.On("DeactivateDenomination", ctx, denominationID, userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeactivateDenomination(ctx, denominationID, userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestCurrencyService(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
