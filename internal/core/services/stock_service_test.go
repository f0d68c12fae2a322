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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock StockRepository ---
type MockStockRepository struct {
	mock.Mock
}

func (m *MockStockRepository) FindLocationByID(ctx context.Context, locationID string) (*domain.Location, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}

func (m *MockStockRepository) FindVault(ctx context.Context) (*domain.Location, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}

func (m *MockStockRepository) ListLocations(ctx context.Context) ([]domain.Location, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Location), args.Error(1)
}

func (m *MockStockRepository) SaveLocation(ctx context.Context, location domain.Location) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

func (m *MockStockRepository) DeactivateLocation(ctx context.Context, locationID string, userID string, now time.Time) error {
	args := m.Called(ctx, locationID, userID, now)
	return args.Error(0)
}

func (m *MockStockRepository) ListStockByLocation(ctx context.Context, locationID string) ([]domain.StockEntry, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockEntry), args.Error(1)
}

func (m *MockStockRepository) ListDenominationStock(ctx context.Context, locationID string, currencyCode string) ([]domain.DenominationStock, error) {
	args := m.Called(ctx, locationID, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DenominationStock), args.Error(1)
}

func (m *MockStockRepository) FindMovementByID(ctx context.Context, movementID string) (*domain.StockMovement, error) {
	args := m.Called(ctx, movementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockMovement), args.Error(1)
}

func (m *MockStockRepository) FindActiveMovementByTransactionID(ctx context.Context, transactionID string) (*domain.StockMovement, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockMovement), args.Error(1)
}

func (m *MockStockRepository) ListMovementsByLocation(ctx context.Context, locationID string, limit int, offset int) ([]domain.StockMovement, error) {
	args := m.Called(ctx, locationID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockMovement), args.Error(1)
}

func (m *MockStockRepository) CreateMovement(ctx context.Context, movement domain.StockMovement, effect domain.StockEffect, vaultID string) error {
	args := m.Called(ctx, movement, effect, vaultID)
	return args.Error(0)
}

func (m *MockStockRepository) FinalizeMovement(ctx context.Context, movementID string, userID string, now time.Time) error {
	args := m.Called(ctx, movementID, userID, now)
	return args.Error(0)
}

func (m *MockStockRepository) CancelMovement(ctx context.Context, movement domain.StockMovement, effect domain.StockEffect, vaultID string, userID string, now time.Time) error {
	args := m.Called(ctx, movement, effect, vaultID, userID, now)
	return args.Error(0)
}

// --- Test Suite ---
type StockServiceTestSuite struct {
	suite.Suite
	mockRepo        *MockStockRepository
	mockCurrencySvc *MockCurrencyService
	service         portssvc.StockSvcFacade

	terminalID string
	terminal   *domain.Location
	vault      *domain.Location
	eur        *domain.Currency
}

func (suite *StockServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockStockRepository)
	suite.mockCurrencySvc = new(MockCurrencyService)
	suite.service = services.NewStockService(suite.mockRepo, suite.mockCurrencySvc)

	suite.terminalID = uuid.NewString()
	suite.terminal = &domain.Location{LocationID: suite.terminalID, Kind: domain.LocationTerminal, IsActive: true}
	suite.vault = &domain.Location{LocationID: uuid.NewString(), Kind: domain.LocationVault, IsActive: true}
	suite.eur = &domain.Currency{CurrencyCode: "EUR", IsActive: true, Precision: 2}
}

// --- Test Cases ---

func (suite *StockServiceTestSuite) TestCreateLocation_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateLocationRequest{Name: "ATM North", Kind: "TERMINAL"}

	suite.mockRepo.On("SaveLocation", ctx, mock.MatchedBy(func(l domain.Location) bool {
		return l.Name == "ATM North" && l.Kind == domain.LocationTerminal && l.IsActive
	})).Return(nil).Once()

	location, err := suite.service.CreateLocation(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(location)
	suite.Equal(domain.LocationTerminal, location.Kind)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StockServiceTestSuite) TestDeactivateLocation_Vault() {
	ctx := context.Background()

	suite.mockRepo.On("FindLocationByID", ctx, suite.vault.LocationID).Return(suite.vault, nil).Once()

	err := suite.service.DeactivateLocation(ctx, suite.vault.LocationID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeactivateLocation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *StockServiceTestSuite) TestTerminalCanCover_True() {
	ctx := context.Background()
	available := []domain.DenominationStock{
		{DenominationID: uuid.NewString(), FaceValue: 10000, Quantity: 1},
		{DenominationID: uuid.NewString(), FaceValue: 5000, Quantity: 1},
	}

	suite.mockRepo.On("FindLocationByID", ctx, suite.terminalID).Return(suite.terminal, nil).Once()
	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "EUR").Return(suite.eur, nil).Once()
	suite.mockRepo.On("ListDenominationStock", ctx, suite.terminalID, "EUR").Return(available, nil).Once()

	covered, err := suite.service.TerminalCanCover(ctx, suite.terminalID, "EUR", decimal.NewFromInt(150))

	suite.Require().NoError(err)
	suite.True(covered)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StockServiceTestSuite) TestTerminalCanCover_ShortStock() {
	ctx := context.Background()
	available := []domain.DenominationStock{
		{DenominationID: uuid.NewString(), FaceValue: 10000, Quantity: 1},
	}

	suite.mockRepo.On("FindLocationByID", ctx, suite.terminalID).Return(suite.terminal, nil).Once()
	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "EUR").Return(suite.eur, nil).Once()
	suite.mockRepo.On("ListDenominationStock", ctx, suite.terminalID, "EUR").Return(available, nil).Once()

	covered, err := suite.service.TerminalCanCover(ctx, suite.terminalID, "EUR", decimal.NewFromInt(150))

	suite.Require().NoError(err)
	suite.False(covered)
}

func (suite *StockServiceTestSuite) TestTerminalCanCover_NotATerminal() {
	ctx := context.Background()

	suite.mockRepo.On("FindLocationByID", ctx, suite.vault.LocationID).Return(suite.vault, nil).Once()

	covered, err := suite.service.TerminalCanCover(ctx, suite.vault.LocationID, "EUR", decimal.NewFromInt(10))

	suite.Require().Error(err)
	suite.False(covered)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *StockServiceTestSuite) TestTerminalCanCover_FractionalAmount() {
	ctx := context.Background()

	suite.mockRepo.On("FindLocationByID", ctx, suite.terminalID).Return(suite.terminal, nil).Once()
	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "EUR").Return(suite.eur, nil).Once()

	covered, err := suite.service.TerminalCanCover(ctx, suite.terminalID, "EUR", decimal.NewFromFloat(10.005))

	suite.Require().Error(err)
	suite.False(covered)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListDenominationStock", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *StockServiceTestSuite) TestCreateMovement_ClientDeposit() {
	ctx := context.Background()
	denominationID := uuid.NewString()
	amount := decimal.NewFromInt(100)
	req := dto.CreateMovementRequest{
		Type:         string(domain.ClientDeposit),
		LocationID:   suite.terminalID,
		CurrencyCode: "EUR",
		Amount:       &amount,
		Details:      []dto.MovementDetailRequest{{DenominationID: denominationID, Quantity: 2}},
	}
	denominations := []domain.Denomination{{DenominationID: denominationID, CurrencyCode: "EUR", Value: 5000, IsActive: true}}

	suite.mockRepo.On("FindLocationByID", ctx, suite.terminalID).Return(suite.terminal, nil).Once()
	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "EUR").Return(suite.eur, nil).Once()
	suite.mockCurrencySvc.On("ListDenominations", ctx, "EUR", true).Return(denominations, nil).Once()
	suite.mockRepo.On("CreateMovement", ctx,
		mock.MatchedBy(func(mv domain.StockMovement) bool {
			return mv.Type == domain.ClientDeposit && mv.Status == domain.MovementInProgress && len(mv.Details) == 1 && mv.Details[0].Quantity == 2
		}),
		mock.MatchedBy(func(e domain.StockEffect) bool {
			return e.TerminalDelta == 1 && e.VaultDelta == 0
		}),
		"",
	).Return(nil).Once()

	movement, err := suite.service.CreateMovement(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(movement)
	suite.Equal(domain.MovementInProgress, movement.Status)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRepo.AssertNotCalled(suite.T(), "FindVault", mock.Anything)
}

func (suite *StockServiceTestSuite) TestCreateMovement_HouseDepositUsesVault() {
	ctx := context.Background()
	denominationID := uuid.NewString()
	amount := decimal.NewFromInt(50)
	req := dto.CreateMovementRequest{
		Type:         string(domain.HouseDeposit),
		LocationID:   suite.terminalID,
		CurrencyCode: "EUR",
		Amount:       &amount,
		Details:      []dto.MovementDetailRequest{{DenominationID: denominationID, Quantity: 1}},
	}
	denominations := []domain.Denomination{{DenominationID: denominationID, CurrencyCode: "EUR", Value: 5000, IsActive: true}}

	suite.mockRepo.On("FindLocationByID", ctx, suite.terminalID).Return(suite.terminal, nil).Once()
	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "EUR").Return(suite.eur, nil).Once()
	suite.mockRepo.On("FindVault", ctx).Return(suite.vault, nil).Once()
	suite.mockCurrencySvc.On("ListDenominations", ctx, "EUR", true).Return(denominations, nil).Once()
	suite.mockRepo.On("CreateMovement", ctx,
		mock.AnythingOfType("domain.StockMovement"),
		mock.MatchedBy(func(e domain.StockEffect) bool {
			return e.TerminalDelta == 1 && e.VaultDelta == -1
		}),
		suite.vault.LocationID,
	).Return(nil).Once()

	movement, err := suite.service.CreateMovement(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(movement)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StockServiceTestSuite) TestCreateMovement_ClientWithdrawalAutoAllocates() {
	ctx := context.Background()
	fifty := uuid.NewString()
	twenty := uuid.NewString()
	amount := decimal.NewFromInt(90)
	transactionID := uuid.NewString()
	req := dto.CreateMovementRequest{
		Type:          string(domain.ClientWithdrawal),
		LocationID:    suite.terminalID,
		CurrencyCode:  "EUR",
		Amount:        &amount,
		TransactionID: &transactionID,
	}
	available := []domain.DenominationStock{
		{DenominationID: fifty, FaceValue: 5000, Quantity: 2},
		{DenominationID: twenty, FaceValue: 2000, Quantity: 5},
	}

	suite.mockRepo.On("FindLocationByID", ctx, suite.terminalID).Return(suite.terminal, nil).Once()
	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "EUR").Return(suite.eur, nil).Once()
	suite.mockRepo.On("FindActiveMovementByTransactionID", ctx, transactionID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("ListDenominationStock", ctx, suite.terminalID, "EUR").Return(available, nil).Once()
	suite.mockRepo.On("CreateMovement", ctx,
		mock.MatchedBy(func(mv domain.StockMovement) bool {
			// Greedy payout: one 50 note and two 20 notes.
			if len(mv.Details) != 2 || mv.TransactionID == nil {
				return false
			}
			quantities := map[string]int64{}
			for _, d := range mv.Details {
				quantities[d.DenominationID] = d.Quantity
			}
			return quantities[fifty] == 1 && quantities[twenty] == 2
		}),
		mock.MatchedBy(func(e domain.StockEffect) bool {
			return e.TerminalDelta == -1 && e.AutoAllocate
		}),
		"",
	).Return(nil).Once()

	movement, err := suite.service.CreateMovement(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(movement)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StockServiceTestSuite) TestCreateMovement_DuplicateTransaction() {
	ctx := context.Background()
	amount := decimal.NewFromInt(90)
	transactionID := uuid.NewString()
	req := dto.CreateMovementRequest{
		Type:          string(domain.ClientWithdrawal),
		LocationID:    suite.terminalID,
		CurrencyCode:  "EUR",
		Amount:        &amount,
		TransactionID: &transactionID,
	}
	existing := &domain.StockMovement{
		MovementID:    uuid.NewString(),
		Type:          domain.ClientWithdrawal,
		TransactionID: &transactionID,
		Status:        domain.MovementInProgress,
	}

	suite.mockRepo.On("FindLocationByID", ctx, suite.terminalID).Return(suite.terminal, nil).Once()
	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "EUR").Return(suite.eur, nil).Once()
	suite.mockRepo.On("FindActiveMovementByTransactionID", ctx, transactionID).Return(existing, nil).Once()

	movement, err := suite.service.CreateMovement(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(movement)
	suite.ErrorIs(err, apperrors.ErrDuplicateMovement)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateMovement", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *StockServiceTestSuite) TestCreateMovement_ClientWithdrawalRejectsDetails() {
	ctx := context.Background()
	amount := decimal.NewFromInt(90)
	req := dto.CreateMovementRequest{
		Type:         string(domain.ClientWithdrawal),
		LocationID:   suite.terminalID,
		CurrencyCode: "EUR",
		Amount:       &amount,
		Details:      []dto.MovementDetailRequest{{DenominationID: uuid.NewString(), Quantity: 1}},
	}

	suite.mockRepo.On("FindLocationByID", ctx, suite.terminalID).Return(suite.terminal, nil).Once()
	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "EUR").Return(suite.eur, nil).Once()

	movement, err := suite.service.CreateMovement(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(movement)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateMovement", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *StockServiceTestSuite) TestCreateMovement_InsufficientStockForPayout() {
	ctx := context.Background()
	amount := decimal.NewFromInt(90)
	req := dto.CreateMovementRequest{
		Type:         string(domain.ClientWithdrawal),
		LocationID:   suite.terminalID,
		CurrencyCode: "EUR",
		Amount:       &amount,
	}
	available := []domain.DenominationStock{
		{DenominationID: uuid.NewString(), FaceValue: 5000, Quantity: 1},
	}

	suite.mockRepo.On("FindLocationByID", ctx, suite.terminalID).Return(suite.terminal, nil).Once()
	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "EUR").Return(suite.eur, nil).Once()
	suite.mockRepo.On("ListDenominationStock", ctx, suite.terminalID, "EUR").Return(available, nil).Once()

	movement, err := suite.service.CreateMovement(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(movement)
	suite.ErrorIs(err, apperrors.ErrInsufficientStock)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateMovement", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *StockServiceTestSuite) TestCreateMovement_AmountMismatch() {
	ctx := context.Background()
	denominationID := uuid.NewString()
	amount := decimal.NewFromInt(100)
	req := dto.CreateMovementRequest{
		Type:         string(domain.ClientDeposit),
		LocationID:   suite.terminalID,
		CurrencyCode: "EUR",
		Amount:       &amount,
		Details:      []dto.MovementDetailRequest{{DenominationID: denominationID, Quantity: 1}},
	}
	denominations := []domain.Denomination{{DenominationID: denominationID, CurrencyCode: "EUR", Value: 5000, IsActive: true}}

	suite.mockRepo.On("FindLocationByID", ctx, suite.terminalID).Return(suite.terminal, nil).Once()
	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "EUR").Return(suite.eur, nil).Once()
	suite.mockCurrencySvc.On("ListDenominations", ctx, "EUR", true).Return(denominations, nil).Once()

	movement, err := suite.service.CreateMovement(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(movement)
	suite.ErrorIs(err, apperrors.ErrAmountMismatch)
}

func (suite *StockServiceTestSuite) TestCreateMovement_UnknownDenomination() {
	ctx := context.Background()
	amount := decimal.NewFromInt(100)
	req := dto.CreateMovementRequest{
		Type:         string(domain.ClientDeposit),
		LocationID:   suite.terminalID,
		CurrencyCode: "EUR",
		Amount:       &amount,
		Details:      []dto.MovementDetailRequest{{DenominationID: uuid.NewString(), Quantity: 2}},
	}

	suite.mockRepo.On("FindLocationByID", ctx, suite.terminalID).Return(suite.terminal, nil).Once()
	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "EUR").Return(suite.eur, nil).Once()
	suite.mockCurrencySvc.On("ListDenominations", ctx, "EUR", true).Return([]domain.Denomination{}, nil).Once()

	movement, err := suite.service.CreateMovement(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(movement)
	suite.ErrorIs(err, apperrors.ErrDenominationMismatch)
}

func (suite *StockServiceTestSuite) TestFinalizeMovement_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	movementID := uuid.NewString()
	movement := &domain.StockMovement{MovementID: movementID, Status: domain.MovementInProgress}

	suite.mockRepo.On("FindMovementByID", ctx, movementID).Return(movement, nil).Once()
	suite.mockRepo.On("FinalizeMovement", ctx, movementID, userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	finalized, err := suite.service.FinalizeMovement(ctx, movementID, userID)

	suite.Require().NoError(err)
	suite.Equal(domain.MovementFinalized, finalized.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StockServiceTestSuite) TestFinalizeMovement_AlreadyCancelled() {
	ctx := context.Background()
	movementID := uuid.NewString()
	movement := &domain.StockMovement{MovementID: movementID, Status: domain.MovementCancelled}

	suite.mockRepo.On("FindMovementByID", ctx, movementID).Return(movement, nil).Once()

	finalized, err := suite.service.FinalizeMovement(ctx, movementID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(finalized)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "FinalizeMovement", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *StockServiceTestSuite) TestCancelMovement_AlreadyCancelledIsNoOp() {
	ctx := context.Background()
	movementID := uuid.NewString()
	movement := &domain.StockMovement{MovementID: movementID, Status: domain.MovementCancelled}

	suite.mockRepo.On("FindMovementByID", ctx, movementID).Return(movement, nil).Once()

	cancelled, err := suite.service.CancelMovement(ctx, movementID, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.MovementCancelled, cancelled.Status)
	suite.mockRepo.AssertNotCalled(suite.T(), "CancelMovement", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *StockServiceTestSuite) TestCancelMovement_Finalized() {
	ctx := context.Background()
	movementID := uuid.NewString()
	movement := &domain.StockMovement{MovementID: movementID, Status: domain.MovementFinalized}

	suite.mockRepo.On("FindMovementByID", ctx, movementID).Return(movement, nil).Once()

	cancelled, err := suite.service.CancelMovement(ctx, movementID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(cancelled)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *StockServiceTestSuite) TestCancelMovement_HouseDepositRestoresVault() {
	ctx := context.Background()
	userID := uuid.NewString()
	movementID := uuid.NewString()
	movement := &domain.StockMovement{
		MovementID: movementID,
		Type:       domain.HouseDeposit,
		LocationID: suite.terminalID,
		Status:     domain.MovementInProgress,
	}

	suite.mockRepo.On("FindMovementByID", ctx, movementID).Return(movement, nil).Once()
	suite.mockRepo.On("FindVault", ctx).Return(suite.vault, nil).Once()
	suite.mockRepo.On("CancelMovement", ctx,
		mock.AnythingOfType("domain.StockMovement"),
		mock.MatchedBy(func(e domain.StockEffect) bool {
			return e.TerminalDelta == 1 && e.VaultDelta == -1
		}),
		suite.vault.LocationID, userID, mock.AnythingOfType("time.Time"),
	).Return(nil).Once()

	cancelled, err := suite.service.CancelMovement(ctx, movementID, userID)

	suite.Require().NoError(err)
	suite.Equal(domain.MovementCancelled, cancelled.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestStockService(t *testing.T) {
	suite.Run(t, new(StockServiceTestSuite))
}
