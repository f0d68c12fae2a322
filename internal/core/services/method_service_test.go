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

// --- Mock MethodRepository ---
type MockMethodRepository struct {
	mock.Mock
}

func (m *MockMethodRepository) FindMethodByID(ctx context.Context, methodID string) (*domain.FinancialMethod, error) {
	args := m.Called(ctx, methodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialMethod), args.Error(1)
}

func (m *MockMethodRepository) ListMethods(ctx context.Context) ([]domain.FinancialMethod, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialMethod), args.Error(1)
}

func (m *MockMethodRepository) FindMethodDetailByID(ctx context.Context, detailID string) (*domain.FinancialMethodDetail, error) {
	args := m.Called(ctx, detailID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialMethodDetail), args.Error(1)
}

func (m *MockMethodRepository) ListDetailsByMethod(ctx context.Context, methodID string) ([]domain.FinancialMethodDetail, error) {
	args := m.Called(ctx, methodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialMethodDetail), args.Error(1)
}

func (m *MockMethodRepository) SaveMethod(ctx context.Context, method domain.FinancialMethod) error {
	args := m.Called(ctx, method)
	return args.Error(0)
}

func (m *MockMethodRepository) SaveMethodDetail(ctx context.Context, detail domain.FinancialMethodDetail) error {
	args := m.Called(ctx, detail)
	return args.Error(0)
}

func (m *MockMethodRepository) DeactivateMethodCascading(ctx context.Context, methodID string, userID string, now time.Time) error {
	args := m.Called(ctx, methodID, userID, now)
	return args.Error(0)
}

func (m *MockMethodRepository) ReactivateMethodCascading(ctx context.Context, methodID string, userID string, now time.Time) error {
	args := m.Called(ctx, methodID, userID, now)
	return args.Error(0)
}

func (m *MockMethodRepository) DeactivateMethodDetail(ctx context.Context, detailID string, userID string, now time.Time) error {
	args := m.Called(ctx, detailID, userID, now)
	return args.Error(0)
}

// --- Test Suite ---
type MethodServiceTestSuite struct {
	suite.Suite
	mockRepo *MockMethodRepository
	service  portssvc.MethodSvcFacade
}

func (suite *MethodServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockMethodRepository)
	suite.service = services.NewMethodService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *MethodServiceTestSuite) TestCreateMethod_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateFinancialMethodRequest{
		Name:          "Wire",
		Kind:          "BANK_TRANSFER",
		CommissionPct: decimal.NewFromInt(1),
	}

	suite.mockRepo.On("SaveMethod", ctx, mock.MatchedBy(func(fm domain.FinancialMethod) bool {
		return fm.Name == "Wire" && fm.Kind == domain.MethodBankTransfer && fm.IsActive && fm.CreatedBy == creatorUserID
	})).Return(nil).Once()

	method, err := suite.service.CreateMethod(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(method)
	suite.Equal(domain.MethodBankTransfer, method.Kind)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MethodServiceTestSuite) TestCreateMethod_PctOutOfRange() {
	ctx := context.Background()
	req := dto.CreateFinancialMethodRequest{Name: "Broken", Kind: "CARD", CommissionPct: decimal.NewFromInt(150)}

	method, err := suite.service.CreateMethod(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(method)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveMethod", mock.Anything, mock.Anything)
}

func (suite *MethodServiceTestSuite) TestCreateMethodDetail_Success() {
	ctx := context.Background()
	methodID := uuid.NewString()
	req := dto.CreateMethodDetailRequest{MethodID: methodID, OwnerName: "House Ops", Handle: "ES91-0000"}
	method := &domain.FinancialMethod{MethodID: methodID, IsActive: true}

	suite.mockRepo.On("FindMethodByID", ctx, methodID).Return(method, nil).Once()
	suite.mockRepo.On("SaveMethodDetail", ctx, mock.MatchedBy(func(d domain.FinancialMethodDetail) bool {
		return d.MethodID == methodID && d.Handle == "ES91-0000" && d.IsActive && !d.DeactivatedByCascade
	})).Return(nil).Once()

	detail, err := suite.service.CreateMethodDetail(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(detail)
	suite.Equal(methodID, detail.MethodID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MethodServiceTestSuite) TestCreateMethodDetail_InactiveMethod() {
	ctx := context.Background()
	methodID := uuid.NewString()
	req := dto.CreateMethodDetailRequest{MethodID: methodID, OwnerName: "Owner", Handle: "h"}
	method := &domain.FinancialMethod{MethodID: methodID, IsActive: false}

	suite.mockRepo.On("FindMethodByID", ctx, methodID).Return(method, nil).Once()

	detail, err := suite.service.CreateMethodDetail(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(detail)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MethodServiceTestSuite) TestDeactivateMethod_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	methodID := uuid.NewString()

	suite.mockRepo.On("DeactivateMethodCascading", ctx, methodID, userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeactivateMethod(ctx, methodID, userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MethodServiceTestSuite) TestReactivateMethod_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	methodID := uuid.NewString()

	suite.mockRepo.On("ReactivateMethodCascading", ctx, methodID, userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.ReactivateMethod(ctx, methodID, userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MethodServiceTestSuite) TestResolveCommission_BothSet() {
	ctx := context.Background()
	methodID := uuid.NewString()
	detailID := uuid.NewString()

	pct, owner, err := suite.service.ResolveCommission(ctx, &methodID, &detailID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.True(pct.IsZero())
	suite.Nil(owner)
}

func (suite *MethodServiceTestSuite) TestResolveCommission_NeitherSet() {
	ctx := context.Background()

	pct, owner, err := suite.service.ResolveCommission(ctx, nil, nil)

	suite.Require().NoError(err)
	suite.True(pct.IsZero())
	suite.Nil(owner)
}

func (suite *MethodServiceTestSuite) TestResolveCommission_MethodDefault() {
	ctx := context.Background()
	methodID := uuid.NewString()
	method := &domain.FinancialMethod{MethodID: methodID, CommissionPct: decimal.NewFromInt(2), IsActive: true}

	suite.mockRepo.On("FindMethodByID", ctx, methodID).Return(method, nil).Once()

	pct, owner, err := suite.service.ResolveCommission(ctx, &methodID, nil)

	suite.Require().NoError(err)
	suite.True(pct.Equal(decimal.NewFromInt(2)))
	suite.Require().NotNil(owner)
	suite.Equal(methodID, *owner)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MethodServiceTestSuite) TestResolveCommission_DetailOverride() {
	ctx := context.Background()
	methodID := uuid.NewString()
	detailID := uuid.NewString()
	override := decimal.NewFromFloat(0.5)
	detail := &domain.FinancialMethodDetail{DetailID: detailID, MethodID: methodID, CommissionPct: &override, IsActive: true}
	method := &domain.FinancialMethod{MethodID: methodID, CommissionPct: decimal.NewFromInt(2), IsActive: true}

	suite.mockRepo.On("FindMethodDetailByID", ctx, detailID).Return(detail, nil).Once()
	suite.mockRepo.On("FindMethodByID", ctx, methodID).Return(method, nil).Once()

	pct, owner, err := suite.service.ResolveCommission(ctx, nil, &detailID)

	suite.Require().NoError(err)
	suite.True(pct.Equal(override))
	suite.Require().NotNil(owner)
	suite.Equal(methodID, *owner)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MethodServiceTestSuite) TestResolveCommission_DetailFallsBackToMethod() {
	ctx := context.Background()
	methodID := uuid.NewString()
	detailID := uuid.NewString()
	detail := &domain.FinancialMethodDetail{DetailID: detailID, MethodID: methodID, IsActive: true}
	method := &domain.FinancialMethod{MethodID: methodID, CommissionPct: decimal.NewFromInt(3), IsActive: true}

	suite.mockRepo.On("FindMethodDetailByID", ctx, detailID).Return(detail, nil).Once()
	suite.mockRepo.On("FindMethodByID", ctx, methodID).Return(method, nil).Once()

	pct, _, err := suite.service.ResolveCommission(ctx, nil, &detailID)

	suite.Require().NoError(err)
	suite.True(pct.Equal(decimal.NewFromInt(3)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MethodServiceTestSuite) TestResolveCommission_InactiveDetail() {
	ctx := context.Background()
	detailID := uuid.NewString()
	detail := &domain.FinancialMethodDetail{DetailID: detailID, MethodID: uuid.NewString(), IsActive: false}

	suite.mockRepo.On("FindMethodDetailByID", ctx, detailID).Return(detail, nil).Once()

	_, _, err := suite.service.ResolveCommission(ctx, nil, &detailID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrMethodUnavailable)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MethodServiceTestSuite) TestResolveCommission_InactiveMethodBehindDetail() {
	ctx := context.Background()
	methodID := uuid.NewString()
	detailID := uuid.NewString()
	detail := &domain.FinancialMethodDetail{DetailID: detailID, MethodID: methodID, IsActive: true}
	method := &domain.FinancialMethod{MethodID: methodID, IsActive: false}

	suite.mockRepo.On("FindMethodDetailByID", ctx, detailID).Return(detail, nil).Once()
	suite.mockRepo.On("FindMethodByID", ctx, methodID).Return(method, nil).Once()

	_, _, err := suite.service.ResolveCommission(ctx, nil, &detailID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrMethodUnavailable)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MethodServiceTestSuite) TestResolveCommission_UnknownMethod() {
	ctx := context.Background()
	methodID := uuid.NewString()

	suite.mockRepo.On("FindMethodByID", ctx, methodID).Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := suite.service.ResolveCommission(ctx, &methodID, nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrMethodUnavailable)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestMethodService(t *testing.T) {
	suite.Run(t, new(MethodServiceTestSuite))
}
