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

// --- Mock ClientRepository ---
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.ClientCategory, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClientCategory), args.Error(1)
}

func (m *MockClientRepository) ListCategories(ctx context.Context) ([]domain.ClientCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClientCategory), args.Error(1)
}

func (m *MockClientRepository) SaveCategory(ctx context.Context, category domain.ClientCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockClientRepository) UpdateCategory(ctx context.Context, category domain.ClientCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockClientRepository) DeactivateCategory(ctx context.Context, categoryID string, userID string, now time.Time) error {
	args := m.Called(ctx, categoryID, userID, now)
	return args.Error(0)
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) ListClients(ctx context.Context, limit int, offset int) ([]domain.Client, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) DeactivateClient(ctx context.Context, clientID string, userID string, now time.Time) error {
	args := m.Called(ctx, clientID, userID, now)
	return args.Error(0)
}

// --- Test Suite ---
type ClientServiceTestSuite struct {
	suite.Suite
	mockRepo *MockClientRepository
	service  portssvc.ClientSvcFacade
}

func (suite *ClientServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockClientRepository)
	suite.service = services.NewClientService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *ClientServiceTestSuite) TestCreateCategory_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateClientCategoryRequest{Name: "VIP", DiscountPct: decimal.NewFromInt(50)}

	suite.mockRepo.On("SaveCategory", ctx, mock.MatchedBy(func(c domain.ClientCategory) bool {
		return c.Name == "VIP" && c.DiscountPct.Equal(req.DiscountPct) && c.IsActive && c.CreatedBy == creatorUserID
	})).Return(nil).Once()

	category, err := suite.service.CreateCategory(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(category)
	suite.Equal("VIP", category.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestCreateCategory_PctOutOfRange() {
	ctx := context.Background()
	req := dto.CreateClientCategoryRequest{Name: "Broken", DiscountPct: decimal.NewFromInt(101)}

	category, err := suite.service.CreateCategory(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(category)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCategory", mock.Anything, mock.Anything)
}

func (suite *ClientServiceTestSuite) TestCreateClient_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	categoryID := uuid.NewString()
	req := dto.CreateClientRequest{Name: "Acme Imports", CategoryID: categoryID}
	category := &domain.ClientCategory{CategoryID: categoryID, IsActive: true}

	suite.mockRepo.On("FindCategoryByID", ctx, categoryID).Return(category, nil).Once()
	suite.mockRepo.On("SaveClient", ctx, mock.MatchedBy(func(c domain.Client) bool {
		return c.Name == req.Name && c.CategoryID == categoryID && c.IsActive
	})).Return(nil).Once()

	client, err := suite.service.CreateClient(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(client)
	suite.Equal(categoryID, client.CategoryID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestCreateClient_UnknownCategory() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	req := dto.CreateClientRequest{Name: "Nobody", CategoryID: categoryID}

	suite.mockRepo.On("FindCategoryByID", ctx, categoryID).Return(nil, apperrors.ErrNotFound).Once()

	client, err := suite.service.CreateClient(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(client)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestCreateClient_InactiveCategory() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	req := dto.CreateClientRequest{Name: "Latecomer", CategoryID: categoryID}
	category := &domain.ClientCategory{CategoryID: categoryID, IsActive: false}

	suite.mockRepo.On("FindCategoryByID", ctx, categoryID).Return(category, nil).Once()

	client, err := suite.service.CreateClient(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(client)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestListClients_ClampsPagination() {
	ctx := context.Background()
	expected := []domain.Client{{ClientID: uuid.NewString()}}

	suite.mockRepo.On("ListClients", ctx, 100, 0).Return(expected, nil).Once()

	clients, err := suite.service.ListClients(ctx, 0, -5)

	suite.Require().NoError(err)
	suite.Equal(expected, clients)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestResolveDiscount_Success() {
	ctx := context.Background()
	clientID := uuid.NewString()
	categoryID := uuid.NewString()
	client := &domain.Client{ClientID: clientID, CategoryID: categoryID, IsActive: true}
	category := &domain.ClientCategory{CategoryID: categoryID, DiscountPct: decimal.NewFromInt(25), IsActive: true}

	suite.mockRepo.On("FindClientByID", ctx, clientID).Return(client, nil).Once()
	suite.mockRepo.On("FindCategoryByID", ctx, categoryID).Return(category, nil).Once()

	discount, err := suite.service.ResolveDiscount(ctx, clientID)

	suite.Require().NoError(err)
	suite.True(discount.Equal(decimal.NewFromInt(25)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestResolveDiscount_UnknownClient() {
	ctx := context.Background()
	clientID := uuid.NewString()

	suite.mockRepo.On("FindClientByID", ctx, clientID).Return(nil, apperrors.ErrNotFound).Once()

	discount, err := suite.service.ResolveDiscount(ctx, clientID)

	suite.Require().Error(err)
	suite.True(discount.IsZero())
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestResolveDiscount_InactiveClient() {
	ctx := context.Background()
	clientID := uuid.NewString()
	client := &domain.Client{ClientID: clientID, IsActive: false}

	suite.mockRepo.On("FindClientByID", ctx, clientID).Return(client, nil).Once()

	discount, err := suite.service.ResolveDiscount(ctx, clientID)

	suite.Require().Error(err)
	suite.True(discount.IsZero())
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestResolveDiscount_InactiveCategory() {
	ctx := context.Background()
	clientID := uuid.NewString()
	categoryID := uuid.NewString()
	client := &domain.Client{ClientID: clientID, CategoryID: categoryID, IsActive: true}
	category := &domain.ClientCategory{CategoryID: categoryID, DiscountPct: decimal.NewFromInt(25), IsActive: false}

	suite.mockRepo.On("FindClientByID", ctx, clientID).Return(client, nil).Once()
	suite.mockRepo.On("FindCategoryByID", ctx, categoryID).Return(category, nil).Once()

	discount, err := suite.service.ResolveDiscount(ctx, clientID)

	// The client can still transact; the discount just stops applying.
	suite.Require().NoError(err)
	suite.True(discount.IsZero())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestResolveDiscount_MissingCategory() {
	ctx := context.Background()
	clientID := uuid.NewString()
	categoryID := uuid.NewString()
	client := &domain.Client{ClientID: clientID, CategoryID: categoryID, IsActive: true}

	suite.mockRepo.On("FindClientByID", ctx, clientID).Return(client, nil).Once()
	suite.mockRepo.On("FindCategoryByID", ctx, categoryID).Return(nil, apperrors.ErrNotFound).Once()

	discount, err := suite.service.ResolveDiscount(ctx, clientID)

	suite.Require().NoError(err)
	suite.True(discount.IsZero())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestDeactivateClient_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	clientID := uuid.NewString()

	suite.mockRepo.On("DeactivateClient", ctx, clientID, userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeactivateClient(ctx, clientID, userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestClientService(t *testing.T) {
	suite.Run(t, new(ClientServiceTestSuite))
}
