package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bizfolio/portal_backend/internal/apperrors"
	"github.com/bizfolio/portal_backend/internal/core/domain"
	portssvc "github.com/bizfolio/portal_backend/internal/core/ports/services"
	"github.com/bizfolio/portal_backend/internal/core/services"
	"github.com/bizfolio/portal_backend/internal/dto"
)

// --- Mock OrderRepository (reader + writer) ---
type MockOrderRepository struct {
	MockOrderReader
}

func (m *MockOrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

// --- Test Suite ---
type OrderServiceTestSuite struct {
	suite.Suite
	mockRepo *MockOrderRepository
	service  portssvc.OrderSvcFacade
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockOrderRepository)
	suite.service = services.NewOrderService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *OrderServiceTestSuite) TestCreateOrder_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateOrderRequest{
		ProductName: "Custom decal set",
		Quantity:    3,
		TotalAmount: decimal.NewFromFloat(74.99),
	}

	suite.mockRepo.On("SaveOrder", ctx, mock.MatchedBy(func(o domain.Order) bool {
		return o.UserID == userID &&
			o.Status == domain.OrderPending &&
			o.TotalAmount != nil && o.TotalAmount.Equal(req.TotalAmount) &&
			o.Amount == nil && o.Price == nil
	})).Return(nil).Once()

	order, err := suite.service.CreateOrder(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(order)
	suite.NotEmpty(order.OrderID)
	suite.Equal(req.ProductName, order.ProductName)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestGetOrder_OwnerAllowed() {
	ctx := context.Background()
	owner := &domain.User{UserID: uuid.NewString()}
	stored := &domain.Order{OrderID: uuid.NewString(), UserID: owner.UserID}
	suite.mockRepo.On("FindOrderByID", ctx, stored.OrderID).Return(stored, nil).Once()

	order, err := suite.service.GetOrder(ctx, stored.OrderID, owner)

	suite.Require().NoError(err)
	suite.Equal(stored.OrderID, order.OrderID)
}

func (suite *OrderServiceTestSuite) TestGetOrder_StrangerForbidden() {
	ctx := context.Background()
	stranger := &domain.User{UserID: uuid.NewString()}
	stored := &domain.Order{OrderID: uuid.NewString(), UserID: uuid.NewString()}
	suite.mockRepo.On("FindOrderByID", ctx, stored.OrderID).Return(stored, nil).Once()

	order, err := suite.service.GetOrder(ctx, stored.OrderID, stranger)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(order)
}

func (suite *OrderServiceTestSuite) TestGetOrder_AdminAllowed() {
	ctx := context.Background()
	admin := &domain.User{UserID: uuid.NewString(), IsAdmin: true}
	stored := &domain.Order{OrderID: uuid.NewString(), UserID: uuid.NewString()}
	suite.mockRepo.On("FindOrderByID", ctx, stored.OrderID).Return(stored, nil).Once()

	order, err := suite.service.GetOrder(ctx, stored.OrderID, admin)

	suite.Require().NoError(err)
	suite.Equal(stored.OrderID, order.OrderID)
}

func (suite *OrderServiceTestSuite) TestListUserOrders_ClampsLimit() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("ListOrdersByUser", ctx, userID, 100, (*string)(nil)).Return([]domain.Order{}, nil, nil).Once()

	_, _, err := suite.service.ListUserOrders(ctx, userID, 5000, nil)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestListUserOrders_DefaultsLimit() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("ListOrdersByUser", ctx, userID, 20, (*string)(nil)).Return([]domain.Order{}, nil, nil).Once()

	_, _, err := suite.service.ListUserOrders(ctx, userID, 0, nil)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
