package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bizfolio/portal_backend/internal/apperrors"
	"github.com/bizfolio/portal_backend/internal/core/domain"
	portssvc "github.com/bizfolio/portal_backend/internal/core/ports/services"
	"github.com/bizfolio/portal_backend/internal/dto"
	"github.com/bizfolio/portal_backend/internal/handlers"
	"github.com/bizfolio/portal_backend/internal/middleware"
	"github.com/bizfolio/portal_backend/internal/platform/config"
)

// --- Mock FinanceService ---
type MockFinanceService struct {
	mock.Mock
}

func (m *MockFinanceService) SummarizePeriod(ctx context.Context, period domain.Period, referenceYear int, opts domain.SummarizeOptions) (*domain.FinanceSummary, domain.DateRange, error) {
	args := m.Called(ctx, period, referenceYear, opts)
	if args.Get(0) == nil {
		return nil, domain.DateRange{}, args.Error(2)
	}
	return args.Get(0).(*domain.FinanceSummary), args.Get(1).(domain.DateRange), args.Error(2)
}

func (m *MockFinanceService) SummarizeFinance(ctx context.Context, from, to time.Time, opts domain.SummarizeOptions) (*domain.FinanceSummary, error) {
	args := m.Called(ctx, from, to, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinanceSummary), args.Error(1)
}

var _ portssvc.FinanceSvcFacade = (*MockFinanceService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error) {
	args := m.Called(ctx, userID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, userID string, deleterUserID string) error {
	args := m.Called(ctx, userID, deleterUserID)
	return args.Error(0)
}

func (m *MockUserService) FindOrCreateProviderUser(ctx context.Context, provider domain.AuthProvider, providerUserID, email, name string) (*domain.User, error) {
	args := m.Called(ctx, provider, providerUserID, email, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Test Suite ---
type FinanceHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockFinanceService *MockFinanceService
	mockUserService    *MockUserService
	jwtSecret          string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *FinanceHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "portal-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tsignedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return tsignedString
}

func (suite *FinanceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockFinanceService = new(MockFinanceService)
	suite.mockUserService = new(MockUserService)

	cfg := &config.Config{}
	v1 := suite.router.Group("/api/v1")
	handlers.RegisterFinanceRoutes(v1, cfg, suite.mockFinanceService, suite.mockUserService)
}

func (suite *FinanceHandlerTestSuite) adminUser(userID string) *domain.User {
	return &domain.User{
		UserID:  userID,
		Name:    "Admin",
		IsAdmin: true,
	}
}

// --- Test Cases ---

func (suite *FinanceHandlerTestSuite) TestGetSummary_Success() {
	adminID := uuid.NewString()
	suite.mockUserService.On("GetUserByID", mock.Anything, adminID).Return(suite.adminUser(adminID), nil).Once()

	summary := &domain.FinanceSummary{
		ExpenseTotal:  decimal.NewFromInt(50),
		IncomeTotal:   decimal.NewFromInt(100),
		TaxesTotal:    decimal.NewFromInt(15),
		MileageCost:   decimal.NewFromInt(5),
		StripeRevenue: decimal.NewFromInt(200),
		TotalIncome:   decimal.NewFromInt(300),
		Net:           decimal.NewFromInt(230),
	}
	dateRange := domain.DateRange{
		From: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	}

	suite.mockFinanceService.On("SummarizePeriod", mock.Anything, domain.PeriodMonth, 0, mock.MatchedBy(func(opts domain.SummarizeOptions) bool {
		return opts.UserID == "" && opts.MileageRate == nil
	})).Return(summary, dateRange, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/finance/summary?period=month", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(adminID))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.FinanceSummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2025-06-01", resp.FromDate)
	suite.Equal("2025-06-30", resp.ToDate)
	suite.True(resp.Totals.Net.Equal(decimal.NewFromInt(230)))
	suite.True(resp.Totals.TotalIncome.Equal(decimal.NewFromInt(300)))

	suite.mockFinanceService.AssertExpectations(suite.T())
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *FinanceHandlerTestSuite) TestGetSummary_PassesYearAndScope() {
	adminID := uuid.NewString()
	suite.mockUserService.On("GetUserByID", mock.Anything, adminID).Return(suite.adminUser(adminID), nil).Once()

	summary := &domain.FinanceSummary{}
	dateRange := domain.DateRange{
		From: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
	}

	suite.mockFinanceService.On("SummarizePeriod", mock.Anything, domain.PeriodYear, 2023, mock.MatchedBy(func(opts domain.SummarizeOptions) bool {
		return opts.UserID == "user-42" && opts.MileageRate != nil && opts.MileageRate.Equal(decimal.NewFromFloat(0.60))
	})).Return(summary, dateRange, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/finance/summary?period=year&year=2023&userID=user-42&mileageRate=0.60", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(adminID))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockFinanceService.AssertExpectations(suite.T())
}

func (suite *FinanceHandlerTestSuite) TestGetSummary_InvalidPeriodRejected() {
	adminID := uuid.NewString()
	suite.mockUserService.On("GetUserByID", mock.Anything, adminID).Return(suite.adminUser(adminID), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/finance/summary?period=fortnight", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(adminID))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockFinanceService.AssertNotCalled(suite.T(), "SummarizePeriod")
}

func (suite *FinanceHandlerTestSuite) TestGetSummary_NonAdminForbidden() {
	userID := uuid.NewString()
	nonAdmin := &domain.User{UserID: userID, Name: "Customer"}
	suite.mockUserService.On("GetUserByID", mock.Anything, userID).Return(nonAdmin, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/finance/summary?period=month", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockFinanceService.AssertNotCalled(suite.T(), "SummarizePeriod")
}

func (suite *FinanceHandlerTestSuite) TestGetSummary_UnknownUserUnauthorized() {
	userID := uuid.NewString()
	suite.mockUserService.On("GetUserByID", mock.Anything, userID).Return(nil, apperrors.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/finance/summary?period=month", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockFinanceService.AssertNotCalled(suite.T(), "SummarizePeriod")
}

func (suite *FinanceHandlerTestSuite) TestGetSummary_UserLookupFailureIsServerError() {
	userID := uuid.NewString()
	suite.mockUserService.On("GetUserByID", mock.Anything, userID).Return(nil, errors.New("connection refused")).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/finance/summary?period=month", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.mockFinanceService.AssertNotCalled(suite.T(), "SummarizePeriod")
}

func (suite *FinanceHandlerTestSuite) TestGetSummary_NoToken() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/finance/summary?period=month", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func TestFinanceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(FinanceHandlerTestSuite))
}
