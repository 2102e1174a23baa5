package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bizfolio/portal_backend/internal/core/domain"
	portssvc "github.com/bizfolio/portal_backend/internal/core/ports/services"
	"github.com/bizfolio/portal_backend/internal/core/services"
)

// --- Mock LedgerReader ---
type MockLedgerReader struct {
	mock.Mock
}

func (m *MockLedgerReader) ListExpenses(ctx context.Context, from, to time.Time, userID string) ([]domain.Expense, error) {
	args := m.Called(ctx, from, to, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockLedgerReader) ListIncomeEntries(ctx context.Context, from, to time.Time, userID string) ([]domain.IncomeEntry, error) {
	args := m.Called(ctx, from, to, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.IncomeEntry), args.Error(1)
}

func (m *MockLedgerReader) ListTaxItems(ctx context.Context, from, to time.Time, userID string) ([]domain.TaxItem, error) {
	args := m.Called(ctx, from, to, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaxItem), args.Error(1)
}

func (m *MockLedgerReader) ListMileageLogs(ctx context.Context, from, to time.Time, userID string) ([]domain.MileageLog, error) {
	args := m.Called(ctx, from, to, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MileageLog), args.Error(1)
}

// --- Mock OrderReader ---
type MockOrderReader struct {
	mock.Mock
}

func (m *MockOrderReader) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderReader) ListOrdersByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Order, *string, error) {
	args := m.Called(ctx, userID, limit, nextToken)
	var orders []domain.Order
	if args.Get(0) != nil {
		orders = args.Get(0).([]domain.Order)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return orders, token, args.Error(2)
}

func (m *MockOrderReader) SumOrdersRevenueInRange(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Test Suite ---
type FinanceServiceTestSuite struct {
	suite.Suite
	mockLedger *MockLedgerReader
	mockOrders *MockOrderReader
	service    portssvc.FinanceSvcFacade
	from       time.Time
	to         time.Time
}

func (suite *FinanceServiceTestSuite) SetupTest() {
	suite.mockLedger = new(MockLedgerReader)
	suite.mockOrders = new(MockOrderReader)
	suite.service = services.NewFinanceService(suite.mockLedger, suite.mockOrders)
	suite.from = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	suite.to = time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
}

func (suite *FinanceServiceTestSuite) expectLedger(expenses []domain.Expense, income []domain.IncomeEntry, taxes []domain.TaxItem, mileage []domain.MileageLog) {
	suite.mockLedger.On("ListExpenses", mock.Anything, suite.from, suite.to, mock.Anything).Return(expenses, nil).Once()
	suite.mockLedger.On("ListIncomeEntries", mock.Anything, suite.from, suite.to, mock.Anything).Return(income, nil).Once()
	suite.mockLedger.On("ListTaxItems", mock.Anything, suite.from, suite.to, mock.Anything).Return(taxes, nil).Once()
	suite.mockLedger.On("ListMileageLogs", mock.Anything, suite.from, suite.to, mock.Anything).Return(mileage, nil).Once()
}

// --- Test Cases ---

func (suite *FinanceServiceTestSuite) TestSummarizeFinance_Success() {
	ctx := context.Background()

	expenses := []domain.Expense{
		{ExpenseID: "e1", Amount: decimal.NewFromInt(20)},
		{ExpenseID: "e2", Amount: decimal.NewFromInt(30)},
	}
	income := []domain.IncomeEntry{
		{IncomeID: "i1", Amount: decimal.NewFromInt(100)},
	}
	taxes := []domain.TaxItem{
		{TaxItemID: "t1", Amount: decimal.NewFromInt(15)},
	}
	rate := decimal.NewFromFloat(0.5)
	mileage := []domain.MileageLog{
		{MileageID: "m1", Miles: decimal.NewFromInt(10), Rate: &rate},
	}

	suite.expectLedger(expenses, income, taxes, mileage)
	suite.mockOrders.On("SumOrdersRevenueInRange", mock.Anything, suite.from, suite.to).Return(decimal.NewFromInt(200), nil).Once()

	summary, err := suite.service.SummarizeFinance(ctx, suite.from, suite.to, domain.SummarizeOptions{})

	suite.Require().NoError(err)
	suite.Require().NotNil(summary)
	suite.True(summary.ExpenseTotal.Equal(decimal.NewFromInt(50)), "expenseTotal = %s", summary.ExpenseTotal)
	suite.True(summary.IncomeTotal.Equal(decimal.NewFromInt(100)), "incomeTotal = %s", summary.IncomeTotal)
	suite.True(summary.TaxesTotal.Equal(decimal.NewFromInt(15)), "taxesTotal = %s", summary.TaxesTotal)
	suite.True(summary.MileageCost.Equal(decimal.NewFromInt(5)), "mileageCost = %s", summary.MileageCost)
	suite.True(summary.StripeRevenue.Equal(decimal.NewFromInt(200)), "stripeRevenue = %s", summary.StripeRevenue)
	suite.True(summary.TotalIncome.Equal(decimal.NewFromInt(300)), "totalIncome = %s", summary.TotalIncome)
	suite.True(summary.Net.Equal(decimal.NewFromInt(230)), "net = %s", summary.Net)

	suite.mockLedger.AssertExpectations(suite.T())
	suite.mockOrders.AssertExpectations(suite.T())
}

func (suite *FinanceServiceTestSuite) TestSummarizeFinance_EmptyRange() {
	ctx := context.Background()

	suite.expectLedger([]domain.Expense{}, []domain.IncomeEntry{}, []domain.TaxItem{}, []domain.MileageLog{})
	suite.mockOrders.On("SumOrdersRevenueInRange", mock.Anything, suite.from, suite.to).Return(decimal.Zero, nil).Once()

	summary, err := suite.service.SummarizeFinance(ctx, suite.from, suite.to, domain.SummarizeOptions{})

	suite.Require().NoError(err)
	suite.True(summary.ExpenseTotal.IsZero())
	suite.True(summary.TotalIncome.IsZero())
	suite.True(summary.Net.IsZero())
}

func (suite *FinanceServiceTestSuite) TestSummarizeFinance_RevenueFailureDegradesToZero() {
	ctx := context.Background()

	income := []domain.IncomeEntry{
		{IncomeID: "i1", Amount: decimal.NewFromInt(100)},
	}

	suite.expectLedger([]domain.Expense{}, income, []domain.TaxItem{}, []domain.MileageLog{})
	suite.mockOrders.On("SumOrdersRevenueInRange", mock.Anything, suite.from, suite.to).Return(decimal.Zero, errors.New("order store unavailable")).Once()

	summary, err := suite.service.SummarizeFinance(ctx, suite.from, suite.to, domain.SummarizeOptions{})

	suite.Require().NoError(err, "revenue failure must not abort the summary")
	suite.True(summary.StripeRevenue.IsZero())
	suite.True(summary.TotalIncome.Equal(decimal.NewFromInt(100)))
	suite.True(summary.Net.Equal(decimal.NewFromInt(100)))
}

func (suite *FinanceServiceTestSuite) TestSummarizeFinance_LedgerFailureAborts() {
	ctx := context.Background()

	suite.mockLedger.On("ListExpenses", mock.Anything, suite.from, suite.to, mock.Anything).Return(nil, errors.New("db down")).Once()
	suite.mockLedger.On("ListIncomeEntries", mock.Anything, suite.from, suite.to, mock.Anything).Return([]domain.IncomeEntry{}, nil).Maybe()
	suite.mockLedger.On("ListTaxItems", mock.Anything, suite.from, suite.to, mock.Anything).Return([]domain.TaxItem{}, nil).Maybe()
	suite.mockLedger.On("ListMileageLogs", mock.Anything, suite.from, suite.to, mock.Anything).Return([]domain.MileageLog{}, nil).Maybe()
	suite.mockOrders.On("SumOrdersRevenueInRange", mock.Anything, suite.from, suite.to).Return(decimal.Zero, nil).Maybe()

	summary, err := suite.service.SummarizeFinance(ctx, suite.from, suite.to, domain.SummarizeOptions{})

	suite.Require().Error(err)
	suite.Nil(summary)
}

func (suite *FinanceServiceTestSuite) TestSummarizeFinance_MileageRatePrecedence() {
	ctx := context.Background()

	rowRate := decimal.NewFromFloat(0.70)
	override := decimal.NewFromFloat(0.60)
	mileage := []domain.MileageLog{
		{MileageID: "m1", Miles: decimal.NewFromInt(10), Rate: &rowRate}, // 7.00
		{MileageID: "m2", Miles: decimal.NewFromInt(10)},                 // 6.00 via override
	}

	suite.expectLedger([]domain.Expense{}, []domain.IncomeEntry{}, []domain.TaxItem{}, mileage)
	suite.mockOrders.On("SumOrdersRevenueInRange", mock.Anything, suite.from, suite.to).Return(decimal.Zero, nil).Once()

	summary, err := suite.service.SummarizeFinance(ctx, suite.from, suite.to, domain.SummarizeOptions{MileageRate: &override})

	suite.Require().NoError(err)
	suite.True(summary.MileageCost.Equal(decimal.NewFromInt(13)), "mileageCost = %s", summary.MileageCost)
}

func (suite *FinanceServiceTestSuite) TestSummarizeFinance_UserScopePassedToLedgersOnly() {
	ctx := context.Background()
	userID := "user-123"

	suite.mockLedger.On("ListExpenses", mock.Anything, suite.from, suite.to, userID).Return([]domain.Expense{}, nil).Once()
	suite.mockLedger.On("ListIncomeEntries", mock.Anything, suite.from, suite.to, userID).Return([]domain.IncomeEntry{}, nil).Once()
	suite.mockLedger.On("ListTaxItems", mock.Anything, suite.from, suite.to, userID).Return([]domain.TaxItem{}, nil).Once()
	suite.mockLedger.On("ListMileageLogs", mock.Anything, suite.from, suite.to, userID).Return([]domain.MileageLog{}, nil).Once()
	// Revenue stays platform-wide: no userID in this call's signature.
	suite.mockOrders.On("SumOrdersRevenueInRange", mock.Anything, suite.from, suite.to).Return(decimal.NewFromInt(40), nil).Once()

	summary, err := suite.service.SummarizeFinance(ctx, suite.from, suite.to, domain.SummarizeOptions{UserID: userID})

	suite.Require().NoError(err)
	suite.True(summary.StripeRevenue.Equal(decimal.NewFromInt(40)))

	suite.mockLedger.AssertExpectations(suite.T())
	suite.mockOrders.AssertExpectations(suite.T())
}

func (suite *FinanceServiceTestSuite) TestSummarizePeriod_ResolvesRangeWithClock() {
	ctx := context.Background()

	// Wednesday, 2025-06-18.
	fixedNow := time.Date(2025, 6, 18, 15, 4, 5, 0, time.UTC)
	svc := services.NewFinanceService(suite.mockLedger, suite.mockOrders, services.WithClock(func() time.Time { return fixedNow }))

	wantFrom := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	wantTo := time.Date(2025, 6, 22, 0, 0, 0, 0, time.UTC)

	suite.mockLedger.On("ListExpenses", mock.Anything, wantFrom, wantTo, mock.Anything).Return([]domain.Expense{}, nil).Once()
	suite.mockLedger.On("ListIncomeEntries", mock.Anything, wantFrom, wantTo, mock.Anything).Return([]domain.IncomeEntry{}, nil).Once()
	suite.mockLedger.On("ListTaxItems", mock.Anything, wantFrom, wantTo, mock.Anything).Return([]domain.TaxItem{}, nil).Once()
	suite.mockLedger.On("ListMileageLogs", mock.Anything, wantFrom, wantTo, mock.Anything).Return([]domain.MileageLog{}, nil).Once()
	suite.mockOrders.On("SumOrdersRevenueInRange", mock.Anything, wantFrom, wantTo).Return(decimal.Zero, nil).Once()

	summary, dateRange, err := svc.SummarizePeriod(ctx, domain.PeriodWeek, 0, domain.SummarizeOptions{})

	suite.Require().NoError(err)
	suite.Require().NotNil(summary)
	suite.Equal(wantFrom, dateRange.From)
	suite.Equal(wantTo, dateRange.To)

	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *FinanceServiceTestSuite) TestSummarizePeriod_ReferenceYearOverride() {
	ctx := context.Background()

	fixedNow := time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)
	svc := services.NewFinanceService(suite.mockLedger, suite.mockOrders, services.WithClock(func() time.Time { return fixedNow }))

	wantFrom := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	wantTo := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)

	suite.mockLedger.On("ListExpenses", mock.Anything, wantFrom, wantTo, mock.Anything).Return([]domain.Expense{}, nil).Once()
	suite.mockLedger.On("ListIncomeEntries", mock.Anything, wantFrom, wantTo, mock.Anything).Return([]domain.IncomeEntry{}, nil).Once()
	suite.mockLedger.On("ListTaxItems", mock.Anything, wantFrom, wantTo, mock.Anything).Return([]domain.TaxItem{}, nil).Once()
	suite.mockLedger.On("ListMileageLogs", mock.Anything, wantFrom, wantTo, mock.Anything).Return([]domain.MileageLog{}, nil).Once()
	suite.mockOrders.On("SumOrdersRevenueInRange", mock.Anything, wantFrom, wantTo).Return(decimal.Zero, nil).Once()

	_, dateRange, err := svc.SummarizePeriod(ctx, domain.PeriodYear, 2023, domain.SummarizeOptions{})

	suite.Require().NoError(err)
	suite.Equal(wantFrom, dateRange.From)
	suite.Equal(wantTo, dateRange.To)
}

func TestFinanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FinanceServiceTestSuite))
}
