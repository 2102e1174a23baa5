package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/bizfolio/portal_backend/internal/apperrors"
	"github.com/bizfolio/portal_backend/internal/core/domain"
	portsrepo "github.com/bizfolio/portal_backend/internal/core/ports/repositories"
	portssvc "github.com/bizfolio/portal_backend/internal/core/ports/services"
	"github.com/bizfolio/portal_backend/internal/utils/accounting"
)

// financeService aggregates ledger data and order revenue into period
// summaries for the admin dashboard.
type financeService struct {
	BaseService
	ledgerRepo portsrepo.LedgerReader
	orderRepo  portsrepo.OrderReader
	now        func() time.Time
}

var _ portssvc.FinanceSvcFacade = (*financeService)(nil)

// FinanceServiceOption configures a financeService.
type FinanceServiceOption func(*financeService)

// WithClock overrides the service's notion of the current time. Used in tests
// and anywhere summaries must be reproducible.
func WithClock(now func() time.Time) FinanceServiceOption {
	return func(s *financeService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewFinanceService creates a new finance aggregation service.
func NewFinanceService(ledgerRepo portsrepo.LedgerReader, orderRepo portsrepo.OrderReader, opts ...FinanceServiceOption) portssvc.FinanceSvcFacade {
	s := &financeService{
		ledgerRepo: ledgerRepo,
		orderRepo:  orderRepo,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SummarizePeriod resolves the calendar range for the period and summarizes
// it. Unrecognized periods have already fallen back to a year at parse time;
// the same fallback applies here for any value constructed directly.
func (s *financeService) SummarizePeriod(ctx context.Context, period domain.Period, referenceYear int, opts domain.SummarizeOptions) (*domain.FinanceSummary, domain.DateRange, error) {
	dateRange := period.RangeAt(s.now().UTC(), referenceYear)

	s.LogDebug(ctx, "Resolved summary range",
		slog.String("period", string(period)),
		slog.Int("reference_year", referenceYear),
		slog.Time("from", dateRange.From),
		slog.Time("to", dateRange.To))

	summary, err := s.SummarizeFinance(ctx, dateRange.From, dateRange.To, opts)
	if err != nil {
		return nil, domain.DateRange{}, err
	}
	return summary, dateRange, nil
}

// SummarizeFinance fetches the four ledgers and order revenue concurrently
// and reduces them into a FinanceSummary. A failure on any ledger fetch
// aborts the whole summary; a failure on the revenue fetch is logged and
// degrades that figure to zero so dashboards stay usable when the order
// store is down.
func (s *financeService) SummarizeFinance(ctx context.Context, from, to time.Time, opts domain.SummarizeOptions) (*domain.FinanceSummary, error) {
	var (
		expenses []domain.Expense
		income   []domain.IncomeEntry
		taxItems []domain.TaxItem
		mileage  []domain.MileageLog
		revenue  decimal.Decimal
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		expenses, err = s.ledgerRepo.ListExpenses(gCtx, from, to, opts.UserID)
		return err
	})
	g.Go(func() error {
		var err error
		income, err = s.ledgerRepo.ListIncomeEntries(gCtx, from, to, opts.UserID)
		return err
	})
	g.Go(func() error {
		var err error
		taxItems, err = s.ledgerRepo.ListTaxItems(gCtx, from, to, opts.UserID)
		return err
	})
	g.Go(func() error {
		var err error
		mileage, err = s.ledgerRepo.ListMileageLogs(gCtx, from, to, opts.UserID)
		return err
	})
	g.Go(func() error {
		rev, err := s.orderRepo.SumOrdersRevenueInRange(gCtx, from, to)
		if err != nil {
			// Order revenue is supplementary; a broken order store must not
			// take the whole dashboard down with it.
			s.LogError(ctx, err, "Failed to sum order revenue, degrading to zero",
				slog.Time("from", from),
				slog.Time("to", to))
			revenue = decimal.Zero
			return nil
		}
		revenue = rev
		return nil
	})

	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to fetch ledger data for summary")
		return nil, apperrors.NewInternalServerError("failed to fetch ledger data")
	}

	summary := &domain.FinanceSummary{
		StripeRevenue: revenue,
	}

	expenseTotal := decimal.Zero
	for _, e := range expenses {
		expenseTotal = expenseTotal.Add(e.Amount)
	}
	summary.ExpenseTotal = expenseTotal

	incomeTotal := decimal.Zero
	for _, entry := range income {
		incomeTotal = incomeTotal.Add(entry.Amount)
	}
	summary.IncomeTotal = incomeTotal

	taxesTotal := decimal.Zero
	for _, item := range taxItems {
		taxesTotal = taxesTotal.Add(item.Amount)
	}
	summary.TaxesTotal = taxesTotal

	summary.MileageCost = accounting.MileageCost(mileage, opts.MileageRate)

	summary.TotalIncome = summary.IncomeTotal.Add(summary.StripeRevenue)
	summary.Net = summary.TotalIncome.Sub(summary.ExpenseTotal).Sub(summary.TaxesTotal).Sub(summary.MileageCost)

	s.LogInfo(ctx, "Finance summary computed",
		slog.Time("from", from),
		slog.Time("to", to),
		slog.String("user_id", opts.UserID),
		slog.String("net", summary.Net.String()))

	return summary, nil
}
