package services

import (
	"context"
	"time"

	"github.com/bizfolio/portal_backend/internal/core/domain"
)

// FinanceSvcFacade defines the period finance aggregation operations behind
// the admin dashboard.
type FinanceSvcFacade interface {
	// SummarizePeriod resolves the calendar range for the period (optionally
	// re-anchored to referenceYear) and summarizes it. The resolved range is
	// returned alongside the summary so callers can echo it back.
	SummarizePeriod(ctx context.Context, period domain.Period, referenceYear int, opts domain.SummarizeOptions) (*domain.FinanceSummary, domain.DateRange, error)

	// SummarizeFinance fetches the four ledgers and order revenue for the
	// inclusive date range and reduces them into a summary. Ledger fetch
	// failures abort the summary; revenue failures degrade to zero.
	SummarizeFinance(ctx context.Context, from, to time.Time, opts domain.SummarizeOptions) (*domain.FinanceSummary, error)
}
