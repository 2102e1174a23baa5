package repositories

import (
	"context"
	"time"

	"github.com/bizfolio/portal_backend/internal/core/domain"
)

// LedgerReader defines the range-filtered read operations the finance
// aggregation depends on. Bounds are inclusive calendar dates; userID is an
// optional scope (empty string matches all users). Implementations return
// rows ordered by date descending and an empty slice, never nil, when
// nothing matches.
type LedgerReader interface {
	ListExpenses(ctx context.Context, from, to time.Time, userID string) ([]domain.Expense, error)
	ListIncomeEntries(ctx context.Context, from, to time.Time, userID string) ([]domain.IncomeEntry, error)
	ListTaxItems(ctx context.Context, from, to time.Time, userID string) ([]domain.TaxItem, error)
	ListMileageLogs(ctx context.Context, from, to time.Time, userID string) ([]domain.MileageLog, error)
}

// LedgerWriter defines the create operations behind the portal entry forms.
// Ledger entries are immutable once created; there are no update or delete
// operations.
type LedgerWriter interface {
	SaveExpense(ctx context.Context, expense domain.Expense) error
	SaveIncomeEntry(ctx context.Context, entry domain.IncomeEntry) error
	SaveTaxItem(ctx context.Context, item domain.TaxItem) error
	SaveMileageLog(ctx context.Context, log domain.MileageLog) error
}

// LedgerRepositoryFacade combines all ledger repository interfaces.
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
