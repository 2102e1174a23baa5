package services

import (
	"context"
	"time"

	"github.com/bizfolio/portal_backend/internal/core/domain"
	"github.com/bizfolio/portal_backend/internal/dto"
)

// LedgerSvcFacade defines operations for recording and listing the four
// ledger entry kinds. Entries are immutable once created.
type LedgerSvcFacade interface {
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error)
	CreateIncomeEntry(ctx context.Context, req dto.CreateIncomeEntryRequest, creatorUserID string) (*domain.IncomeEntry, error)
	CreateTaxItem(ctx context.Context, req dto.CreateTaxItemRequest, creatorUserID string) (*domain.TaxItem, error)
	CreateMileageLog(ctx context.Context, req dto.CreateMileageLogRequest, creatorUserID string) (*domain.MileageLog, error)

	ListExpenses(ctx context.Context, from, to time.Time, userID string) ([]domain.Expense, error)
	ListIncomeEntries(ctx context.Context, from, to time.Time, userID string) ([]domain.IncomeEntry, error)
	ListTaxItems(ctx context.Context, from, to time.Time, userID string) ([]domain.TaxItem, error)
	ListMileageLogs(ctx context.Context, from, to time.Time, userID string) ([]domain.MileageLog, error)
}
