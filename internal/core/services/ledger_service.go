package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizfolio/portal_backend/internal/apperrors"
	"github.com/bizfolio/portal_backend/internal/core/domain"
	portsrepo "github.com/bizfolio/portal_backend/internal/core/ports/repositories"
	portssvc "github.com/bizfolio/portal_backend/internal/core/ports/services"
	"github.com/bizfolio/portal_backend/internal/dto"
)

const dateOnly = "2006-01-02"

// ledgerService implements creation and range listing of the four ledger
// entry kinds.
type ledgerService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepositoryFacade
	now        func() time.Time
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// NewLedgerService creates a new ledger entry service.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		ledgerRepo: ledgerRepo,
		now:        time.Now,
	}
}

func parseEntryDate(raw string) (time.Time, error) {
	date, err := time.ParseInLocation(dateOnly, raw, time.UTC)
	if err != nil {
		return time.Time{}, apperrors.NewBadRequestError("date must be in YYYY-MM-DD format")
	}
	return date, nil
}

func requirePositive(amount decimal.Decimal, field string) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return apperrors.NewBadRequestError(field + " must be greater than zero")
	}
	return nil
}

func (s *ledgerService) newAuditFields(creatorUserID string) domain.AuditFields {
	now := s.now().UTC()
	return domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}
}

func (s *ledgerService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error) {
	date, err := parseEntryDate(req.Date)
	if err != nil {
		return nil, err
	}
	if err := requirePositive(req.Amount, "amount"); err != nil {
		return nil, err
	}

	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		UserID:      creatorUserID,
		Date:        date,
		Description: req.Description,
		Category:    req.Category,
		Amount:      req.Amount,
		AuditFields: s.newAuditFields(creatorUserID),
	}

	if err := s.ledgerRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense")
		return nil, apperrors.NewInternalServerError("failed to save expense")
	}

	s.LogInfo(ctx, "Expense created", "expense_id", expense.ExpenseID)
	return &expense, nil
}

func (s *ledgerService) CreateIncomeEntry(ctx context.Context, req dto.CreateIncomeEntryRequest, creatorUserID string) (*domain.IncomeEntry, error) {
	date, err := parseEntryDate(req.Date)
	if err != nil {
		return nil, err
	}
	if err := requirePositive(req.Amount, "amount"); err != nil {
		return nil, err
	}

	entry := domain.IncomeEntry{
		IncomeID:    uuid.NewString(),
		UserID:      creatorUserID,
		Date:        date,
		Description: req.Description,
		Source:      req.Source,
		Amount:      req.Amount,
		AuditFields: s.newAuditFields(creatorUserID),
	}

	if err := s.ledgerRepo.SaveIncomeEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save income entry")
		return nil, apperrors.NewInternalServerError("failed to save income entry")
	}

	s.LogInfo(ctx, "Income entry created", "income_id", entry.IncomeID)
	return &entry, nil
}

func (s *ledgerService) CreateTaxItem(ctx context.Context, req dto.CreateTaxItemRequest, creatorUserID string) (*domain.TaxItem, error) {
	date, err := parseEntryDate(req.Date)
	if err != nil {
		return nil, err
	}
	if err := requirePositive(req.Amount, "amount"); err != nil {
		return nil, err
	}

	item := domain.TaxItem{
		TaxItemID:   uuid.NewString(),
		UserID:      creatorUserID,
		Date:        date,
		Description: req.Description,
		TaxType:     req.TaxType,
		Amount:      req.Amount,
		AuditFields: s.newAuditFields(creatorUserID),
	}

	if err := s.ledgerRepo.SaveTaxItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to save tax item")
		return nil, apperrors.NewInternalServerError("failed to save tax item")
	}

	s.LogInfo(ctx, "Tax item created", "tax_item_id", item.TaxItemID)
	return &item, nil
}

func (s *ledgerService) CreateMileageLog(ctx context.Context, req dto.CreateMileageLogRequest, creatorUserID string) (*domain.MileageLog, error) {
	date, err := parseEntryDate(req.Date)
	if err != nil {
		return nil, err
	}
	if err := requirePositive(req.Miles, "miles"); err != nil {
		return nil, err
	}
	if req.Rate != nil && req.Rate.IsNegative() {
		return nil, apperrors.NewBadRequestError("rate must not be negative")
	}

	log := domain.MileageLog{
		MileageID:   uuid.NewString(),
		UserID:      creatorUserID,
		Date:        date,
		Description: req.Description,
		Miles:       req.Miles,
		Rate:        req.Rate,
		AuditFields: s.newAuditFields(creatorUserID),
	}

	if err := s.ledgerRepo.SaveMileageLog(ctx, log); err != nil {
		s.LogError(ctx, err, "Failed to save mileage log")
		return nil, apperrors.NewInternalServerError("failed to save mileage log")
	}

	s.LogInfo(ctx, "Mileage log created", "mileage_id", log.MileageID)
	return &log, nil
}

func validateRange(from, to time.Time) error {
	if to.Before(from) {
		return apperrors.NewBadRequestError("to date must not be before from date")
	}
	return nil
}

func (s *ledgerService) ListExpenses(ctx context.Context, from, to time.Time, userID string) ([]domain.Expense, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	return s.ledgerRepo.ListExpenses(ctx, from, to, userID)
}

func (s *ledgerService) ListIncomeEntries(ctx context.Context, from, to time.Time, userID string) ([]domain.IncomeEntry, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	return s.ledgerRepo.ListIncomeEntries(ctx, from, to, userID)
}

func (s *ledgerService) ListTaxItems(ctx context.Context, from, to time.Time, userID string) ([]domain.TaxItem, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	return s.ledgerRepo.ListTaxItems(ctx, from, to, userID)
}

func (s *ledgerService) ListMileageLogs(ctx context.Context, from, to time.Time, userID string) ([]domain.MileageLog, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	return s.ledgerRepo.ListMileageLogs(ctx, from, to, userID)
}
