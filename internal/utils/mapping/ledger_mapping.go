package mapping

import (
	"github.com/bizfolio/portal_backend/internal/core/domain"
	"github.com/bizfolio/portal_backend/internal/models"
	"github.com/shopspring/decimal"
)

// nullableAmount degrades a NULL or unreadable amount to zero. Dirty rows
// must not abort an aggregation; they just stop contributing.
func nullableAmount(n decimal.NullDecimal) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}
	return n.Decimal
}

// ToModelExpense converts a domain Expense to its model form.
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:   d.ExpenseID,
		UserID:      d.UserID,
		Date:        d.Date,
		Description: d.Description,
		Category:    d.Category,
		Amount:      decimal.NullDecimal{Decimal: d.Amount, Valid: true},
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpense converts a model Expense to its domain form.
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:   m.ExpenseID,
		UserID:      m.UserID,
		Date:        m.Date,
		Description: m.Description,
		Category:    m.Category,
		Amount:      nullableAmount(m.Amount),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainExpenseSlice converts a slice of model Expenses to domain form.
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}

// ToModelIncomeEntry converts a domain IncomeEntry to its model form.
func ToModelIncomeEntry(d domain.IncomeEntry) models.IncomeEntry {
	return models.IncomeEntry{
		IncomeID:    d.IncomeID,
		UserID:      d.UserID,
		Date:        d.Date,
		Description: d.Description,
		Source:      d.Source,
		Amount:      decimal.NullDecimal{Decimal: d.Amount, Valid: true},
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainIncomeEntry converts a model IncomeEntry to its domain form.
func ToDomainIncomeEntry(m models.IncomeEntry) domain.IncomeEntry {
	return domain.IncomeEntry{
		IncomeID:    m.IncomeID,
		UserID:      m.UserID,
		Date:        m.Date,
		Description: m.Description,
		Source:      m.Source,
		Amount:      nullableAmount(m.Amount),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainIncomeEntrySlice converts a slice of model IncomeEntries to domain form.
func ToDomainIncomeEntrySlice(ms []models.IncomeEntry) []domain.IncomeEntry {
	ds := make([]domain.IncomeEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainIncomeEntry(m)
	}
	return ds
}

// ToModelTaxItem converts a domain TaxItem to its model form.
func ToModelTaxItem(d domain.TaxItem) models.TaxItem {
	return models.TaxItem{
		TaxItemID:   d.TaxItemID,
		UserID:      d.UserID,
		Date:        d.Date,
		Description: d.Description,
		TaxType:     d.TaxType,
		Amount:      decimal.NullDecimal{Decimal: d.Amount, Valid: true},
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTaxItem converts a model TaxItem to its domain form.
func ToDomainTaxItem(m models.TaxItem) domain.TaxItem {
	return domain.TaxItem{
		TaxItemID:   m.TaxItemID,
		UserID:      m.UserID,
		Date:        m.Date,
		Description: m.Description,
		TaxType:     m.TaxType,
		Amount:      nullableAmount(m.Amount),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTaxItemSlice converts a slice of model TaxItems to domain form.
func ToDomainTaxItemSlice(ms []models.TaxItem) []domain.TaxItem {
	ds := make([]domain.TaxItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTaxItem(m)
	}
	return ds
}

// ToModelMileageLog converts a domain MileageLog to its model form.
func ToModelMileageLog(d domain.MileageLog) models.MileageLog {
	m := models.MileageLog{
		MileageID:   d.MileageID,
		UserID:      d.UserID,
		Date:        d.Date,
		Description: d.Description,
		Miles:       decimal.NullDecimal{Decimal: d.Miles, Valid: true},
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
	if d.Rate != nil {
		m.Rate = decimal.NullDecimal{Decimal: *d.Rate, Valid: true}
	}
	return m
}

// ToDomainMileageLog converts a model MileageLog to its domain form.
func ToDomainMileageLog(m models.MileageLog) domain.MileageLog {
	d := domain.MileageLog{
		MileageID:   m.MileageID,
		UserID:      m.UserID,
		Date:        m.Date,
		Description: m.Description,
		Miles:       nullableAmount(m.Miles),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if m.Rate.Valid {
		rate := m.Rate.Decimal
		d.Rate = &rate
	}
	return d
}

// ToDomainMileageLogSlice converts a slice of model MileageLogs to domain form.
func ToDomainMileageLogSlice(ms []models.MileageLog) []domain.MileageLog {
	ds := make([]domain.MileageLog, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMileageLog(m)
	}
	return ds
}
