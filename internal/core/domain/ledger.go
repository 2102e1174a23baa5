package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerKind identifies one of the four dated, user-owned financial record types.
type LedgerKind string

const (
	LedgerExpense LedgerKind = "EXPENSE"
	LedgerIncome  LedgerKind = "INCOME"
	LedgerTax     LedgerKind = "TAX"
	LedgerMileage LedgerKind = "MILEAGE"
)

// Expense is a dated outflow recorded by a user. Entries are immutable once
// created; there is no update or delete path.
type Expense struct {
	ExpenseID   string          `json:"expenseID"` // Primary Key (UUID)
	UserID      string          `json:"userID"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	AuditFields
}

// IncomeEntry is a dated inflow recorded by a user, independent of order revenue.
type IncomeEntry struct {
	IncomeID    string          `json:"incomeID"` // Primary Key (UUID)
	UserID      string          `json:"userID"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Source      string          `json:"source"`
	Amount      decimal.Decimal `json:"amount"`
	AuditFields
}

// TaxItem is a dated tax payment or liability recorded by a user.
type TaxItem struct {
	TaxItemID   string          `json:"taxItemID"` // Primary Key (UUID)
	UserID      string          `json:"userID"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	TaxType     string          `json:"taxType"`
	Amount      decimal.Decimal `json:"amount"`
	AuditFields
}

// MileageLog records business miles driven. Rate is the per-mile cost the
// user chose for this trip; nil means the caller-supplied or standard rate
// applies when costing the log.
type MileageLog struct {
	MileageID   string           `json:"mileageID"` // Primary Key (UUID)
	UserID      string           `json:"userID"`
	Date        time.Time        `json:"date"`
	Description string           `json:"description"`
	Miles       decimal.Decimal  `json:"miles"`
	Rate        *decimal.Decimal `json:"rate,omitempty"`
	AuditFields
}

// EffectiveRate returns the per-mile rate for this log: the log's own rate
// when set, otherwise the supplied fallback.
func (m MileageLog) EffectiveRate(fallback decimal.Decimal) decimal.Decimal {
	if m.Rate != nil {
		return *m.Rate
	}
	return fallback
}
