package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ledger tables keep amounts nullable: historical imports contain rows with
// missing amounts, and those must degrade to zero at read time rather than
// fail a whole summary.

// Expense mirrors the expenses table.
type Expense struct {
	ExpenseID   string              `db:"expense_id"`
	UserID      string              `db:"user_id"`
	Date        time.Time           `db:"entry_date"`
	Description string              `db:"description"`
	Category    string              `db:"category"`
	Amount      decimal.NullDecimal `db:"amount"`
	AuditFields
}

// IncomeEntry mirrors the income_entries table.
type IncomeEntry struct {
	IncomeID    string              `db:"income_id"`
	UserID      string              `db:"user_id"`
	Date        time.Time           `db:"entry_date"`
	Description string              `db:"description"`
	Source      string              `db:"source"`
	Amount      decimal.NullDecimal `db:"amount"`
	AuditFields
}

// TaxItem mirrors the tax_items table.
type TaxItem struct {
	TaxItemID   string              `db:"tax_item_id"`
	UserID      string              `db:"user_id"`
	Date        time.Time           `db:"entry_date"`
	Description string              `db:"description"`
	TaxType     string              `db:"tax_type"`
	Amount      decimal.NullDecimal `db:"amount"`
	AuditFields
}

// MileageLog mirrors the mileage_logs table. Rate is NULL when the user
// accepted the default per-mile rate at entry time.
type MileageLog struct {
	MileageID   string              `db:"mileage_id"`
	UserID      string              `db:"user_id"`
	Date        time.Time           `db:"entry_date"`
	Description string              `db:"description"`
	Miles       decimal.NullDecimal `db:"miles"`
	Rate        decimal.NullDecimal `db:"rate"`
	AuditFields
}
