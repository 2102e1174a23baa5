package domain

import "github.com/shopspring/decimal"

// FinanceSummary is the derived, never-persisted aggregate returned to the
// admin dashboard for a date range. Invariants:
//
//	TotalIncome = IncomeTotal + StripeRevenue
//	Net         = TotalIncome - ExpenseTotal - TaxesTotal - MileageCost
//
// Net may be negative; no clamping is applied.
type FinanceSummary struct {
	ExpenseTotal  decimal.Decimal `json:"expenseTotal"`
	IncomeTotal   decimal.Decimal `json:"incomeTotal"`
	TaxesTotal    decimal.Decimal `json:"taxesTotal"`
	MileageCost   decimal.Decimal `json:"mileageCost"`
	StripeRevenue decimal.Decimal `json:"stripeRevenue"`
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	Net           decimal.Decimal `json:"net"`
}

// SummarizeOptions scope a finance summary. UserID filters the four ledger
// fetches (empty means all users); it deliberately does not scope order
// revenue, which stays platform-wide. MileageRate, when set, is the default
// per-mile rate for logs that carry none of their own.
type SummarizeOptions struct {
	UserID      string
	MileageRate *decimal.Decimal
}
