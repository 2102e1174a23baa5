package dto

import (
	"github.com/bizfolio/portal_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FinanceSummaryResponse is the admin dashboard summary payload. The
// resolved period bounds are echoed back as date-only strings.
type FinanceSummaryResponse struct {
	FromDate string `json:"fromDate"`
	ToDate   string `json:"toDate"`
	Totals   struct {
		ExpenseTotal  decimal.Decimal `json:"expenseTotal"`
		IncomeTotal   decimal.Decimal `json:"incomeTotal"`
		TaxesTotal    decimal.Decimal `json:"taxesTotal"`
		MileageCost   decimal.Decimal `json:"mileageCost"`
		StripeRevenue decimal.Decimal `json:"stripeRevenue"`
		TotalIncome   decimal.Decimal `json:"totalIncome"`
		Net           decimal.Decimal `json:"net"`
	} `json:"totals"`
}

// ToFinanceSummaryResponse converts a domain summary and its resolved range
// to the DTO response.
func ToFinanceSummaryResponse(summary *domain.FinanceSummary, rng domain.DateRange) FinanceSummaryResponse {
	response := FinanceSummaryResponse{
		FromDate: rng.From.Format("2006-01-02"),
		ToDate:   rng.To.Format("2006-01-02"),
	}
	response.Totals.ExpenseTotal = summary.ExpenseTotal
	response.Totals.IncomeTotal = summary.IncomeTotal
	response.Totals.TaxesTotal = summary.TaxesTotal
	response.Totals.MileageCost = summary.MileageCost
	response.Totals.StripeRevenue = summary.StripeRevenue
	response.Totals.TotalIncome = summary.TotalIncome
	response.Totals.Net = summary.Net
	return response
}
