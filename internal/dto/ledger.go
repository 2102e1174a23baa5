package dto

import (
	"time"

	"github.com/bizfolio/portal_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Ledger create requests carry dates as YYYY-MM-DD strings; services parse
// and validate them.

// CreateExpenseRequest is the payload of the expense entry form.
type CreateExpenseRequest struct {
	Date        string          `json:"date" binding:"required" example:"2025-06-18"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
}

// CreateIncomeEntryRequest is the payload of the income entry form.
type CreateIncomeEntryRequest struct {
	Date        string          `json:"date" binding:"required" example:"2025-06-18"`
	Description string          `json:"description"`
	Source      string          `json:"source"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
}

// CreateTaxItemRequest is the payload of the tax entry form.
type CreateTaxItemRequest struct {
	Date        string          `json:"date" binding:"required" example:"2025-06-18"`
	Description string          `json:"description"`
	TaxType     string          `json:"taxType"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
}

// CreateMileageLogRequest is the payload of the mileage entry form. Rate is
// optional; when omitted the standard rate applies at summary time.
type CreateMileageLogRequest struct {
	Date        string           `json:"date" binding:"required" example:"2025-06-18"`
	Description string           `json:"description"`
	Miles       decimal.Decimal  `json:"miles" binding:"required"`
	Rate        *decimal.Decimal `json:"rate,omitempty"`
}

// ExpenseResponse is the API shape of an expense entry.
type ExpenseResponse struct {
	ExpenseID   string          `json:"expenseID"`
	UserID      string          `json:"userID"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// IncomeEntryResponse is the API shape of an income entry.
type IncomeEntryResponse struct {
	IncomeID    string          `json:"incomeID"`
	UserID      string          `json:"userID"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Source      string          `json:"source"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// TaxItemResponse is the API shape of a tax entry.
type TaxItemResponse struct {
	TaxItemID   string          `json:"taxItemID"`
	UserID      string          `json:"userID"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	TaxType     string          `json:"taxType"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// MileageLogResponse is the API shape of a mileage entry.
type MileageLogResponse struct {
	MileageID   string           `json:"mileageID"`
	UserID      string           `json:"userID"`
	Date        string           `json:"date"`
	Description string           `json:"description"`
	Miles       decimal.Decimal  `json:"miles"`
	Rate        *decimal.Decimal `json:"rate,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
}

const dateOnly = "2006-01-02"

// ToExpenseResponse converts a domain Expense to its response DTO.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:   e.ExpenseID,
		UserID:      e.UserID,
		Date:        e.Date.Format(dateOnly),
		Description: e.Description,
		Category:    e.Category,
		Amount:      e.Amount,
		CreatedAt:   e.CreatedAt,
	}
}

// ToExpenseResponses converts a slice of domain Expenses to response DTOs.
func ToExpenseResponses(es []domain.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, len(es))
	for i := range es {
		responses[i] = ToExpenseResponse(&es[i])
	}
	return responses
}

// ToIncomeEntryResponse converts a domain IncomeEntry to its response DTO.
func ToIncomeEntryResponse(e *domain.IncomeEntry) IncomeEntryResponse {
	return IncomeEntryResponse{
		IncomeID:    e.IncomeID,
		UserID:      e.UserID,
		Date:        e.Date.Format(dateOnly),
		Description: e.Description,
		Source:      e.Source,
		Amount:      e.Amount,
		CreatedAt:   e.CreatedAt,
	}
}

// ToIncomeEntryResponses converts a slice of domain IncomeEntries to response DTOs.
func ToIncomeEntryResponses(es []domain.IncomeEntry) []IncomeEntryResponse {
	responses := make([]IncomeEntryResponse, len(es))
	for i := range es {
		responses[i] = ToIncomeEntryResponse(&es[i])
	}
	return responses
}

// ToTaxItemResponse converts a domain TaxItem to its response DTO.
func ToTaxItemResponse(t *domain.TaxItem) TaxItemResponse {
	return TaxItemResponse{
		TaxItemID:   t.TaxItemID,
		UserID:      t.UserID,
		Date:        t.Date.Format(dateOnly),
		Description: t.Description,
		TaxType:     t.TaxType,
		Amount:      t.Amount,
		CreatedAt:   t.CreatedAt,
	}
}

// ToTaxItemResponses converts a slice of domain TaxItems to response DTOs.
func ToTaxItemResponses(ts []domain.TaxItem) []TaxItemResponse {
	responses := make([]TaxItemResponse, len(ts))
	for i := range ts {
		responses[i] = ToTaxItemResponse(&ts[i])
	}
	return responses
}

// ToMileageLogResponse converts a domain MileageLog to its response DTO.
func ToMileageLogResponse(m *domain.MileageLog) MileageLogResponse {
	return MileageLogResponse{
		MileageID:   m.MileageID,
		UserID:      m.UserID,
		Date:        m.Date.Format(dateOnly),
		Description: m.Description,
		Miles:       m.Miles,
		Rate:        m.Rate,
		CreatedAt:   m.CreatedAt,
	}
}

// ToMileageLogResponses converts a slice of domain MileageLogs to response DTOs.
func ToMileageLogResponses(ms []domain.MileageLog) []MileageLogResponse {
	responses := make([]MileageLogResponse, len(ms))
	for i := range ms {
		responses[i] = ToMileageLogResponse(&ms[i])
	}
	return responses
}
