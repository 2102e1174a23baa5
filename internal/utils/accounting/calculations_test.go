package accounting_test

import (
	"testing"

	"github.com/bizfolio/portal_backend/internal/core/domain"
	"github.com/bizfolio/portal_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var revenueFields = []string{"total_amount", "amount", "price"}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestSumAmountFieldPriority(t *testing.T) {
	rows := []map[string]decimal.Decimal{
		{"total_amount": dec("0"), "amount": dec("5"), "price": dec("10")},
	}
	// First candidate > 0 wins: the zero total_amount is skipped, not used.
	assert.True(t, accounting.SumAmount(rows, revenueFields).Equal(dec("5")))
}

func TestSumAmountSkipsNegativeCandidates(t *testing.T) {
	rows := []map[string]decimal.Decimal{
		{"total_amount": dec("-3"), "amount": dec("7")},
	}
	assert.True(t, accounting.SumAmount(rows, revenueFields).Equal(dec("7")))
}

func TestSumAmountRowWithNoPositiveCandidate(t *testing.T) {
	rows := []map[string]decimal.Decimal{
		{"total_amount": dec("0"), "amount": dec("0"), "price": dec("-1")},
		{"total_amount": dec("25")},
	}
	// The first row contributes zero even though total_amount held a valid 0.
	assert.True(t, accounting.SumAmount(rows, revenueFields).Equal(dec("25")))
}

func TestSumAmountMissingFields(t *testing.T) {
	rows := []map[string]decimal.Decimal{
		{"price": dec("12.50")},
		{},
		{"amount": dec("2.25")},
	}
	assert.True(t, accounting.SumAmount(rows, revenueFields).Equal(dec("14.75")))
}

func TestSumAmountEmpty(t *testing.T) {
	assert.True(t, accounting.SumAmount(nil, revenueFields).IsZero())
}

func TestMileageCostRatePrecedence(t *testing.T) {
	rowRate := dec("0.70")
	override := dec("0.60")

	withRowRate := []domain.MileageLog{{Miles: dec("10"), Rate: &rowRate}}
	withoutRowRate := []domain.MileageLog{{Miles: dec("10")}}

	// Row rate beats the override.
	assert.True(t, accounting.MileageCost(withRowRate, &override).Equal(dec("7")))
	// Override applies when the row has no rate.
	assert.True(t, accounting.MileageCost(withoutRowRate, &override).Equal(dec("6")))
	// Standard rate applies when neither is set.
	assert.True(t, accounting.MileageCost(withoutRowRate, nil).Equal(dec("6.55")))
}

func TestMileageCostSumsAcrossLogs(t *testing.T) {
	rate := dec("0.5")
	logs := []domain.MileageLog{
		{Miles: dec("10"), Rate: &rate},
		{Miles: dec("4"), Rate: &rate},
	}
	assert.True(t, accounting.MileageCost(logs, nil).Equal(dec("7")))
}
