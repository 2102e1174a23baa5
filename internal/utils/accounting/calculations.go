package accounting

import (
	"github.com/bizfolio/portal_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StandardMileageRate is the fallback per-mile rate applied when neither the
// mileage log nor the caller supplies one (2023 IRS standard mileage rate).
var StandardMileageRate = decimal.NewFromFloat(0.655)

// SumAmount reduces rows whose amount may live under one of several legacy
// field names. For each row the candidate fields are evaluated in priority
// order and the first one whose value is greater than zero wins; zero and
// negative candidates are skipped, and a row with no positive candidate
// contributes zero. Note this is NOT "first non-null field" — the
// zero-skipping behavior matches the historical totals and must be kept.
func SumAmount(rows []map[string]decimal.Decimal, candidateFields []string) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		for _, field := range candidateFields {
			v, ok := row[field]
			if !ok {
				continue
			}
			if v.GreaterThan(decimal.Zero) {
				total = total.Add(v)
				break
			}
		}
	}
	return total
}

// MileageCost prices mileage logs. Rate precedence per log: the log's own
// rate, then the caller-supplied override, then StandardMileageRate.
func MileageCost(logs []domain.MileageLog, override *decimal.Decimal) decimal.Decimal {
	fallback := StandardMileageRate
	if override != nil {
		fallback = *override
	}

	total := decimal.Zero
	for _, log := range logs {
		total = total.Add(log.Miles.Mul(log.EffectiveRate(fallback)))
	}
	return total
}
