package domain

import "time"

// Period is a named calendar bucket used to scope financial aggregation.
type Period string

const (
	PeriodDay     Period = "day"
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
)

// ParsePeriod maps a raw string to a Period. Unknown values are returned
// as-is with ok=false; RangeAt treats them as PeriodYear, which is the
// documented default for callers that skip validation.
func ParsePeriod(s string) (Period, bool) {
	switch Period(s) {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear:
		return Period(s), true
	}
	return Period(s), false
}

// DateRange is an inclusive calendar date interval. From and To are
// normalized to midnight UTC of their respective days; From <= To holds
// for every range produced by RangeAt.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// RangeAt resolves the inclusive date bounds of the period containing the
// given instant. referenceYear, when positive, overrides the year component
// of now before any range math so historical years can be viewed without
// moving the month/day anchor. The instant is always passed in rather than
// read from the system clock, keeping the function deterministic.
//
// Week ranges start on Monday. Unrecognized periods resolve like
// PeriodYear; that fallback is intentional, not an error.
func (p Period) RangeAt(now time.Time, referenceYear int) DateRange {
	if referenceYear > 0 {
		now = time.Date(referenceYear, now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	switch p {
	case PeriodDay:
		return DateRange{From: today, To: today}
	case PeriodWeek:
		// Monday-start week; Go's Weekday puts Sunday at 0.
		offset := (int(today.Weekday()) + 6) % 7
		from := today.AddDate(0, 0, -offset)
		return DateRange{From: from, To: from.AddDate(0, 0, 6)}
	case PeriodMonth:
		from := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		return DateRange{From: from, To: from.AddDate(0, 1, -1)}
	case PeriodQuarter:
		startMonth := time.Month((int(today.Month())-1)/3*3 + 1)
		from := time.Date(today.Year(), startMonth, 1, 0, 0, 0, 0, time.UTC)
		return DateRange{From: from, To: from.AddDate(0, 3, -1)}
	default: // PeriodYear and anything unrecognized
		from := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		return DateRange{From: from, To: time.Date(today.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)}
	}
}
