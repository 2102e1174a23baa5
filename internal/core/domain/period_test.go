package domain_test

import (
	"testing"
	"time"

	"github.com/bizfolio/portal_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParsePeriod(t *testing.T) {
	for _, valid := range []string{"day", "week", "month", "quarter", "year"} {
		p, ok := domain.ParsePeriod(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, domain.Period(valid), p)
	}

	_, ok := domain.ParsePeriod("fortnight")
	assert.False(t, ok)
	_, ok = domain.ParsePeriod("")
	assert.False(t, ok)
}

func TestRangeAt(t *testing.T) {
	// 2025-06-18 is a Wednesday.
	now := time.Date(2025, time.June, 18, 14, 32, 5, 0, time.UTC)

	tests := []struct {
		name     string
		period   domain.Period
		refYear  int
		wantFrom time.Time
		wantTo   time.Time
	}{
		{"day", domain.PeriodDay, 0, date(2025, time.June, 18), date(2025, time.June, 18)},
		{"week anchors on preceding Monday", domain.PeriodWeek, 0, date(2025, time.June, 16), date(2025, time.June, 22)},
		{"month", domain.PeriodMonth, 0, date(2025, time.June, 1), date(2025, time.June, 30)},
		{"quarter", domain.PeriodQuarter, 0, date(2025, time.April, 1), date(2025, time.June, 30)},
		{"year", domain.PeriodYear, 0, date(2025, time.January, 1), date(2025, time.December, 31)},
		{"reference year override", domain.PeriodMonth, 2022, date(2022, time.June, 1), date(2022, time.June, 30)},
		{"year with reference year", domain.PeriodYear, 2020, date(2020, time.January, 1), date(2020, time.December, 31)},
		{"unknown period falls back to year", domain.Period("fortnight"), 0, date(2025, time.January, 1), date(2025, time.December, 31)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.period.RangeAt(now, tc.refYear)
			assert.Equal(t, tc.wantFrom, got.From)
			assert.Equal(t, tc.wantTo, got.To)
			assert.False(t, got.From.After(got.To))
		})
	}
}

func TestRangeAtWeekOnMonday(t *testing.T) {
	// A Monday must anchor its own week.
	monday := date(2025, time.June, 16)
	got := domain.PeriodWeek.RangeAt(monday, 0)
	assert.Equal(t, monday, got.From)
	assert.Equal(t, date(2025, time.June, 22), got.To)
}

func TestRangeAtSpanLengths(t *testing.T) {
	now := time.Date(2024, time.February, 10, 9, 0, 0, 0, time.UTC) // leap year

	tests := []struct {
		period   domain.Period
		wantDays int // inclusive span minus one
	}{
		{domain.PeriodDay, 0},
		{domain.PeriodWeek, 6},
		{domain.PeriodMonth, 28},    // February 2024 has 29 days
		{domain.PeriodQuarter, 90},  // Jan 1 - Mar 31, 91 days
		{domain.PeriodYear, 365},    // leap year
	}

	for _, tc := range tests {
		t.Run(string(tc.period), func(t *testing.T) {
			got := tc.period.RangeAt(now, 0)
			days := int(got.To.Sub(got.From).Hours() / 24)
			assert.Equal(t, tc.wantDays, days)
		})
	}

	// Non-leap year span.
	got := domain.PeriodYear.RangeAt(now, 2023)
	require.Equal(t, 364, int(got.To.Sub(got.From).Hours()/24))
}

func TestRangeAtQuarterBoundaries(t *testing.T) {
	tests := []struct {
		month     time.Month
		wantStart time.Month
		wantEnd   time.Month
	}{
		{time.January, time.January, time.March},
		{time.March, time.January, time.March},
		{time.April, time.April, time.June},
		{time.September, time.July, time.September},
		{time.October, time.October, time.December},
		{time.December, time.October, time.December},
	}

	for _, tc := range tests {
		now := date(2025, tc.month, 15)
		got := domain.PeriodQuarter.RangeAt(now, 0)
		assert.Equal(t, tc.wantStart, got.From.Month(), "start for %s", tc.month)
		assert.Equal(t, 1, got.From.Day())
		assert.Equal(t, tc.wantEnd, got.To.Month(), "end for %s", tc.month)
	}
}
