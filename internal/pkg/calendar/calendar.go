package calendar

import (
	"time"

	"minipos/internal/core/domain"
)

// Period selects the bucketing granularity for revenue aggregation
type Period string

const (
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
)

// ParsePeriod validates a period selector from operator input
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodMonth, PeriodQuarter, PeriodYear:
		return Period(s), nil
	}
	return "", domain.ErrInvalidPeriod
}

// Calendar decomposes timestamps into period keys in a fixed location.
// All bucketing goes through this type so the zone can be pinned in
// tests instead of depending on host timezone state.
type Calendar struct {
	loc *time.Location
}

// New creates a calendar for the given location. A nil location falls
// back to time.Local.
func New(loc *time.Location) *Calendar {
	if loc == nil {
		loc = time.Local
	}
	return &Calendar{loc: loc}
}

// Location returns the calendar's location
func (c *Calendar) Location() *time.Location {
	return c.loc
}

// MonthKey returns an integer ordering key unique per (year, month)
func (c *Calendar) MonthKey(t time.Time) int {
	t = t.In(c.loc)
	return t.Year()*12 + int(t.Month()) - 1
}

// QuarterKey returns an integer ordering key unique per (year, quarter)
func (c *Calendar) QuarterKey(t time.Time) int {
	t = t.In(c.loc)
	return t.Year()*4 + (int(t.Month())-1)/3
}

// YearKey returns the calendar year
func (c *Calendar) YearKey(t time.Time) int {
	return t.In(c.loc).Year()
}

// Key derives the period key for t under the given granularity
func (c *Calendar) Key(period Period, t time.Time) (int, error) {
	switch period {
	case PeriodMonth:
		return c.MonthKey(t), nil
	case PeriodQuarter:
		return c.QuarterKey(t), nil
	case PeriodYear:
		return c.YearKey(t), nil
	}
	return 0, domain.ErrInvalidPeriod
}

// Format renders a key back into a human-readable period label
func (c *Calendar) Format(period Period, key int) string {
	switch period {
	case PeriodMonth:
		return time.Date(key/12, time.Month(key%12+1), 1, 0, 0, 0, 0, c.loc).Format("2006-01")
	case PeriodQuarter:
		return time.Date(key/4, time.Month((key%4)*3+1), 1, 0, 0, 0, 0, c.loc).Format("2006") + "-Q" + string(rune('1'+key%4))
	default:
		return time.Date(key, 1, 1, 0, 0, 0, 0, c.loc).Format("2006")
	}
}
