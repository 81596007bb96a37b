package models

import (
	"errors"
	"time"
)

// MonthLayout is the wire format for month selectors (YYYY-MM)
const MonthLayout = "2006-01"

var ErrInvalidMonth = errors.New("month must be in YYYY-MM format")

// MonthWindow is the calendar-aware half-open date range [Start, End) covering
// one calendar month. The range is computed from real month lengths, so
// February and 30-day months are handled correctly (the naive "<month>-31"
// upper bound would misbehave for them).
type MonthWindow struct {
	Start string // first day of the month, YYYY-MM-DD
	End   string // first day of the next month, YYYY-MM-DD (exclusive)
}

// NewMonthWindow parses a YYYY-MM selector into its month window
func NewMonthWindow(month string) (MonthWindow, error) {
	parsed, err := time.Parse(MonthLayout, month)
	if err != nil {
		return MonthWindow{}, ErrInvalidMonth
	}

	first := time.Date(parsed.Year(), parsed.Month(), 1, 0, 0, 0, 0, time.UTC)
	return MonthWindow{
		Start: first.Format(DateLayout),
		End:   first.AddDate(0, 1, 0).Format(DateLayout),
	}, nil
}

// Contains reports whether an ISO date falls inside the window.
// ISO dates compare lexicographically in chronological order.
func (w MonthWindow) Contains(date string) bool {
	return date >= w.Start && date < w.End
}

// FirstDay returns the normalized first-of-month date used as the canonical
// budget month value
func (w MonthWindow) FirstDay() string {
	return w.Start
}

// IsValidMonth checks that a month selector is a real YYYY-MM value
func IsValidMonth(month string) bool {
	_, err := time.Parse(MonthLayout, month)
	return err == nil
}
