package analytics

import (
	"fmt"
	"time"

	"github.com/backoffice/analytics/internal/domain/shared"
)

// DateLayout is the wire format for date query parameters.
const DateLayout = "2006-01-02"

// Default lookback windows per report family
const (
	DefaultOverviewDays   = 30
	DefaultTrendDays      = 30
	DefaultRevenueMonths  = 6
	DefaultRankingLimit   = 10
	DefaultTopCustomerCap = 10
)

// Period is a resolved, inclusive reporting window in UTC.
type Period struct {
	Start time.Time
	End   time.Time
}

// IsZero reports whether the period is unbounded (full record set).
func (p Period) IsZero() bool {
	return p.Start.IsZero() && p.End.IsZero()
}

// ResolveOverviewPeriod resolves the window for overview-style reports.
// When both bounds are supplied, the start is the date's midnight and the end
// is extended to the date's end-of-day so the whole closing day is included.
// When either bound is absent, the window falls back to the last 30 days.
// Any supplied bound is validated before the fallback applies; malformed
// dates always yield a validation error, absent ones never do.
func ResolveOverviewPeriod(startDate, endDate string, now time.Time) (Period, error) {
	start, end, err := parseBounds(startDate, endDate)
	if err != nil {
		return Period{}, err
	}
	if startDate == "" || endDate == "" {
		e := now.UTC()
		return Period{Start: e.AddDate(0, 0, -DefaultOverviewDays), End: e}, nil
	}

	// Extend the upper bound to the very end of the requested day.
	end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return Period{Start: start, End: end}, nil
}

// ResolveRangePeriod resolves the window for the revenue trend report. Unlike
// the overview window, an explicit end date is used verbatim as the upper
// bound (midnight, not end-of-day); the two conventions intentionally differ.
// The fallback window is the last 6 months.
func ResolveRangePeriod(startDate, endDate string, now time.Time) (Period, error) {
	start, end, err := parseBounds(startDate, endDate)
	if err != nil {
		return Period{}, err
	}
	if startDate == "" || endDate == "" {
		e := now.UTC()
		return Period{Start: e.AddDate(0, -DefaultRevenueMonths, 0), End: e}, nil
	}
	return Period{Start: start, End: end}, nil
}

// ResolveDaysPeriod resolves an N-days-back window ending now, used by the
// order trend report. Non-positive days fall back to the default of 30.
func ResolveDaysPeriod(days int, now time.Time) Period {
	if days <= 0 {
		days = DefaultTrendDays
	}
	end := now.UTC()
	return Period{Start: end.AddDate(0, 0, -days), End: end}
}

// parseBounds validates every supplied bound; an empty bound parses to the
// zero time without error.
func parseBounds(startDate, endDate string) (start, end time.Time, err error) {
	if startDate != "" {
		if start, err = parseDate(startDate); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if endDate != "" {
		if end, err = parseDate(endDate); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	return start, end, nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, shared.NewValidationError(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", s))
	}
	return t, nil
}
