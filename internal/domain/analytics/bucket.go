package analytics

import (
	"fmt"
	"time"

	"github.com/backoffice/analytics/internal/domain/shared"
)

// Granularity is the time-bucketing resolution for trend reports.
type Granularity string

// Supported granularities
const (
	GranularityHour  Granularity = "hour"
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
	GranularityYear  Granularity = "year"
)

// ParseGranularity validates a granularity token against an allow-list.
// An empty token resolves to the first allowed granularity; tokens outside
// the list are a validation error, never silently coerced.
func ParseGranularity(token string, allowed ...Granularity) (Granularity, error) {
	if token == "" && len(allowed) > 0 {
		return allowed[0], nil
	}
	g := Granularity(token)
	for _, a := range allowed {
		if g == a {
			return g, nil
		}
	}
	return "", shared.NewValidationError(fmt.Sprintf("invalid period %q", token))
}

// KeyFunc derives the canonical bucket key for a timestamp.
type KeyFunc func(time.Time) string

// KeyFuncFor returns the key deriver for a granularity. All keys are
// zero-padded ISO-like strings, so ascending string sort equals ascending
// chronological sort.
func KeyFuncFor(g Granularity) (KeyFunc, error) {
	switch g {
	case GranularityHour:
		return func(t time.Time) string { return t.UTC().Format("2006-01-02 15:00") }, nil
	case GranularityDay:
		return func(t time.Time) string { return t.UTC().Format(DateLayout) }, nil
	case GranularityWeek:
		return weekKey, nil
	case GranularityMonth:
		return func(t time.Time) string { return t.UTC().Format("2006-01") }, nil
	case GranularityYear:
		return func(t time.Time) string { return t.UTC().Format("2006") }, nil
	default:
		return nil, shared.NewValidationError(fmt.Sprintf("invalid period %q", string(g)))
	}
}

// weekKey buckets a timestamp to the date of the most recent Sunday on or
// before it.
func weekKey(t time.Time) string {
	t = t.UTC()
	return t.AddDate(0, 0, -int(t.Weekday())).Format(DateLayout)
}
