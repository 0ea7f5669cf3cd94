package analytics

import (
	"strings"

	"github.com/shopspring/decimal"
)

// AmountOrZero parses a raw monetary amount as synced from the storefront
// feed. The feed is loosely typed, so anything unparsable (empty, garbage,
// currency symbols) and anything negative collapses to zero instead of
// failing: order totals are non-negative by contract and aggregation must
// never abort on a single bad row.
func AmountOrZero(raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// NonNegative clamps a counter at zero. Campaign counters default to 0 when
// missing and are never negative.
func NonNegative(n int64) int64 {
	if n < 0 {
		return 0
	}
	return n
}
