package analytics

import "github.com/shopspring/decimal"

// PercentChange computes the signed percentage change between a current and a
// previous scalar, rounded to 1 decimal. When previous is zero the change is
// reported as 0 regardless of current, never infinity. The function is total
// and never fails.
func PercentChange(current, previous decimal.Decimal) float64 {
	if previous.IsZero() {
		return 0
	}
	return current.Sub(previous).
		Div(previous).
		Mul(decimal.NewFromInt(100)).
		Round(1).
		InexactFloat64()
}

// PercentChangeInt is PercentChange over integer counters.
func PercentChangeInt(current, previous int64) float64 {
	return PercentChange(decimal.NewFromInt(current), decimal.NewFromInt(previous))
}
