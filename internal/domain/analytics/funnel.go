package analytics

import "github.com/shopspring/decimal"

// FunnelStatuses is the fixed, ordered status vocabulary of the conversion
// funnel. Orders with statuses outside this set still count toward the total
// but get no labeled band.
var FunnelStatuses = []OrderStatus{
	StatusPending,
	StatusProcessing,
	StatusDelivered,
	StatusCancelled,
}

// ComputeFunnel computes the status distribution over the full record set.
// Each slice's rate is its share of the total in percent (2 decimals); with
// an empty record set every rate is exactly 0.
func ComputeFunnel(orders []OrderRecord) ([]FunnelSlice, int64) {
	total := int64(len(orders))
	counts := make(map[OrderStatus]int64, len(FunnelStatuses))
	for _, o := range orders {
		counts[o.Status]++
	}

	slices := make([]FunnelSlice, len(FunnelStatuses))
	for i, status := range FunnelStatuses {
		slices[i] = FunnelSlice{
			Status: status,
			Count:  counts[status],
			Rate:   RatePercent(counts[status], total),
		}
	}
	return slices, total
}

// RatePercent computes numerator/denominator as a percentage rounded to
// 2 decimals. A zero denominator yields 0, never an error or infinity.
func RatePercent(numerator, denominator int64) float64 {
	if denominator == 0 {
		return 0
	}
	return decimal.NewFromInt(numerator).
		Div(decimal.NewFromInt(denominator)).
		Mul(decimal.NewFromInt(100)).
		Round(2).
		InexactFloat64()
}

// AverageOrderValue computes revenue per order rounded to 2 decimals, 0 when
// there are no orders.
func AverageOrderValue(revenue decimal.Decimal, orders int64) decimal.Decimal {
	if orders == 0 {
		return decimal.Zero
	}
	return revenue.Div(decimal.NewFromInt(orders)).Round(2)
}
