package analytics

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AggregateOrders folds orders into a bucket map keyed by the derived time
// label. Each order increments its bucket's count, adds its total to the
// bucket's revenue and tallies its status. The fold is order-independent:
// the sum of bucket revenues always equals the sum of input totals and the
// sum of bucket counts always equals the input length. Window filtering is
// the storage gateway's responsibility, not the aggregator's.
func AggregateOrders(orders []OrderRecord, key KeyFunc) map[string]*Bucket {
	buckets := make(map[string]*Bucket)
	for _, o := range orders {
		k := key(o.CreatedAt)
		b, ok := buckets[k]
		if !ok {
			b = &Bucket{
				Key:          k,
				Revenue:      decimal.Zero,
				StatusCounts: make(map[OrderStatus]int64),
			}
			buckets[k] = b
		}
		b.Orders++
		b.Revenue = b.Revenue.Add(o.Total)
		b.StatusCounts[o.Status]++
	}
	return buckets
}

// SortedBuckets materializes a bucket map as a slice in ascending key order.
// Plain string comparison is chronological because keys are zero-padded.
func SortedBuckets(buckets map[string]*Bucket) []*Bucket {
	out := make([]*Bucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// SumRevenue returns the total revenue across a set of orders.
func SumRevenue(orders []OrderRecord) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.Total)
	}
	return total
}

// CountByStatus returns the number of orders with the given status.
func CountByStatus(orders []OrderRecord, status OrderStatus) int64 {
	var n int64
	for _, o := range orders {
		if o.Status == status {
			n++
		}
	}
	return n
}

// DistinctCustomers returns the number of distinct customers across orders.
func DistinctCustomers(orders []OrderRecord) int64 {
	seen := make(map[uuid.UUID]struct{}, len(orders))
	for _, o := range orders {
		seen[o.CreatedBy] = struct{}{}
	}
	return int64(len(seen))
}
