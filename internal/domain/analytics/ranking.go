package analytics

import (
	"fmt"
	"sort"

	"github.com/backoffice/analytics/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RankMetric selects the sort metric for a leaderboard.
type RankMetric string

// Supported ranking metrics
const (
	RankByRevenue RankMetric = "total_revenue"
	RankByOrders  RankMetric = "total_orders"
)

// UnknownEntityName is attached when the grouping key cannot be resolved to a
// display name (deleted store, missing join row).
const UnknownEntityName = "Unknown"

// GroupKeyFunc extracts the grouping entity from an order.
type GroupKeyFunc func(OrderRecord) uuid.UUID

// RankOrders groups orders by entity, accumulates order count and revenue,
// attaches resolved names and returns the top entries sorted descending by
// the chosen metric. Ties are broken by ascending entity ID so the output is
// deterministic regardless of map iteration order. A non-positive limit
// falls back to the default of 10.
func RankOrders(orders []OrderRecord, key GroupKeyFunc, names map[uuid.UUID]string, metric RankMetric, limit int) ([]RankingEntry, error) {
	if metric != RankByRevenue && metric != RankByOrders {
		return nil, shared.NewValidationError(fmt.Sprintf("invalid ranking metric %q", string(metric)))
	}
	if limit <= 0 {
		limit = DefaultRankingLimit
	}

	groups := make(map[uuid.UUID]*RankingEntry)
	for _, o := range orders {
		id := key(o)
		e, ok := groups[id]
		if !ok {
			name := names[id]
			if name == "" {
				name = UnknownEntityName
			}
			e = &RankingEntry{EntityID: id, EntityName: name, TotalRevenue: decimal.Zero}
			groups[id] = e
		}
		e.TotalOrders++
		e.TotalRevenue = e.TotalRevenue.Add(o.Total)
	}

	entries := make([]RankingEntry, 0, len(groups))
	for _, e := range groups {
		entries = append(entries, *e)
	}

	sort.Slice(entries, func(i, j int) bool {
		var cmp int
		if metric == RankByOrders {
			cmp = compareInt64(entries[i].TotalOrders, entries[j].TotalOrders)
		} else {
			cmp = entries[i].TotalRevenue.Cmp(entries[j].TotalRevenue)
		}
		if cmp != 0 {
			return cmp > 0
		}
		return entries[i].EntityID.String() < entries[j].EntityID.String()
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
