package analytics

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeOrder(storeID uuid.UUID, total string) OrderRecord {
	return OrderRecord{
		ID:      uuid.New(),
		Status:  StatusDelivered,
		Total:   decimal.RequireFromString(total),
		StoreID: storeID,
	}
}

func byStore(o OrderRecord) uuid.UUID { return o.StoreID }

func TestRankOrders(t *testing.T) {
	storeA := uuid.New()
	storeB := uuid.New()
	storeC := uuid.New()
	names := map[uuid.UUID]string{storeA: "Alpha", storeB: "Beta"}

	orders := []OrderRecord{
		storeOrder(storeA, "100"),
		storeOrder(storeA, "100"),
		storeOrder(storeB, "500"),
		storeOrder(storeC, "50"),
	}

	t.Run("ranks by revenue descending", func(t *testing.T) {
		entries, err := RankOrders(orders, byStore, names, RankByRevenue, 10)
		require.NoError(t, err)
		require.Len(t, entries, 3)

		assert.Equal(t, "Beta", entries[0].EntityName)
		assert.True(t, entries[0].TotalRevenue.Equal(decimal.NewFromInt(500)))
		assert.Equal(t, "Alpha", entries[1].EntityName)
		assert.Equal(t, int64(2), entries[1].TotalOrders)
	})

	t.Run("ranks by order count descending", func(t *testing.T) {
		entries, err := RankOrders(orders, byStore, names, RankByOrders, 10)
		require.NoError(t, err)
		assert.Equal(t, storeA, entries[0].EntityID)
		assert.Equal(t, int64(2), entries[0].TotalOrders)
	})

	t.Run("unresolved entities fall back to Unknown", func(t *testing.T) {
		entries, err := RankOrders(orders, byStore, names, RankByRevenue, 10)
		require.NoError(t, err)
		assert.Equal(t, UnknownEntityName, entries[2].EntityName)
	})

	t.Run("truncates to limit", func(t *testing.T) {
		entries, err := RankOrders(orders, byStore, names, RankByRevenue, 2)
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("output is never longer than distinct group count", func(t *testing.T) {
		entries, err := RankOrders(orders, byStore, names, RankByRevenue, 100)
		require.NoError(t, err)
		assert.Len(t, entries, 3)
	})

	t.Run("metric is non-increasing", func(t *testing.T) {
		entries, err := RankOrders(orders, byStore, names, RankByRevenue, 10)
		require.NoError(t, err)
		for i := 1; i < len(entries); i++ {
			assert.True(t, entries[i-1].TotalRevenue.GreaterThanOrEqual(entries[i].TotalRevenue))
		}
	})

	t.Run("ties break deterministically by entity id", func(t *testing.T) {
		x := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
		y := uuid.MustParse("00000000-0000-0000-0000-00000000000b")
		tied := []OrderRecord{storeOrder(y, "100"), storeOrder(x, "100")}

		for i := 0; i < 10; i++ {
			entries, err := RankOrders(tied, byStore, nil, RankByRevenue, 10)
			require.NoError(t, err)
			assert.Equal(t, x, entries[0].EntityID)
			assert.Equal(t, y, entries[1].EntityID)
		}
	})

	t.Run("non-positive limit falls back to 10", func(t *testing.T) {
		var many []OrderRecord
		for i := 0; i < 15; i++ {
			many = append(many, storeOrder(uuid.New(), "10"))
		}
		entries, err := RankOrders(many, byStore, nil, RankByOrders, 0)
		require.NoError(t, err)
		assert.Len(t, entries, 10)
	})

	t.Run("invalid metric is a validation error", func(t *testing.T) {
		_, err := RankOrders(orders, byStore, names, RankMetric("total_profit"), 10)
		assert.Error(t, err)
	})

	t.Run("empty input yields empty ranking", func(t *testing.T) {
		entries, err := RankOrders(nil, byStore, nil, RankByRevenue, 10)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
