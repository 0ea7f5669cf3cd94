package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func TestResolveOverviewPeriod(t *testing.T) {
	t.Run("explicit bounds extend the end to end-of-day", func(t *testing.T) {
		p, err := ResolveOverviewPeriod("2024-01-01", "2024-01-31", testNow)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), p.Start)
		assert.Equal(t, time.Date(2024, 1, 31, 23, 59, 59, 999999999, time.UTC), p.End)
	})

	t.Run("missing bounds fall back to the last 30 days", func(t *testing.T) {
		p, err := ResolveOverviewPeriod("", "", testNow)
		require.NoError(t, err)
		assert.Equal(t, testNow, p.End)
		assert.Equal(t, testNow.AddDate(0, 0, -30), p.Start)
	})

	t.Run("a valid single bound falls back to the default window", func(t *testing.T) {
		p, err := ResolveOverviewPeriod("2024-01-01", "", testNow)
		require.NoError(t, err)
		assert.Equal(t, testNow.AddDate(0, 0, -30), p.Start)
	})

	t.Run("malformed dates are a validation error", func(t *testing.T) {
		_, err := ResolveOverviewPeriod("01/02/2024", "2024-01-31", testNow)
		assert.Error(t, err)

		_, err = ResolveOverviewPeriod("2024-01-01", "not-a-date", testNow)
		assert.Error(t, err)
	})

	t.Run("a malformed single bound is rejected, not coerced", func(t *testing.T) {
		_, err := ResolveOverviewPeriod("03/01/2024", "", testNow)
		assert.Error(t, err)

		_, err = ResolveOverviewPeriod("", "not-a-date", testNow)
		assert.Error(t, err)
	})
}

func TestResolveRangePeriod(t *testing.T) {
	t.Run("explicit end is used verbatim, not extended", func(t *testing.T) {
		p, err := ResolveRangePeriod("2024-01-01", "2024-01-31", testNow)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), p.End)
	})

	t.Run("missing bounds fall back to the last 6 months", func(t *testing.T) {
		p, err := ResolveRangePeriod("", "", testNow)
		require.NoError(t, err)
		assert.Equal(t, testNow, p.End)
		assert.Equal(t, testNow.AddDate(0, -6, 0), p.Start)
	})

	t.Run("malformed dates are a validation error", func(t *testing.T) {
		_, err := ResolveRangePeriod("2024-13-01", "2024-01-31", testNow)
		assert.Error(t, err)

		_, err = ResolveRangePeriod("not-a-date", "", testNow)
		assert.Error(t, err)
	})
}

func TestResolveDaysPeriod(t *testing.T) {
	t.Run("resolves N days back from now", func(t *testing.T) {
		p := ResolveDaysPeriod(7, testNow)
		assert.Equal(t, testNow, p.End)
		assert.Equal(t, testNow.AddDate(0, 0, -7), p.Start)
	})

	t.Run("non-positive days fall back to 30", func(t *testing.T) {
		for _, days := range []int{0, -5} {
			p := ResolveDaysPeriod(days, testNow)
			assert.Equal(t, testNow.AddDate(0, 0, -30), p.Start)
		}
	})
}
