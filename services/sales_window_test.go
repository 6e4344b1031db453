package services

import (
	"testing"
	"time"

	"github.com/Lumen-Ecommerce/lumen-cms-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSalesWindowExplicitRange(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 30, 0, 0, time.UTC)

	window := ResolveSalesWindow("", "2026-01-10", "2026-02-20", now)

	assert.Equal(t, time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), window.Start)
	require.NotNil(t, window.End)
	assert.Equal(t, 2026, window.End.Year())
	assert.Equal(t, time.February, window.End.Month())
	assert.Equal(t, 20, window.End.Day())
	assert.Equal(t, 23, window.End.Hour())
	assert.Equal(t, 59, window.End.Minute())
	assert.Equal(t, models.BucketByDay, window.Granularity)
}

func TestResolveSalesWindowExplicitRangeOverridesTimeframe(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 30, 0, 0, time.UTC)

	window := ResolveSalesWindow("weekly", "2026-01-01", "2026-06-30", now)

	// six-month span ignores the weekly timeframe and buckets by month
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), window.Start)
	require.NotNil(t, window.End)
	assert.Equal(t, models.BucketByMonth, window.Granularity)
}

func TestResolveSalesWindowSpanCutover(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 30, 0, 0, time.UTC)

	// exactly 60 days apart still buckets by day
	window := ResolveSalesWindow("", "2026-01-01", "2026-03-02", now)
	assert.Equal(t, models.BucketByDay, window.Granularity)

	// 61 days flips to month
	window = ResolveSalesWindow("", "2026-01-01", "2026-03-03", now)
	assert.Equal(t, models.BucketByMonth, window.Granularity)
}

func TestResolveSalesWindowTrailingTimeframes(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		timeframe   string
		wantStart   time.Time
		granularity string
	}{
		{"weekly", now.AddDate(0, 0, -7), models.BucketByDay},
		{"monthly", now.AddDate(0, 0, -30), models.BucketByDay},
		{"quarterly", now.AddDate(0, 0, -90), models.BucketByMonth},
		{"annually", now.AddDate(-1, 0, 0), models.BucketByMonth},
	}

	for _, tc := range tests {
		t.Run(tc.timeframe, func(t *testing.T) {
			window := ResolveSalesWindow(tc.timeframe, "", "", now)
			assert.Equal(t, tc.wantStart, window.Start)
			assert.Nil(t, window.End, "trailing windows are open-ended")
			assert.Equal(t, tc.granularity, window.Granularity)
		})
	}
}

func TestResolveSalesWindowNeverErrors(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 30, 0, 0, time.UTC)
	annual := ResolveSalesWindow("annually", "", "", now)

	// unknown timeframe, garbage dates, half a range: all resolve to the
	// trailing-year default instead of failing
	for name, window := range map[string]models.SalesWindow{
		"unknown timeframe": ResolveSalesWindow("hourly", "", "", now),
		"empty everything":  ResolveSalesWindow("", "", "", now),
		"garbage dates":     ResolveSalesWindow("", "not-a-date", "also-not", now),
		"only startDate":    ResolveSalesWindow("", "2026-01-01", "", now),
	} {
		assert.Equal(t, annual.Start, window.Start, name)
		assert.Nil(t, window.End, name)
		assert.Equal(t, models.BucketByMonth, window.Granularity, name)
	}
}

func TestResolveSalesWindowStatusFilter(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 30, 0, 0, time.UTC)
	window := ResolveSalesWindow("weekly", "", "", now)

	assert.ElementsMatch(t,
		[]string{"pending", "confirmed", "shipping", "delivered"},
		window.Statuses)
	assert.NotContains(t, window.Statuses, models.OrderStatusCancelled)
}

func TestBucketKeyFormats(t *testing.T) {
	ts := time.Date(2026, 3, 7, 18, 45, 0, 0, time.UTC)

	assert.Equal(t, "2026-03-07", BucketKey(ts, models.BucketByDay))
	assert.Equal(t, "2026-03", BucketKey(ts, models.BucketByMonth))
}
