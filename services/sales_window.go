package services

import (
	"time"

	"github.com/Lumen-Ecommerce/lumen-cms-backend/models"
)

const dateParam = "2006-01-02"

// Spans longer than this many days are bucketed by month so the chart never
// plots an unbounded number of points.
const maxDailySpanDays = 60

// ResolveSalesWindow turns raw dashboard query params into a fully-resolved
// SalesWindow before any data access happens.
//
// An explicit startDate/endDate pair (inclusive calendar dates) wins over
// timeframe. Otherwise timeframe selects a trailing window ending at now:
// weekly = 7 days by day, monthly = 30 days by day, quarterly = 90 days by
// month, annually = 1 year by month.
//
// Malformed or missing input is never an error: anything unrecognizable
// falls through to the trailing-year default. Dashboard endpoints do not
// 400 on bad query params.
func ResolveSalesWindow(timeframe, startDate, endDate string, now time.Time) models.SalesWindow {
	if startDate != "" && endDate != "" {
		from, errFrom := time.ParseInLocation(dateParam, startDate, now.Location())
		to, errTo := time.ParseInLocation(dateParam, endDate, now.Location())
		if errFrom == nil && errTo == nil {
			start := startOfDay(from)
			end := endOfDay(to)

			granularity := models.BucketByDay
			if int(end.Sub(start).Hours()/24) > maxDailySpanDays {
				granularity = models.BucketByMonth
			}

			return models.SalesWindow{
				Start:       start,
				End:         &end,
				Statuses:    models.NonCancelledStatuses,
				Granularity: granularity,
			}
		}
		// unparseable dates fall through to the timeframe branch
	}

	var (
		start       time.Time
		granularity string
	)
	switch timeframe {
	case "weekly":
		start = now.AddDate(0, 0, -7)
		granularity = models.BucketByDay
	case "monthly":
		start = now.AddDate(0, 0, -30)
		granularity = models.BucketByDay
	case "quarterly":
		start = now.AddDate(0, 0, -90)
		granularity = models.BucketByMonth
	default: // "annually" and anything unrecognized
		start = now.AddDate(-1, 0, 0)
		granularity = models.BucketByMonth
	}

	return models.SalesWindow{
		Start:       start,
		End:         nil, // open window to "now"
		Statuses:    models.NonCancelledStatuses,
		Granularity: granularity,
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// BucketKey truncates a timestamp to its series bucket label. Both formats
// sort correctly as plain strings.
func BucketKey(t time.Time, granularity string) string {
	if granularity == models.BucketByMonth {
		return t.Format("2006-01")
	}
	return t.Format("2006-01-02")
}
