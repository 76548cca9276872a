// Package stats turns completion receipts into day-bucketed point series.
//
// Every function here is pure: buckets are built fresh per request and the
// only mutation is point addition into caller-owned slices.
package stats

import (
	"time"

	"github.com/comitanigiacomo/kanso-home/internal/core/domain"
)

// WeekLength is the width of the rolling window behind DataPoint.PointsWeek.
const WeekLength = 7

// ReceiptLookback is how far before the first bucket receipts must be loaded
// so that the first weekly totals are complete. It scales with WeekLength.
const ReceiptLookback = WeekLength

// Midnight returns 00:00:00 of t's calendar day in t's own location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// BuildBuckets returns one zeroed DataPoint per calendar day in [start, end],
// dated at midnight in start's location. It does not validate the range:
// an inverted range yields an empty slice.
func BuildBuckets(start, end time.Time) []domain.DataPoint {
	first := Midnight(start)
	n := DayOffset(first, end) + 1
	if n <= 0 {
		return []domain.DataPoint{}
	}

	buckets := make([]domain.DataPoint, n)
	for i := range buckets {
		buckets[i].Date = first.AddDate(0, 0, i)
	}
	return buckets
}

// DayOffset counts whole calendar days from referenceStart to target, reading
// target in referenceStart's location. Negative when target is earlier.
func DayOffset(referenceStart, target time.Time) int {
	loc := referenceStart.Location()
	return int(civilDay(target.In(loc)).Sub(civilDay(referenceStart)).Hours() / 24)
}

// civilDay maps a wall-clock date onto UTC so day arithmetic ignores DST.
func civilDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
