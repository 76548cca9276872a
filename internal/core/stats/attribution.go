package stats

import (
	"time"

	"github.com/comitanigiacomo/kanso-home/internal/core/domain"
)

// Attribute folds receipts into the per-owner series in targets. Receipts
// whose completer is nil or not a key of targets land in unknown. It returns
// how many receipts added points to unknown; a lookback receipt whose week
// ends before the first bucket is not counted.
//
// A receipt completed on day d adds its points to PointsDay of d and to
// PointsWeek of d..d+WeekLength-1. Indices outside the series are skipped.
func Attribute(receipts []*domain.Receipt, targets map[string][]domain.DataPoint, unknown []domain.DataPoint, rangeStart time.Time) int {
	routedToUnknown := 0

	for _, r := range receipts {
		buckets, ok := ownerBuckets(r, targets)
		if !ok {
			buckets = unknown
		}
		if landed := addPoints(buckets, DayOffset(rangeStart, r.CompletionDate), r.Points); landed && !ok {
			routedToUnknown++
		}
	}

	return routedToUnknown
}

// AttributeAll folds every receipt into a single series, regardless of who
// completed it.
func AttributeAll(receipts []*domain.Receipt, buckets []domain.DataPoint, rangeStart time.Time) {
	for _, r := range receipts {
		addPoints(buckets, DayOffset(rangeStart, r.CompletionDate), r.Points)
	}
}

func ownerBuckets(r *domain.Receipt, targets map[string][]domain.DataPoint) ([]domain.DataPoint, bool) {
	if r.CompleterID == nil {
		return nil, false
	}
	buckets, ok := targets[*r.CompleterID]
	return buckets, ok
}

// addPoints reports whether any bucket was touched.
func addPoints(buckets []domain.DataPoint, index, points int) bool {
	if index >= 0 && index < len(buckets) {
		buckets[index].PointsDay += points
	}

	landed := false
	for i := 0; i < WeekLength; i++ {
		if j := index + i; j >= 0 && j < len(buckets) {
			buckets[j].PointsWeek += points
			landed = true
		}
	}
	return landed
}
