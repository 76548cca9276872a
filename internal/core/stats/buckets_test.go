package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildBuckets(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"single day", day(2022, 1, 1), day(2022, 1, 1), 1},
		{"eight days", day(2022, 1, 1), day(2022, 1, 8), 8},
		{"across month end", day(2022, 1, 30), day(2022, 2, 2), 4},
		{"leap day", day(2024, 2, 28), day(2024, 3, 1), 3},
		{"full year", day(2022, 1, 1), day(2022, 12, 31), 365},
		{"time of day is ignored", day(2022, 1, 1).Add(23 * time.Hour), day(2022, 1, 3).Add(time.Hour), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buckets := BuildBuckets(tt.start, tt.end)
			require.Len(t, buckets, tt.want)

			first := Midnight(tt.start)
			for i, b := range buckets {
				assert.True(t, b.Date.Equal(first.AddDate(0, 0, i)), "bucket %d has date %v", i, b.Date)
				assert.Zero(t, b.PointsDay)
				assert.Zero(t, b.PointsWeek)
			}
		})
	}

	t.Run("Inverted range yields no buckets", func(t *testing.T) {
		assert.Empty(t, BuildBuckets(day(2022, 1, 8), day(2022, 1, 1)))
	})

	t.Run("Buckets stay at local midnight across DST", func(t *testing.T) {
		rome, err := time.LoadLocation("Europe/Rome")
		if err != nil {
			t.Skip("tzdata not available")
		}

		start := time.Date(2022, 3, 26, 0, 0, 0, 0, rome)
		end := time.Date(2022, 3, 28, 0, 0, 0, 0, rome)

		buckets := BuildBuckets(start, end)
		require.Len(t, buckets, 3)
		for _, b := range buckets {
			assert.Equal(t, 0, b.Date.Hour())
		}
		assert.Equal(t, 27, buckets[1].Date.Day())
	})
}

func TestDayOffset(t *testing.T) {
	start := day(2022, 1, 1)

	tests := []struct {
		name   string
		target time.Time
		want   int
	}{
		{"same instant", start, 0},
		{"later the same day", start.Add(23*time.Hour + 59*time.Minute), 0},
		{"next day", day(2022, 1, 2), 1},
		{"one second after midnight", day(2022, 1, 6).Add(time.Second), 5},
		{"before the start", day(2021, 12, 25), -7},
		{"late on the day before", start.Add(-time.Minute), -1},
		{"past any bucket length", day(2022, 2, 1), 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DayOffset(start, tt.target))
		})
	}

	t.Run("Target is read in the reference location", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*3600)
		localStart := time.Date(2022, 1, 1, 0, 0, 0, 0, tokyo)

		// 2022-01-01 20:00 UTC is already 2022-01-02 in Tokyo.
		assert.Equal(t, 1, DayOffset(localStart, time.Date(2022, 1, 1, 20, 0, 0, 0, time.UTC)))
	})

	t.Run("DST days count as one day", func(t *testing.T) {
		ny, err := time.LoadLocation("America/New_York")
		if err != nil {
			t.Skip("tzdata not available")
		}

		s := time.Date(2022, 3, 12, 0, 0, 0, 0, ny)
		assert.Equal(t, 2, DayOffset(s, time.Date(2022, 3, 14, 0, 0, 0, 0, ny)))
	})
}
