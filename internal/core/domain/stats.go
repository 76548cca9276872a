package domain

import (
	"errors"
	"time"
)

var (
	ErrInvalidRange               = errors.New("invalid date range")
	ErrStatisticsGenerationFailed = errors.New("failed to generate statistics")
)

// DataPoint holds the points earned on one calendar day by some owner scope.
// PointsWeek is the rolling seven-day total that includes this day.
type DataPoint struct {
	Date       time.Time `json:"date"`
	PointsDay  int       `json:"pointsDay"`
	PointsWeek int       `json:"pointsWeek"`
}

type HomeStatistic struct {
	Data []DataPoint `json:"data"`
}

type UserRef struct {
	ID string `json:"id"`
}

// UserStatistic is the per-member series. A nil User collects points of
// completers that are no longer part of the home.
type UserStatistic struct {
	User *UserRef    `json:"user"`
	Data []DataPoint `json:"data"`
}

type ProgressMetric struct {
	WindowDays int     `json:"window_days"`
	Completed  int     `json:"completed"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

type StatsInput struct {
	HomeID    string
	StartDate time.Time
	EndDate   time.Time
	Location  *time.Location
}

type ProgressInput struct {
	HomeID     string
	WindowDays int
	Today      time.Time
	Location   *time.Location
}

// ProgressPercentage reports completed/total as a percentage. An empty
// window counts as fully done.
func ProgressPercentage(completed, total int) float64 {
	if total == 0 {
		return 100
	}
	return float64(completed) / float64(total) * 100
}
