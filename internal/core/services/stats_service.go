package services

import (
	"context"
	"fmt"
	"time"

	"github.com/comitanigiacomo/kanso-home/internal/core/domain"
	"github.com/comitanigiacomo/kanso-home/internal/core/stats"
)

type StatsService struct {
	store domain.StatisticsStore
}

func NewStatsService(store domain.StatisticsStore) *StatsService {
	return &StatsService{
		store: store,
	}
}

// window normalizes the requested range to midnights in the input location
// and returns the receipt query bounds [from, to).
func window(input domain.StatsInput) (start, end, from, to time.Time, err error) {
	loc := input.Location
	if loc == nil {
		loc = time.UTC
	}

	start = stats.Midnight(input.StartDate.In(loc))
	end = stats.Midnight(input.EndDate.In(loc))
	if start.After(end) {
		return start, end, from, to, fmt.Errorf("%w: start date %s is after end date %s", domain.ErrInvalidRange,
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	from = start.AddDate(0, 0, -stats.ReceiptLookback)
	to = end.AddDate(0, 0, 1)
	return start, end, from, to, nil
}

func generationFailed(err error) error {
	return fmt.Errorf("%w: %w", domain.ErrStatisticsGenerationFailed, err)
}

func (s *StatsService) HomeStatistic(ctx context.Context, input domain.StatsInput) (*domain.HomeStatistic, error) {
	start, end, from, to, err := window(input)
	if err != nil {
		return nil, err
	}

	receipts, err := s.store.GetReceipts(ctx, input.HomeID, from, to)
	if err != nil {
		return nil, generationFailed(err)
	}

	buckets := stats.BuildBuckets(start, end)
	stats.AttributeAll(receipts, buckets, start)

	return &domain.HomeStatistic{Data: buckets}, nil
}

func (s *StatsService) UserStatistics(ctx context.Context, input domain.StatsInput) ([]domain.UserStatistic, error) {
	start, end, from, to, err := window(input)
	if err != nil {
		return nil, err
	}

	members, err := s.store.GetCurrentMembers(ctx, input.HomeID)
	if err != nil {
		return nil, generationFailed(err)
	}

	receipts, err := s.store.GetReceipts(ctx, input.HomeID, from, to)
	if err != nil {
		return nil, generationFailed(err)
	}

	targets := make(map[string][]domain.DataPoint, len(members))
	for _, id := range members {
		targets[id] = stats.BuildBuckets(start, end)
	}
	unknown := stats.BuildBuckets(start, end)

	routedToUnknown := stats.Attribute(receipts, targets, unknown, start)

	result := make([]domain.UserStatistic, 0, len(members)+1)
	for _, id := range members {
		result = append(result, domain.UserStatistic{
			User: &domain.UserRef{ID: id},
			Data: targets[id],
		})
	}

	if routedToUnknown > 0 {
		result = append(result, domain.UserStatistic{User: nil, Data: unknown})
	}

	return result, nil
}

func (s *StatsService) Progress(ctx context.Context, input domain.ProgressInput) (*domain.ProgressMetric, error) {
	if input.WindowDays < 0 {
		return nil, fmt.Errorf("%w: negative window of %d days", domain.ErrInvalidRange, input.WindowDays)
	}

	loc := input.Location
	if loc == nil {
		loc = time.UTC
	}

	today := input.Today
	if today.IsZero() {
		today = time.Now()
	}

	// Task due dates are stored as UTC midnights, so the window is the
	// caller's calendar day expressed in UTC.
	y, m, d := today.In(loc).Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, input.WindowDays+1)

	total, err := s.store.CountTasks(ctx, input.HomeID, from, to, false)
	if err != nil {
		return nil, generationFailed(err)
	}

	completed, err := s.store.CountTasks(ctx, input.HomeID, from, to, true)
	if err != nil {
		return nil, generationFailed(err)
	}

	return &domain.ProgressMetric{
		WindowDays: input.WindowDays,
		Completed:  completed,
		Total:      total,
		Percentage: domain.ProgressPercentage(completed, total),
	}, nil
}
