package repository

import (
	"context"
	"time"

	"github.com/comitanigiacomo/kanso-home/internal/core/domain"
)

// StatisticsStore reads statistics inputs through the aggregate repositories.
type StatisticsStore struct {
	homes    domain.HomeRepository
	receipts domain.ReceiptRepository
	tasks    domain.TaskRepository
}

func NewStatisticsStore(homes domain.HomeRepository, receipts domain.ReceiptRepository, tasks domain.TaskRepository) *StatisticsStore {
	return &StatisticsStore{
		homes:    homes,
		receipts: receipts,
		tasks:    tasks,
	}
}

func (s *StatisticsStore) GetCurrentMembers(ctx context.Context, homeID string) ([]string, error) {
	members, err := s.homes.ListMembers(ctx, homeID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.UserID)
	}

	return ids, nil
}

func (s *StatisticsStore) GetReceipts(ctx context.Context, homeID string, from, to time.Time) ([]*domain.Receipt, error) {
	return s.receipts.ListByHomeID(ctx, homeID, from, to)
}

func (s *StatisticsStore) CountTasks(ctx context.Context, homeID string, from, to time.Time, completedOnly bool) (int, error) {
	return s.tasks.Count(ctx, homeID, from, to, completedOnly)
}
