package services

import (
	"context"
	"fmt"
	"time"

	"github.com/comitanigiacomo/kanso-home/internal/core/domain"
)

type TaskService struct {
	repo     domain.TaskRepository
	receipts domain.ReceiptRepository
	homes    domain.HomeRepository
	now      func() time.Time
}

func NewTaskService(repo domain.TaskRepository, receipts domain.ReceiptRepository, homes domain.HomeRepository) *TaskService {
	return &TaskService{
		repo:     repo,
		receipts: receipts,
		homes:    homes,
		now:      time.Now,
	}
}

type CreateTaskInput struct {
	UserID     string
	Title      string
	Points     int
	Date       time.Time
	AssigneeID *string
}

func (s *TaskService) Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	homeID, err := s.homes.GetHomeIDForUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	task, err := domain.NewTask(homeID, input.Title, input.Points, input.Date, input.AssigneeID)
	if err != nil {
		return nil, err
	}

	if task.AssigneeID != nil {
		assigneeHome, err := s.homes.GetHomeIDForUser(ctx, *task.AssigneeID)
		if err != nil || assigneeHome != homeID {
			return nil, domain.ErrAssigneeNotInHome
		}
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// List returns the caller's home tasks dated in [from, to].
func (s *TaskService) List(ctx context.Context, userID string, from, to time.Time) ([]*domain.Task, error) {
	homeID, err := s.homes.GetHomeIDForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if from.After(to) {
		return nil, fmt.Errorf("%w: from is after to", domain.ErrInvalidRange)
	}

	return s.repo.ListByHomeID(ctx, homeID, from, to.AddDate(0, 0, 1))
}

// Complete issues the receipt for a task on behalf of the caller.
func (s *TaskService) Complete(ctx context.Context, userID, taskID string) (*domain.Receipt, error) {
	homeID, err := s.homes.GetHomeIDForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	task, err := s.repo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.HomeID != homeID {
		return nil, domain.ErrTaskNotFound
	}
	if task.Completed {
		return nil, domain.ErrTaskAlreadyCompleted
	}

	receipt := domain.NewReceipt(task, userID, s.now())
	if err := s.receipts.Create(ctx, receipt); err != nil {
		return nil, err
	}

	return receipt, nil
}
