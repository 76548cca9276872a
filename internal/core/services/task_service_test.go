package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-home/internal/core/domain"
	"github.com/comitanigiacomo/kanso-home/internal/core/services"
)

func setupTaskService() (*services.TaskService, *MockTaskRepo, *MockReceiptRepo, *MockHomeRepo) {
	tasks := new(MockTaskRepo)
	receipts := new(MockReceiptRepo)
	homes := new(MockHomeRepo)
	return services.NewTaskService(tasks, receipts, homes), tasks, receipts, homes
}

func TestTaskService_Create(t *testing.T) {
	ctx := context.Background()
	when := time.Date(2022, 1, 6, 14, 0, 0, 0, time.UTC)

	t.Run("Success: Task is created in the caller's home", func(t *testing.T) {
		svc, tasks, _, homes := setupTaskService()

		homes.On("GetHomeIDForUser", ctx, "u1").Return("home-1", nil)
		tasks.On("Create", ctx, mock.MatchedBy(func(task *domain.Task) bool {
			return task.HomeID == "home-1" && task.Points == 3 && task.Date.Equal(date(2022, 1, 6))
		})).Return(nil)

		task, err := svc.Create(ctx, services.CreateTaskInput{UserID: "u1", Title: "Dishes", Points: 3, Date: when})
		require.NoError(t, err)
		assert.Equal(t, "Dishes", task.Title)
		tasks.AssertExpectations(t)
	})

	t.Run("Fail: Assignee from another home", func(t *testing.T) {
		svc, tasks, _, homes := setupTaskService()
		other := "u9"

		homes.On("GetHomeIDForUser", ctx, "u1").Return("home-1", nil)
		homes.On("GetHomeIDForUser", ctx, "u9").Return("home-2", nil)

		_, err := svc.Create(ctx, services.CreateTaskInput{UserID: "u1", Title: "Dishes", Points: 1, Date: when, AssigneeID: &other})
		assert.ErrorIs(t, err, domain.ErrAssigneeNotInHome)
		tasks.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Fail: Caller without home", func(t *testing.T) {
		svc, _, _, homes := setupTaskService()

		homes.On("GetHomeIDForUser", ctx, "u1").Return("", domain.ErrNotInHome)

		_, err := svc.Create(ctx, services.CreateTaskInput{UserID: "u1", Title: "Dishes", Points: 1, Date: when})
		assert.ErrorIs(t, err, domain.ErrNotInHome)
	})

	t.Run("Fail: Validation error", func(t *testing.T) {
		svc, _, _, homes := setupTaskService()

		homes.On("GetHomeIDForUser", ctx, "u1").Return("home-1", nil)

		_, err := svc.Create(ctx, services.CreateTaskInput{UserID: "u1", Title: "Dishes", Points: 0, Date: when})
		assert.ErrorIs(t, err, domain.ErrInvalidPoints)
	})
}

func TestTaskService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Range end is inclusive", func(t *testing.T) {
		svc, tasks, _, homes := setupTaskService()

		homes.On("GetHomeIDForUser", ctx, "u1").Return("home-1", nil)
		tasks.On("ListByHomeID", ctx, "home-1", date(2022, 1, 1), date(2022, 1, 8)).Return([]*domain.Task{{ID: "t1"}}, nil)

		list, err := svc.List(ctx, "u1", date(2022, 1, 1), date(2022, 1, 7))
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("Inverted range", func(t *testing.T) {
		svc, _, _, homes := setupTaskService()

		homes.On("GetHomeIDForUser", ctx, "u1").Return("home-1", nil)

		_, err := svc.List(ctx, "u1", date(2022, 1, 7), date(2022, 1, 1))
		assert.ErrorIs(t, err, domain.ErrInvalidRange)
	})
}

func TestTaskService_Complete(t *testing.T) {
	ctx := context.Background()
	task := &domain.Task{ID: "t1", HomeID: "home-1", Points: 5, Date: date(2022, 1, 6)}

	t.Run("Success: Receipt carries completer and task points", func(t *testing.T) {
		svc, tasks, receipts, homes := setupTaskService()

		homes.On("GetHomeIDForUser", ctx, "u1").Return("home-1", nil)
		tasks.On("GetByID", ctx, "t1").Return(task, nil)
		receipts.On("Create", ctx, mock.AnythingOfType("*domain.Receipt")).Return(nil)

		receipt, err := svc.Complete(ctx, "u1", "t1")
		require.NoError(t, err)

		require.NotNil(t, receipt.CompleterID)
		assert.Equal(t, "u1", *receipt.CompleterID)
		assert.Equal(t, 5, receipt.Points)
		assert.Equal(t, "home-1", receipt.HomeID)
		assert.WithinDuration(t, time.Now(), receipt.CompletionDate, time.Minute)
	})

	t.Run("Fail: Task of another home looks missing", func(t *testing.T) {
		svc, tasks, receipts, homes := setupTaskService()

		homes.On("GetHomeIDForUser", ctx, "u1").Return("home-2", nil)
		tasks.On("GetByID", ctx, "t1").Return(task, nil)

		_, err := svc.Complete(ctx, "u1", "t1")
		assert.ErrorIs(t, err, domain.ErrTaskNotFound)
		receipts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Fail: Already completed", func(t *testing.T) {
		svc, tasks, receipts, homes := setupTaskService()
		done := *task
		done.Completed = true

		homes.On("GetHomeIDForUser", ctx, "u1").Return("home-1", nil)
		tasks.On("GetByID", ctx, "t1").Return(&done, nil)

		_, err := svc.Complete(ctx, "u1", "t1")
		assert.ErrorIs(t, err, domain.ErrTaskAlreadyCompleted)
		receipts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Fail: Concurrent completion caught by the store", func(t *testing.T) {
		svc, tasks, receipts, homes := setupTaskService()

		homes.On("GetHomeIDForUser", ctx, "u1").Return("home-1", nil)
		tasks.On("GetByID", ctx, "t1").Return(task, nil)
		receipts.On("Create", ctx, mock.Anything).Return(domain.ErrTaskAlreadyCompleted)

		_, err := svc.Complete(ctx, "u1", "t1")
		assert.ErrorIs(t, err, domain.ErrTaskAlreadyCompleted)
	})
}
