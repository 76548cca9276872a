package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/comitanigiacomo/kanso-home/internal/core/domain"
)

type MockStatsStore struct {
	mock.Mock
}

func (m *MockStatsStore) GetCurrentMembers(ctx context.Context, homeID string) ([]string, error) {
	args := m.Called(ctx, homeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockStatsStore) GetReceipts(ctx context.Context, homeID string, from, to time.Time) ([]*domain.Receipt, error) {
	args := m.Called(ctx, homeID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Receipt), args.Error(1)
}

func (m *MockStatsStore) CountTasks(ctx context.Context, homeID string, from, to time.Time, completedOnly bool) (int, error) {
	args := m.Called(ctx, homeID, from, to, completedOnly)
	return args.Int(0), args.Error(1)
}

type MockHomeRepo struct {
	mock.Mock
}

func (m *MockHomeRepo) Create(ctx context.Context, home *domain.Home, ownerID string) error {
	return m.Called(ctx, home, ownerID).Error(0)
}

func (m *MockHomeRepo) GetByID(ctx context.Context, id string) (*domain.Home, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Home), args.Error(1)
}

func (m *MockHomeRepo) GetByInviteCode(ctx context.Context, code string) (*domain.Home, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Home), args.Error(1)
}

func (m *MockHomeRepo) GetHomeIDForUser(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockHomeRepo) AddMember(ctx context.Context, homeID, userID string) error {
	return m.Called(ctx, homeID, userID).Error(0)
}

func (m *MockHomeRepo) RemoveMember(ctx context.Context, homeID, userID string) error {
	return m.Called(ctx, homeID, userID).Error(0)
}

func (m *MockHomeRepo) ListMembers(ctx context.Context, homeID string) ([]*domain.Member, error) {
	args := m.Called(ctx, homeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Member), args.Error(1)
}

type MockTaskRepo struct {
	mock.Mock
}

func (m *MockTaskRepo) Create(ctx context.Context, task *domain.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *MockTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskRepo) ListByHomeID(ctx context.Context, homeID string, from, to time.Time) ([]*domain.Task, error) {
	args := m.Called(ctx, homeID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Task), args.Error(1)
}

func (m *MockTaskRepo) Count(ctx context.Context, homeID string, from, to time.Time, completedOnly bool) (int, error) {
	args := m.Called(ctx, homeID, from, to, completedOnly)
	return args.Int(0), args.Error(1)
}

type MockReceiptRepo struct {
	mock.Mock
}

func (m *MockReceiptRepo) Create(ctx context.Context, receipt *domain.Receipt) error {
	return m.Called(ctx, receipt).Error(0)
}

func (m *MockReceiptRepo) ListByHomeID(ctx context.Context, homeID string, from, to time.Time) ([]*domain.Receipt, error) {
	args := m.Called(ctx, homeID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Receipt), args.Error(1)
}
