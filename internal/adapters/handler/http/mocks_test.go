package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	adapterHTTP "github.com/comitanigiacomo/kanso-home/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-home/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/kanso-home/internal/core/domain"
	"github.com/comitanigiacomo/kanso-home/internal/core/services"
)

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

type fixture struct {
	router   *gin.Engine
	homes    *MockHomeRepo
	tasks    *MockTaskRepo
	receipts *MockReceiptRepo
	store    *MockStatsStore
}

// newFixture wires the real services on mocked storage. The caller is taken
// from the X-User-ID header instead of a token.
func newFixture() *fixture {
	gin.SetMode(gin.TestMode)

	f := &fixture{
		homes:    new(MockHomeRepo),
		tasks:    new(MockTaskRepo),
		receipts: new(MockReceiptRepo),
		store:    new(MockStatsStore),
	}

	homeSvc := services.NewHomeService(f.homes)
	taskSvc := services.NewTaskService(f.tasks, f.receipts, f.homes)
	statsSvc := services.NewStatsService(f.store)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID := c.GetHeader("X-User-ID"); userID != "" {
			c.Set(middleware.ContextUserIDKey, userID)
		}
		c.Next()
	})

	api := r.Group("/api/v1")
	adapterHTTP.NewHomeHandler(homeSvc).RegisterRoutes(api)
	adapterHTTP.NewTaskHandler(taskSvc).RegisterRoutes(api)
	adapterHTTP.NewStatsHandler(statsSvc, homeSvc, 366).RegisterRoutes(api)

	f.router = r
	return f
}

func (f *fixture) do(method, path, userID, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sameInstant(want time.Time) interface{} {
	return mock.MatchedBy(func(got time.Time) bool { return got.Equal(want) })
}

func strPtr(s string) *string { return &s }
