package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-home/internal/adapters/database"
	"github.com/comitanigiacomo/kanso-home/internal/config"
	"github.com/comitanigiacomo/kanso-home/internal/core/domain"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newSQLiteDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := database.Open(config.DatabaseConfig{
		Driver: database.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "kanso-home.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(context.Background(), db))
	return db
}

func newPostgresDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := database.Open(config.DatabaseConfig{
		Driver:       database.DriverPgx,
		Host:         getEnv("DB_HOST", "localhost"),
		Port:         getEnv("DB_PORT", "5432"),
		User:         getEnv("DB_USER", "kanso_user"),
		Password:     getEnv("DB_PASSWORD", "secret"),
		Name:         getEnv("DB_NAME", "kanso_db"),
		SSLMode:      "disable",
		MaxOpenConns: 5,
	})
	if err != nil {
		t.Skipf("Skipping Postgres integration test: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(context.Background(), db))
	return db
}

// forEachDialect runs fn against SQLite and, when reachable, Postgres.
// Fixtures use random ids so the shared Postgres database needs no cleanup.
func forEachDialect(t *testing.T, fn func(t *testing.T, db *sqlx.DB)) {
	t.Run("sqlite", func(t *testing.T) { fn(t, newSQLiteDB(t)) })
	t.Run("postgres", func(t *testing.T) { fn(t, newPostgresDB(t)) })
}

func seedUser(t *testing.T, db *sqlx.DB, name string) *domain.User {
	t.Helper()

	email := fmt.Sprintf("%s_%s@example.com", name, uuid.NewString())
	user, err := domain.NewUser(uuid.NewString(), email, name)
	require.NoError(t, err)
	user.PasswordHash = "not-a-real-hash"

	require.NoError(t, NewSQLUserRepository(db).Create(context.Background(), user))
	return user
}

func seedHome(t *testing.T, db *sqlx.DB, owner *domain.User, members ...*domain.User) *domain.Home {
	t.Helper()

	home, err := domain.NewHome("Flat " + uuid.NewString()[:4])
	require.NoError(t, err)

	repo := NewSQLHomeRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, home, owner.ID))

	for _, m := range members {
		require.NoError(t, repo.AddMember(ctx, home.ID, m.ID))
	}

	return home
}

func seedTask(t *testing.T, db *sqlx.DB, home *domain.Home, points int, date time.Time) *domain.Task {
	t.Helper()

	task, err := domain.NewTask(home.ID, "Dishes", points, date, nil)
	require.NoError(t, err)
	require.NoError(t, NewSQLTaskRepository(db).Create(context.Background(), task))

	return task
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
