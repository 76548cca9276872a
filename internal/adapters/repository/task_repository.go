package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/comitanigiacomo/kanso-home/internal/core/domain"
)

const taskColumns = `
	t.id, t.home_id, t.title, t.points, t.due_date, t.assignee_id, t.created_at,
	EXISTS (SELECT 1 FROM receipts r WHERE r.task_id = t.id) AS completed
`

type SQLTaskRepository struct {
	db *sqlx.DB
}

func NewSQLTaskRepository(db *sqlx.DB) *SQLTaskRepository {
	return &SQLTaskRepository{db: db}
}

func (r *SQLTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := r.db.Rebind(`
		INSERT INTO tasks (id, home_id, title, points, due_date, assignee_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)

	_, err := r.db.ExecContext(ctx, query,
		task.ID,
		task.HomeID,
		task.Title,
		task.Points,
		task.Date.UTC(),
		task.AssigneeID,
		task.CreatedAt.UTC(),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrHomeNotFound
		}
		return fmt.Errorf("repository: create task failed: %w", err)
	}

	return nil
}

func (r *SQLTaskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := r.db.Rebind(`SELECT ` + taskColumns + ` FROM tasks t WHERE t.id = ?`)

	var task domain.Task
	if err := r.db.GetContext(ctx, &task, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("repository: get task failed: %w", err)
	}
	normalizeTask(&task)

	return &task, nil
}

func (r *SQLTaskRepository) ListByHomeID(ctx context.Context, homeID string, from, to time.Time) ([]*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := r.db.Rebind(`
		SELECT ` + taskColumns + `
		FROM tasks t
		WHERE t.home_id = ? AND t.due_date >= ? AND t.due_date < ?
		ORDER BY t.due_date, t.created_at, t.id
	`)

	tasks := []*domain.Task{}
	if err := r.db.SelectContext(ctx, &tasks, query, homeID, from.UTC(), to.UTC()); err != nil {
		return nil, fmt.Errorf("repository: list tasks failed: %w", err)
	}
	for _, t := range tasks {
		normalizeTask(t)
	}

	return tasks, nil
}

func (r *SQLTaskRepository) Count(ctx context.Context, homeID string, from, to time.Time, completedOnly bool) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `
		SELECT COUNT(*)
		FROM tasks t
		WHERE t.home_id = ? AND t.due_date >= ? AND t.due_date < ?
	`
	if completedOnly {
		query += ` AND EXISTS (SELECT 1 FROM receipts r WHERE r.task_id = t.id)`
	}

	var count int
	if err := r.db.GetContext(ctx, &count, r.db.Rebind(query), homeID, from.UTC(), to.UTC()); err != nil {
		return 0, fmt.Errorf("repository: count tasks failed: %w", err)
	}

	return count, nil
}

func normalizeTask(t *domain.Task) {
	t.Date = t.Date.UTC()
	t.CreatedAt = t.CreatedAt.UTC()
}
