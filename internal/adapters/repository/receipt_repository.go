package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/comitanigiacomo/kanso-home/internal/core/domain"
)

type SQLReceiptRepository struct {
	db *sqlx.DB
}

func NewSQLReceiptRepository(db *sqlx.DB) *SQLReceiptRepository {
	return &SQLReceiptRepository{db: db}
}

func (r *SQLReceiptRepository) Create(ctx context.Context, receipt *domain.Receipt) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := r.db.Rebind(`
		INSERT INTO receipts (id, task_id, home_id, completer_id, points, completion_date)
		VALUES (?, ?, ?, ?, ?, ?)
	`)

	_, err := r.db.ExecContext(ctx, query,
		receipt.ID,
		receipt.TaskID,
		receipt.HomeID,
		receipt.CompleterID,
		receipt.Points,
		receipt.CompletionDate.UTC(),
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrTaskAlreadyCompleted
		case isForeignKeyViolation(err):
			return domain.ErrTaskNotFound
		}
		return fmt.Errorf("repository: create receipt failed: %w", err)
	}

	return nil
}

func (r *SQLReceiptRepository) ListByHomeID(ctx context.Context, homeID string, from, to time.Time) ([]*domain.Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := r.db.Rebind(`
		SELECT id, task_id, home_id, completer_id, points, completion_date
		FROM receipts
		WHERE home_id = ? AND completion_date >= ? AND completion_date < ?
		ORDER BY completion_date, id
	`)

	receipts := []*domain.Receipt{}
	if err := r.db.SelectContext(ctx, &receipts, query, homeID, from.UTC(), to.UTC()); err != nil {
		return nil, fmt.Errorf("repository: list receipts failed: %w", err)
	}
	for _, rc := range receipts {
		rc.CompletionDate = rc.CompletionDate.UTC()
	}

	return receipts, nil
}
