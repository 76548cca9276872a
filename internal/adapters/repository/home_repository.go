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

type SQLHomeRepository struct {
	db *sqlx.DB
}

func NewSQLHomeRepository(db *sqlx.DB) *SQLHomeRepository {
	return &SQLHomeRepository{db: db}
}

func (r *SQLHomeRepository) Create(ctx context.Context, home *domain.Home, ownerID string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("repository: begin create home failed: %w", err)
	}
	defer tx.Rollback()

	insertHome := r.db.Rebind(`
		INSERT INTO homes (id, name, invite_code, created_at)
		VALUES (?, ?, ?, ?)
	`)
	if _, err := tx.ExecContext(ctx, insertHome, home.ID, home.Name, home.InviteCode, home.CreatedAt.UTC()); err != nil {
		return fmt.Errorf("repository: create home failed: %w", err)
	}

	if err := r.insertMember(ctx, tx, home.ID, ownerID, home.CreatedAt); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("repository: commit create home failed: %w", err)
	}

	return nil
}

func (r *SQLHomeRepository) GetByID(ctx context.Context, id string) (*domain.Home, error) {
	return r.getOne(ctx, "id", id)
}

func (r *SQLHomeRepository) GetByInviteCode(ctx context.Context, code string) (*domain.Home, error) {
	return r.getOne(ctx, "invite_code", code)
}

func (r *SQLHomeRepository) getOne(ctx context.Context, column, value string) (*domain.Home, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := r.db.Rebind(`
		SELECT id, name, invite_code, created_at
		FROM homes
		WHERE ` + column + ` = ?
	`)

	var home domain.Home
	if err := r.db.GetContext(ctx, &home, query, value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHomeNotFound
		}
		return nil, fmt.Errorf("repository: get home by %s failed: %w", column, err)
	}
	home.CreatedAt = home.CreatedAt.UTC()

	return &home, nil
}

func (r *SQLHomeRepository) GetHomeIDForUser(ctx context.Context, userID string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var homeID string
	err := r.db.GetContext(ctx, &homeID, r.db.Rebind(`SELECT home_id FROM home_members WHERE user_id = ?`), userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrNotInHome
		}
		return "", fmt.Errorf("repository: get home for user failed: %w", err)
	}

	return homeID, nil
}

func (r *SQLHomeRepository) AddMember(ctx context.Context, homeID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return r.insertMember(ctx, r.db, homeID, userID, time.Now())
}

func (r *SQLHomeRepository) insertMember(ctx context.Context, exec sqlx.ExecerContext, homeID, userID string, joinedAt time.Time) error {
	query := r.db.Rebind(`
		INSERT INTO home_members (home_id, user_id, joined_at)
		VALUES (?, ?, ?)
	`)

	if _, err := exec.ExecContext(ctx, query, homeID, userID, joinedAt.UTC()); err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrAlreadyInHome
		case isForeignKeyViolation(err):
			return domain.ErrHomeNotFound
		}
		return fmt.Errorf("repository: add member failed: %w", err)
	}

	return nil
}

func (r *SQLHomeRepository) RemoveMember(ctx context.Context, homeID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		r.db.Rebind(`DELETE FROM home_members WHERE home_id = ? AND user_id = ?`), homeID, userID)
	if err != nil {
		return fmt.Errorf("repository: remove member failed: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("repository: remove member failed: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotInHome
	}

	return nil
}

func (r *SQLHomeRepository) ListMembers(ctx context.Context, homeID string) ([]*domain.Member, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := r.db.Rebind(`
		SELECT m.user_id, u.name, m.joined_at
		FROM home_members m
		JOIN users u ON u.id = m.user_id
		WHERE m.home_id = ?
		ORDER BY m.joined_at, m.user_id
	`)

	members := []*domain.Member{}
	if err := r.db.SelectContext(ctx, &members, query, homeID); err != nil {
		return nil, fmt.Errorf("repository: list members failed: %w", err)
	}
	for _, m := range members {
		m.JoinedAt = m.JoinedAt.UTC()
	}

	return members, nil
}
