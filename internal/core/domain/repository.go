package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrUnauthorized = errors.New("unauthorized access")
	ErrInvalidToken = errors.New("invalid or expired token")
)

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

type HomeRepository interface {
	// Create persists the home and registers owner as its first member in one transaction.
	Create(ctx context.Context, home *Home, ownerID string) error

	GetByID(ctx context.Context, id string) (*Home, error)

	GetByInviteCode(ctx context.Context, code string) (*Home, error)

	// GetHomeIDForUser returns ErrNotInHome when the user has no membership.
	GetHomeIDForUser(ctx context.Context, userID string) (string, error)

	AddMember(ctx context.Context, homeID, userID string) error

	RemoveMember(ctx context.Context, homeID, userID string) error

	// ListMembers returns the roster in join order.
	ListMembers(ctx context.Context, homeID string) ([]*Member, error)
}

type TaskRepository interface {
	Create(ctx context.Context, task *Task) error

	GetByID(ctx context.Context, id string) (*Task, error)

	// ListByHomeID returns tasks whose date lies in [from, to), with Completed populated.
	ListByHomeID(ctx context.Context, homeID string, from, to time.Time) ([]*Task, error)

	// Count counts tasks whose date lies in [from, to). With completedOnly
	// only tasks that have a receipt are counted.
	Count(ctx context.Context, homeID string, from, to time.Time, completedOnly bool) (int, error)
}

type ReceiptRepository interface {
	// Create fails with ErrTaskAlreadyCompleted if the task already has a receipt.
	Create(ctx context.Context, receipt *Receipt) error

	// ListByHomeID returns receipts completed in [from, to).
	ListByHomeID(ctx context.Context, homeID string, from, to time.Time) ([]*Receipt, error)
}

// StatisticsStore is everything statistics generation reads from storage.
type StatisticsStore interface {
	GetCurrentMembers(ctx context.Context, homeID string) ([]string, error)
	GetReceipts(ctx context.Context, homeID string, from, to time.Time) ([]*Receipt, error)
	CountTasks(ctx context.Context, homeID string, from, to time.Time, completedOnly bool) (int, error)
}
