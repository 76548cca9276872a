package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrTaskNotFound         = errors.New("task not found")
	ErrTaskTitleEmpty       = errors.New("task title cannot be empty")
	ErrTaskTitleTooLong     = errors.New("task title is too long (max 100 chars)")
	ErrInvalidPoints        = errors.New("points must be at least 1")
	ErrInvalidTaskDate      = errors.New("task date is required")
	ErrTaskAlreadyCompleted = errors.New("task already completed")
	ErrAssigneeNotInHome    = errors.New("assignee is not a member of the home")
)

const MaxTaskTitleLen = 100

type Task struct {
	ID         string    `json:"id" db:"id"`
	HomeID     string    `json:"home_id" db:"home_id"`
	Title      string    `json:"title" db:"title"`
	Points     int       `json:"points" db:"points"`
	Date       time.Time `json:"date" db:"due_date"`
	AssigneeID *string   `json:"assignee_id,omitempty" db:"assignee_id"`
	Completed  bool      `json:"completed" db:"completed"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// NewTask pins the task to the UTC calendar day of date.
func NewTask(homeID, title string, points int, date time.Time, assigneeID *string) (*Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTaskTitleEmpty
	}
	if utf8.RuneCountInString(title) > MaxTaskTitleLen {
		return nil, ErrTaskTitleTooLong
	}
	if points < 1 {
		return nil, ErrInvalidPoints
	}
	if date.IsZero() {
		return nil, ErrInvalidTaskDate
	}

	y, m, d := date.UTC().Date()

	return &Task{
		ID:         uuid.NewString(),
		HomeID:     homeID,
		Title:      title,
		Points:     points,
		Date:       time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		AssigneeID: assigneeID,
		CreatedAt:  time.Now().UTC(),
	}, nil
}
