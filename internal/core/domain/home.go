package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrHomeNotFound    = errors.New("home not found")
	ErrHomeNameEmpty   = errors.New("home name cannot be empty")
	ErrHomeNameTooLong = errors.New("home name is too long (max 100 chars)")
	ErrAlreadyInHome   = errors.New("user already belongs to a home")
	ErrNotInHome       = errors.New("user does not belong to a home")
)

const (
	MaxHomeNameLen = 100
	inviteCodeLen  = 8
)

type Home struct {
	ID         string    `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	InviteCode string    `json:"invite_code" db:"invite_code"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

type Member struct {
	UserID   string    `json:"id" db:"user_id"`
	Name     string    `json:"name" db:"name"`
	JoinedAt time.Time `json:"joined_at" db:"joined_at"`
}

func NewHome(name string) (*Home, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrHomeNameEmpty
	}
	if utf8.RuneCountInString(name) > MaxHomeNameLen {
		return nil, ErrHomeNameTooLong
	}

	return &Home{
		ID:         uuid.NewString(),
		Name:       name,
		InviteCode: NewInviteCode(),
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// NewInviteCode derives a short upper-case code from a random uuid.
func NewInviteCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:inviteCodeLen])
}

func NormalizeInviteCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
