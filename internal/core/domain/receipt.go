package domain

import (
	"time"

	"github.com/google/uuid"
)

// Receipt records that a task was completed. CompleterID is nil once the
// completing account no longer exists.
type Receipt struct {
	ID             string    `json:"id" db:"id"`
	TaskID         string    `json:"task_id" db:"task_id"`
	HomeID         string    `json:"home_id" db:"home_id"`
	CompleterID    *string   `json:"completer_id" db:"completer_id"`
	Points         int       `json:"points" db:"points"`
	CompletionDate time.Time `json:"completion_date" db:"completion_date"`
}

func NewReceipt(task *Task, completerID string, at time.Time) *Receipt {
	completer := completerID
	return &Receipt{
		ID:             uuid.NewString(),
		TaskID:         task.ID,
		HomeID:         task.HomeID,
		CompleterID:    &completer,
		Points:         task.Points,
		CompletionDate: at.UTC(),
	}
}
