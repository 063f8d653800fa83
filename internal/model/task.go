package model

import (
	"fmt"
	"time"
)

// Task represents a focus target created through the CLI.
// Completed tasks are retained; ids are never reused.
type Task struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Done        bool       `json:"done"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Label returns the "id: name" form used by the task picker and list output
func (t *Task) Label() string {
	return fmt.Sprintf("%d: %s", t.ID, t.Name)
}
