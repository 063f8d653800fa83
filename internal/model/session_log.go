package model

import (
	"time"
)

// SessionLog records one completed work session (base work plus any flow
// overtime). Abandoned sessions are never logged.
type SessionLog struct {
	ID          string    `json:"id"`
	Task        string    `json:"task"`
	StartedAt   time.Time `json:"started_at"`
	WorkMinutes int       `json:"work_minutes"`
	FlowMinutes int       `json:"flow_minutes"`
	XPAwarded   int       `json:"xp_awarded"`
	CreatedAt   time.Time `json:"created_at"`
}

// TotalMinutes returns work plus flow minutes
func (s *SessionLog) TotalMinutes() int {
	return s.WorkMinutes + s.FlowMinutes
}
