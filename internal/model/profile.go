package model

import (
	"time"
)

// Profile is the singleton progression record. Level is always derived
// from TotalXP, never stored.
type Profile struct {
	TotalXP           int       `json:"total_xp"`
	SessionsCompleted int       `json:"sessions_completed"` // lifetime
	FocusMinutes      int       `json:"focus_minutes"`      // lifetime work+flow minutes
	SessionsToday     int       `json:"sessions_today"`     // reset with the bounty date rollover
	BountyDate        string    `json:"bounty_date"`        // local calendar date, YYYY-MM-DD
	UpdatedAt         time.Time `json:"updated_at"`
}
