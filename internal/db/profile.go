package db

import (
	"database/sql"
	"time"

	"github.com/SamuelSmthSmth/HyprPomo/internal/model"
)

// GetProfile returns the singleton progression row
func (db *DB) GetProfile() (*model.Profile, error) {
	return getProfile(db)
}

// GetProfileTx reads the profile inside a transaction
func GetProfileTx(tx *sql.Tx) (*model.Profile, error) {
	return getProfile(tx)
}

// SaveProfileTx writes all profile fields inside a transaction
func SaveProfileTx(tx *sql.Tx, p *model.Profile) error {
	return saveProfile(tx, p)
}

func getProfile(q dbtx) (*model.Profile, error) {
	var p model.Profile
	err := q.QueryRow(`
		SELECT total_xp, sessions_completed, focus_minutes, sessions_today, bounty_date, updated_at
		FROM profile WHERE id = 1
	`).Scan(&p.TotalXP, &p.SessionsCompleted, &p.FocusMinutes, &p.SessionsToday, &p.BountyDate, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func saveProfile(q dbtx, p *model.Profile) error {
	p.UpdatedAt = time.Now()
	_, err := q.Exec(`
		UPDATE profile
		SET total_xp = ?, sessions_completed = ?, focus_minutes = ?,
		    sessions_today = ?, bounty_date = ?, updated_at = ?
		WHERE id = 1
	`, p.TotalXP, p.SessionsCompleted, p.FocusMinutes, p.SessionsToday, p.BountyDate, p.UpdatedAt)
	return err
}
