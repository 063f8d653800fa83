package db

import (
	"database/sql"
	"time"

	"github.com/SamuelSmthSmth/HyprPomo/internal/model"
	"github.com/google/uuid"
)

// InsertSessionLogTx appends a completed session to the history ledger.
// The id is assigned here when the caller leaves it empty.
func InsertSessionLogTx(tx *sql.Tx, l model.SessionLog) (string, error) {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}

	_, err := tx.Exec(`
		INSERT INTO session_logs (id, task, started_at, work_minutes, flow_minutes, xp_awarded, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, l.ID, l.Task, l.StartedAt, l.WorkMinutes, l.FlowMinutes, l.XPAwarded, l.CreatedAt)
	if err != nil {
		return "", err
	}

	return l.ID, nil
}

// CountSessionLogs returns the number of recorded sessions
func (db *DB) CountSessionLogs() (int, error) {
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM session_logs`).Scan(&n)
	return n, err
}
