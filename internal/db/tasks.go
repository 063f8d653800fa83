package db

import (
	"database/sql"
	"time"

	"github.com/SamuelSmthSmth/HyprPomo/internal/model"
)

// AddTask creates a new pending task. Ids are assigned by the store in
// increasing order and never reused, even after completion.
func (db *DB) AddTask(name string) (*model.Task, error) {
	now := time.Now()

	res, err := db.Exec(`
		INSERT INTO tasks (name, done, created_at)
		VALUES (?, 0, ?)
	`, name, now)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &model.Task{
		ID:        int(id),
		Name:      name,
		CreatedAt: now,
	}, nil
}

// PendingTasks returns all not-yet-completed tasks in insertion order
func (db *DB) PendingTasks() ([]model.Task, error) {
	rows, err := db.Query(`
		SELECT id, name, done, created_at, completed_at
		FROM tasks
		WHERE done = 0
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTasks(rows)
}

// GetTask returns a single task by id, or ErrTaskNotFound
func (db *DB) GetTask(id int) (*model.Task, error) {
	row := db.QueryRow(`
		SELECT id, name, done, created_at, completed_at
		FROM tasks WHERE id = ?
	`, id)

	t, err := scanTask(row)
	if err == sql.ErrNoRows {
		return nil, ErrTaskNotFound
	}
	return t, err
}

// CompleteTask marks a task done. The row is retained for history.
// Returns ErrTaskNotFound when the id does not exist; completing an
// already-done task is a no-op.
func (db *DB) CompleteTask(id int) error {
	now := time.Now()

	res, err := db.Exec(`
		UPDATE tasks SET done = 1, completed_at = ?
		WHERE id = ?
	`, now, id)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// Helper functions

func scanTasks(rows *sql.Rows) ([]model.Task, error) {
	var tasks []model.Task
	for rows.Next() {
		t, err := scanTaskRow(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanTask(row *sql.Row) (*model.Task, error) {
	return scanTaskRow(row)
}

func scanTaskRow(s scanner) (*model.Task, error) {
	var t model.Task
	var done int
	var completedAt sql.NullTime

	if err := s.Scan(&t.ID, &t.Name, &done, &t.CreatedAt, &completedAt); err != nil {
		return nil, err
	}

	t.Done = done == 1
	if completedAt.Valid {
		t.CompletedAt = &completedAt.Time
	}

	return &t, nil
}
