package db

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// ErrTaskNotFound is returned when a task id does not exist
var ErrTaskNotFound = errors.New("task not found")

// DB wraps the SQL database connection
type DB struct {
	*sql.DB
}

// dbtx is satisfied by both *sql.DB and *sql.Tx so the same queries can
// run standalone or inside a transaction
type dbtx interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// DefaultDataDir returns the default data directory path
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".hypr_pomo"
	}
	return filepath.Join(home, ".local", "share", "hypr_pomo")
}

// DefaultDBPath returns the default database file path
func DefaultDBPath() string {
	return filepath.Join(DefaultDataDir(), "hypr_pomo.db")
}

// Open opens the progress store and runs migrations. An existing file
// that cannot be opened or migrated is moved aside and a fresh store is
// initialized in its place, so a corrupt store never blocks startup.
func Open(dbPath string) (*DB, error) {
	db, err := open(dbPath)
	if err == nil {
		return db, nil
	}

	if _, statErr := os.Stat(dbPath); statErr != nil {
		return nil, err
	}

	backup := fmt.Sprintf("%s.corrupt-%s", dbPath, time.Now().Format("20060102T150405"))
	if renameErr := os.Rename(dbPath, backup); renameErr != nil {
		return nil, err
	}
	// Stale WAL sidecars must not leak into the fresh store
	for _, suffix := range []string{"-wal", "-shm"} {
		if _, serr := os.Stat(dbPath + suffix); serr == nil {
			os.Rename(dbPath+suffix, backup+suffix)
		}
	}
	fmt.Fprintf(os.Stderr, "warning: progress store was unreadable (%v); backed up to %s and reinitialized\n", err, backup)

	return open(dbPath)
}

func open(dbPath string) (*DB, error) {
	// Ensure the directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	// WAL mode keeps the one-shot commands (add/list/done) from blocking
	// on a running timer instance
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=ON", dbPath)
	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := &DB{DB: sqlDB}

	if err := db.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// migrate runs database migrations using embedded SQL files
func (db *DB) migrate() error {
	// Silence goose logging (it corrupts TUI output)
	goose.SetLogger(log.New(io.Discard, "", 0))
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if err := goose.Up(db.DB, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}

// Transaction executes a function within a transaction
func (db *DB) Transaction(fn func(*sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
