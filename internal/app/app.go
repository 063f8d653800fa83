package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/SamuelSmthSmth/HyprPomo/internal/config"
	"github.com/SamuelSmthSmth/HyprPomo/internal/db"
	"github.com/SamuelSmthSmth/HyprPomo/internal/game"
	"github.com/SamuelSmthSmth/HyprPomo/internal/notify"
	"github.com/SamuelSmthSmth/HyprPomo/internal/status"
)

// ErrLocked is returned when another interactive instance holds the lock
var ErrLocked = errors.New("another instance of hyprpomo is already running")

// App holds the timer's state and dependencies
type App struct {
	Config   *config.Config
	DB       *db.DB
	Progress *game.Progress
	Notifier *notify.Notifier
	Sounds   *notify.Player
	Status   *status.Publisher
	DataDir  string
	lockFile *flock.Flock
}

// New creates a new application instance. Only the interactive timer
// goes through here; one-shot commands open the store directly and
// skip the lock, so tasks can be added while a timer runs.
func New(cfg *config.Config) (*App, error) {
	dataDir := db.DefaultDataDir()

	// Ensure data directory exists
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	app := &App{
		Config:   cfg,
		Notifier: notify.NewNotifier(),
		Sounds:   notify.NewPlayer(cfg.Sounds),
		Status:   status.NewPublisher(),
		DataDir:  dataDir,
	}

	// Two timers would fight over the status file and double-award XP
	if err := app.acquireLock(); err != nil {
		return nil, err
	}

	database, err := db.Open(db.DefaultDBPath())
	if err != nil {
		app.releaseLock()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	app.DB = database
	app.Progress = game.NewProgress(database, cfg.GameBalance)

	return app, nil
}

// acquireLock acquires an exclusive file lock to prevent multiple instances
func (a *App) acquireLock() error {
	lockPath := filepath.Join(a.DataDir, "hyprpomo.lock")
	a.lockFile = flock.New(lockPath)

	locked, err := a.lockFile.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}

	if !locked {
		return ErrLocked
	}

	return nil
}

// releaseLock releases the file lock
func (a *App) releaseLock() {
	if a.lockFile != nil {
		a.lockFile.Unlock()
	}
}

// Close cleans up application resources
func (a *App) Close() error {
	var errs []error

	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	a.releaseLock()

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
