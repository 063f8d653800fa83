package db

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestOpenCreatesAndReopens verifies that a fresh store comes up with the
// seeded profile row and that reopening an existing store (migrations
// already applied) preserves its contents.
func TestOpenCreatesAndReopens(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}

	profile, err := db.GetProfile()
	if err != nil {
		t.Fatalf("Failed to read seeded profile: %v", err)
	}
	if profile.TotalXP != 0 || profile.SessionsCompleted != 0 || profile.SessionsToday != 0 {
		t.Errorf("Fresh profile not zeroed: %+v", profile)
	}
	if profile.BountyDate != "" {
		t.Errorf("Fresh profile has bounty date %q, want empty", profile.BountyDate)
	}

	task, err := db.AddTask("write the report")
	if err != nil {
		t.Fatalf("Failed to add task: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Failed to close database: %v", err)
	}

	db, err = Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen database: %v", err)
	}
	defer db.Close()

	got, err := db.GetTask(task.ID)
	if err != nil {
		t.Fatalf("Failed to read task after reopen: %v", err)
	}
	if got.Name != "write the report" || got.Done {
		t.Errorf("Task changed across reopen: %+v", got)
	}
}

// TestOpenRecoversCorruptStore verifies the backup-and-reinitialize path:
// an unreadable database file must not block startup. The broken file is
// moved aside and a fresh store is created in its place.
func TestOpenRecoversCorruptStore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	if err := os.WriteFile(dbPath, []byte("this is not a sqlite database"), 0644); err != nil {
		t.Fatalf("Failed to write corrupt file: %v", err)
	}

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open did not recover from corrupt store: %v", err)
	}
	defer db.Close()

	if _, err := db.GetProfile(); err != nil {
		t.Fatalf("Recovered store is not usable: %v", err)
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("Failed to list data dir: %v", err)
	}
	foundBackup := false
	for _, e := range entries {
		if strings.Contains(e.Name(), ".corrupt-") {
			foundBackup = true
		}
	}
	if !foundBackup {
		t.Error("Corrupt file was not backed up alongside the fresh store")
	}
}

// TestOpenMissingDirIsCreated verifies the data directory is created on
// first run.
func TestOpenMissingDirIsCreated(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "data", "test.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database in missing directory: %v", err)
	}
	db.Close()

	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("Database file was not created: %v", err)
	}
}
