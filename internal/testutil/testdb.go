package testutil

import (
	"path/filepath"
	"testing"

	"github.com/SamuelSmthSmth/HyprPomo/internal/db"
)

// NewTestDB creates a migrated store under a per-test temporary
// directory. The store is closed when the test completes.
func NewTestDB(t *testing.T) *db.DB {
	t.Helper()
	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}
