// Package testutil provides test helpers for setting up throwaway ledger
// databases, creating fixtures, and making assertions.
package testutil

import (
	"path/filepath"
	"testing"

	"expensetracker/internal/database"
	"expensetracker/internal/logger"

	"gorm.io/gorm"
)

func init() {
	logger.Init("test")
}

// SetupTestDB creates a fresh SQLite file under the test's temp directory and
// applies the real migrations to it.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return SetupTestManager(t).DB()
}

// SetupTestManager is SetupTestDB for tests that need the manager itself.
func SetupTestManager(t *testing.T) *database.Manager {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ledger.db")
	m, err := database.Open(database.SQLiteConfig(path))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	return m
}

// TeardownTestDB closes the underlying database connection.
func TeardownTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	sqlDB, err := db.DB()
	if err != nil {
		t.Errorf("failed to get underlying DB for teardown: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		t.Errorf("failed to close test database: %v", err)
	}
}
