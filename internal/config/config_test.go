package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"ENV", "PORT", "DB_DRIVER", "DB_PATH", "DB_LOG_SQL", "CURRENCY", "SHUTDOWN_TIMEOUT"} {
			t.Setenv(key, "")
		}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.DBDriver != "sqlite" {
			t.Errorf("expected sqlite driver, got %s", cfg.DBDriver)
		}
		if cfg.DBPath != "ExpensesDB.db" {
			t.Errorf("expected ExpensesDB.db, got %s", cfg.DBPath)
		}
		if cfg.Port != "8080" {
			t.Errorf("expected port 8080, got %s", cfg.Port)
		}
		if cfg.Currency != "USD" {
			t.Errorf("expected USD, got %s", cfg.Currency)
		}
		if cfg.DBLogSQL {
			t.Error("expected DBLogSQL to default to false")
		}
		if cfg.ShutdownTimeout != 10*time.Second {
			t.Errorf("expected 10s shutdown timeout, got %s", cfg.ShutdownTimeout)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "Postgres")
		t.Setenv("DB_PATH", "/tmp/ledger.db")
		t.Setenv("DB_LOG_SQL", "true")
		t.Setenv("CURRENCY", "eur")
		t.Setenv("SHUTDOWN_TIMEOUT", "3s")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.DBDriver != "postgres" {
			t.Errorf("expected postgres driver, got %s", cfg.DBDriver)
		}
		if cfg.DBPath != "/tmp/ledger.db" {
			t.Errorf("expected /tmp/ledger.db, got %s", cfg.DBPath)
		}
		if !cfg.DBLogSQL {
			t.Error("expected DBLogSQL to be true")
		}
		if cfg.Currency != "EUR" {
			t.Errorf("expected EUR, got %s", cfg.Currency)
		}
		if cfg.ShutdownTimeout != 3*time.Second {
			t.Errorf("expected 3s shutdown timeout, got %s", cfg.ShutdownTimeout)
		}
	})

	t.Run("invalid_timeout_falls_back", func(t *testing.T) {
		t.Setenv("SHUTDOWN_TIMEOUT", "soon")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.ShutdownTimeout != 10*time.Second {
			t.Errorf("expected fallback 10s, got %s", cfg.ShutdownTimeout)
		}
	})
}
