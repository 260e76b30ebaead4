package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	_ "modernc.org/sqlite"

	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/logger"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

// Migrate applies pending SQL migrations embedded in the binary. Running it
// against an up-to-date schema is a no-op.
func Migrate(config *Config) error {
	logger.Get().Info("Running database migrations...")

	mig, err := newMigrate(config)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	defer closeMigrate(mig)

	if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return apperrors.Wrap(apperrors.ErrStorageUnavailable, fmt.Errorf("migration failed: %w", err))
	}

	logger.Get().Info("Database migrations completed successfully")
	return nil
}

// Rollback reverts the given number of applied migrations.
func Rollback(config *Config, steps int) error {
	mig, err := newMigrate(config)
	if err != nil {
		return err
	}
	defer closeMigrate(mig)

	if err := mig.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration down failed: %w", err)
	}
	return nil
}

// Version reports the current schema version and whether it is dirty.
func Version(config *Config) (uint, bool, error) {
	mig, err := newMigrate(config)
	if err != nil {
		return 0, false, err
	}
	defer closeMigrate(mig)

	return mig.Version()
}

// newMigrate builds a migrate instance over the embedded migrations for the
// configured backend. SQLite migrations run on their own connection, which
// closeMigrate releases.
func newMigrate(config *Config) (*migrate.Migrate, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	src, err := iofs.New(migrationsFS, "migrations/"+config.Driver)
	if err != nil {
		return nil, fmt.Errorf("create iofs source: %w", err)
	}

	switch config.Driver {
	case DriverSQLite:
		if err := ensureDir(config.Path); err != nil {
			return nil, err
		}
		migrateDB, err := sql.Open("sqlite", config.SQLiteURI())
		if err != nil {
			return nil, fmt.Errorf("open migration database: %w", err)
		}
		driver, err := migratesqlite.WithInstance(migrateDB, &migratesqlite.Config{})
		if err != nil {
			migrateDB.Close()
			return nil, fmt.Errorf("create sqlite driver: %w", err)
		}
		mig, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
		if err != nil {
			migrateDB.Close()
			return nil, fmt.Errorf("create migrate instance: %w", err)
		}
		return mig, nil
	default:
		mig, err := migrate.NewWithSourceInstance("iofs", src, config.PostgresURL())
		if err != nil {
			return nil, fmt.Errorf("create migrate instance: %w", err)
		}
		return mig, nil
	}
}

func closeMigrate(mig *migrate.Migrate) {
	srcErr, dbErr := mig.Close()
	if srcErr != nil {
		logger.Get().Warnf("migrate source close error: %v", srcErr)
	}
	if dbErr != nil {
		logger.Get().Warnf("migrate database close error: %v", dbErr)
	}
}
