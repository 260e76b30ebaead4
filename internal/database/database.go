package database

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/logger"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Manager owns the single open handle to the ledger store.
type Manager struct {
	db     *gorm.DB
	config *Config
}

// Open brings the store's schema up to date and then connects to it. It is
// the startup path for every binary; any failure is reported as
// StorageUnavailable. Migrations finish and release their own connection
// before the main handle is opened.
func Open(config *Config) (*Manager, error) {
	if err := Migrate(config); err != nil {
		return nil, err
	}
	return NewManager(config)
}

// NewManager creates a new database manager
func NewManager(config *Config) (*Manager, error) {
	if err := config.Validate(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}

	var dialector gorm.Dialector
	switch config.Driver {
	case DriverSQLite:
		if err := ensureDir(config.Path); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
		}
		dialector = sqlite.Open(config.SQLiteDSN())
	case DriverPostgres:
		dialector = postgres.New(postgres.Config{
			DSN:                  config.DSN(),
			PreferSimpleProtocol: true,
		})
	}

	gormLogger := gormlogger.Default.LogMode(gormlogger.Silent)
	if config.LogSQL {
		gormLogger = gormlogger.Default.LogMode(gormlogger.Info)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, fmt.Errorf("failed to connect to database: %w", err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, fmt.Errorf("failed to get underlying DB: %w", err))
	}

	switch config.Driver {
	case DriverSQLite:
		// One connection: the store is single-writer and every operation,
		// transfers included, serializes on this handle.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	case DriverPostgres:
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	logger.Get().Infow("database connected", "driver", config.Driver, "path", config.Path)
	return &Manager{db: db, config: config}, nil
}

// ensureDir creates the directory holding a SQLite file.
func ensureDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}
	return nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close releases the store handle.
func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
