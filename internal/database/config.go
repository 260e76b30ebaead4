package database

import (
	"fmt"
	"net/url"
	"strings"

	"expensetracker/internal/config"
)

// Supported storage backends.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds database configuration
type Config struct {
	Driver string

	// SQLite
	Path string

	// PostgreSQL
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string

	LogSQL bool
}

// NewConfig creates a new database configuration from the application configuration.
func NewConfig() (*Config, error) {
	return FromAppConfig(config.Get())
}

// FromAppConfig maps the application configuration onto a database configuration.
func FromAppConfig(cfg *config.Config) (*Config, error) {
	c := &Config{
		Driver:   cfg.DBDriver,
		Path:     cfg.DBPath,
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
		LogSQL:   cfg.DBLogSQL,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// SQLiteConfig returns a configuration for a single-file SQLite store at path.
func SQLiteConfig(path string) *Config {
	return &Config{Driver: DriverSQLite, Path: path}
}

// Validate checks that the configured backend is usable.
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverSQLite:
		if c.Path == "" {
			return fmt.Errorf("sqlite database path is required")
		}
	case DriverPostgres:
		if c.Host == "" || c.DBName == "" {
			return fmt.Errorf("postgres host and database name are required")
		}
	default:
		return fmt.Errorf("unsupported database driver %q", c.Driver)
	}
	return nil
}

// SQLiteURI returns the store path as a file: URI. '?' and '#' in the path
// are escaped so they stay part of the file name.
func (c *Config) SQLiteURI() string {
	u := url.URL{Scheme: "file", Opaque: escapeSQLitePath(c.Path)}
	return u.String()
}

// SQLiteDSN returns the connection string for the gorm SQLite dialector.
// Foreign keys are enabled per connection so ON DELETE CASCADE is honoured.
func (c *Config) SQLiteDSN() string {
	q := url.Values{}
	q.Set("_foreign_keys", "on")
	q.Set("_busy_timeout", "5000")
	q.Set("_journal_mode", "WAL")
	return c.SQLiteURI() + "?" + q.Encode()
}

// escapeSQLitePath percent-encodes the characters that would end the path
// part of a file: URI.
func escapeSQLitePath(path string) string {
	return strings.NewReplacer("%", "%25", "?", "%3F", "#", "%23").Replace(path)
}

// DSN returns the PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// PostgresURL returns the PostgreSQL URL form used by golang-migrate.
func (c *Config) PostgresURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}
	return u.String()
}
