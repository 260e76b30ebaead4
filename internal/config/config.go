package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Env string

	// Server
	Port            string
	ShutdownTimeout time.Duration

	// Database
	DBDriver   string
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBLogSQL   bool

	// Display
	Currency string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Env: getEnv("ENV", "development"),

		// Server
		Port: getEnv("PORT", "8080"),

		// Database
		DBDriver:   strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DBPath:     getEnv("DB_PATH", "ExpensesDB.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "ledger"),
		DBPassword: getEnv("DB_PASSWORD", "ledger"),
		DBName:     getEnv("DB_NAME", "ledger"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		Currency: strings.ToUpper(getEnv("CURRENCY", "USD")),
	}

	logSQL, err := strconv.ParseBool(getEnv("DB_LOG_SQL", "false"))
	if err != nil {
		log.Printf("Warning: invalid DB_LOG_SQL value '%s', falling back to false\n", os.Getenv("DB_LOG_SQL"))
	}
	config.DBLogSQL = logSQL

	timeoutStr := getEnv("SHUTDOWN_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		log.Printf("Warning: invalid SHUTDOWN_TIMEOUT value '%s', falling back to 10s\n", timeoutStr)
		timeout = 10 * time.Second
	}
	config.ShutdownTimeout = timeout

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
