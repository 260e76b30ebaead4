package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"expensetracker/internal/config"
	"expensetracker/internal/database"
	"expensetracker/internal/logger"
	"expensetracker/internal/server"
)

// @title           Expense Tracker API
// @version         1.0
// @description     Record expenses against named accounts, report per-account totals, export them, and transfer funds between account balances.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbConfig, err := database.FromAppConfig(appConfig)
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Open the ledger store and bring its schema up to date
	dbManager, err := database.Open(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Errorw("failed to close database", "error", err)
		}
	}()

	router := server.NewRouter(dbManager.DB())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Infof("Starting expense tracker API on port %s (driver %s)", appConfig.Port, appConfig.DBDriver)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	if err := server.Run(ctx, ":"+appConfig.Port, router, appConfig.ShutdownTimeout); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
