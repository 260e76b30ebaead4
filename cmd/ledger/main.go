// Command ledger manages the expense ledger from the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path"
	"syscall"

	"github.com/google/subcommands"

	"expensetracker/internal/cli"
	"expensetracker/internal/config"
	"expensetracker/internal/database"
	"expensetracker/internal/logger"
)

func main() {
	env := os.Getenv("ENV")
	if env == "" {
		env = "cli"
	}
	logger.Init(env)

	dbPath := flag.String("db", "", "Path to the SQLite ledger file (overrides DB_PATH).")
	plain := flag.Bool("plain", false, "Print tables as plain markdown.")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	app := &cli.App{Out: os.Stdout, Err: os.Stderr}
	cli.Register(commander, app)

	flag.Parse()

	appConfig, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(int(subcommands.ExitFailure))
	}
	if *dbPath != "" {
		appConfig.DBDriver = database.DriverSQLite
		appConfig.DBPath = *dbPath
	}
	app.DB, err = database.FromAppConfig(appConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(int(subcommands.ExitFailure))
	}
	app.Currency = appConfig.Currency
	app.Plain = *plain

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	status := commander.Execute(ctx)
	stop()
	logger.Sync()
	os.Exit(int(status))
}
