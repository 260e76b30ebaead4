// Package cli implements the ledger command-line tool, one subcommand per
// ledger operation.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"expensetracker/internal/database"
	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/logger"
	"expensetracker/internal/services"
)

// App carries what every subcommand needs. A command is short lived: it opens
// the store, runs one operation and closes the store again.
type App struct {
	DB       *database.Config
	Currency string
	Out      io.Writer
	Err      io.Writer

	// Plain prints markdown as is instead of rendering it for the terminal.
	Plain bool
}

// Register adds the ledger subcommands to c.
func Register(c *subcommands.Commander, app *App) {
	c.Register(&accountsCmd{app: app}, "accounts")
	c.Register(&addAccountCmd{app: app}, "accounts")
	c.Register(&deleteAccountCmd{app: app}, "accounts")
	c.Register(&balanceCmd{app: app}, "accounts")

	c.Register(&addExpenseCmd{app: app}, "expenses")
	c.Register(&expensesCmd{app: app}, "expenses")
	c.Register(&deleteExpenseCmd{app: app}, "expenses")
	c.Register(&totalCmd{app: app}, "expenses")
	c.Register(&exportCmd{app: app}, "expenses")

	c.Register(&reportCmd{app: app}, "reports")
	c.Register(&transferCmd{app: app}, "transfers")
	c.Register(&demoCmd{app: app}, "")
}

// run opens the ledger, hands it to fn and always closes it afterwards.
func (a *App) run(fn func(l *services.Ledger) error) subcommands.ExitStatus {
	m, err := database.Open(a.DB)
	if err != nil {
		return a.fail(err)
	}
	defer func() {
		if err := m.Close(); err != nil {
			logger.Get().Warnw("failed to close database", "error", err)
		}
	}()

	if err := fn(services.NewLedger(m.DB())); err != nil {
		return a.fail(err)
	}
	return subcommands.ExitSuccess
}

func (a *App) fail(err error) subcommands.ExitStatus {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Internal != nil {
		logger.Get().Debugw("command failed", "code", appErr.Code, "internal", appErr.Internal.Error())
	}
	fmt.Fprintf(a.Err, "Error: %s\n", err)
	return subcommands.ExitFailure
}

func (a *App) usage(f interface{ Usage() string }, format string, args ...interface{}) subcommands.ExitStatus {
	fmt.Fprintf(a.Err, format+"\n", args...)
	fmt.Fprint(a.Err, f.Usage())
	return subcommands.ExitUsageError
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.Out, format, args...)
}

// printMarkdown renders md for the terminal unless Plain is set.
func (a *App) printMarkdown(md string) {
	if !a.Plain {
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
		if err == nil {
			if out, err := r.Render(md); err == nil {
				fmt.Fprint(a.Out, out)
				return
			}
		}
	}
	fmt.Fprint(a.Out, md)
}

// formatMoney displays amount in the configured currency, falling back to a
// plain two-decimal number for unknown currency codes.
func (a *App) formatMoney(amount decimal.Decimal) string {
	cur := money.GetCurrency(a.Currency)
	if cur == nil {
		return amount.StringFixed(2)
	}
	factor := decimal.New(1, int32(cur.Fraction))
	return money.New(amount.Mul(factor).Round(0).IntPart(), cur.Code).Display()
}

// cell escapes text for use inside a markdown table.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
