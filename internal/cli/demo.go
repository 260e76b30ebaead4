package cli

import (
	"context"
	"errors"
	"flag"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/logger"
	"expensetracker/internal/models"
	"expensetracker/internal/services"
)

const (
	demoSource      = "Checking"
	demoDestination = "Savings"
	demoDate        = "2024-12-14"
)

type demoCmd struct {
	app *App
}

func (*demoCmd) Name() string     { return "demo" }
func (*demoCmd) Synopsis() string { return "run a short scripted session against the ledger" }
func (*demoCmd) Usage() string {
	return `ledger demo

  Ensures the Checking and Savings accounts exist, records two expenses on
  Checking, lists them, prints the report and transfers 100.00 from Checking
  to Savings. A failed transfer is reported but does not fail the demo.
`
}
func (*demoCmd) SetFlags(*flag.FlagSet) {}

func (c *demoCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log := logger.Get()
	return c.app.run(func(l *services.Ledger) error {
		log.Info("Starting expense tracker demo")

		for _, name := range []string{demoSource, demoDestination} {
			if _, err := l.CreateAccount(name); err != nil && !errors.Is(err, apperrors.ErrDuplicateAccount) {
				return err
			}
		}

		for _, e := range []struct{ description, amount string }{
			{"Lunch at Restaurant", "20.50"},
			{"Groceries", "45.75"},
		} {
			if _, err := l.AddExpense(demoSource, demoDate, e.description, e.amount, models.CategoryFood); err != nil {
				return err
			}
		}

		expenses, err := l.ListExpenses(demoSource)
		if err != nil {
			return err
		}
		for _, e := range expenses {
			c.app.printf("Expense ID: %d, Date: %s, Description: %s, Amount: %s\n",
				e.ID, e.Date, e.Description, c.app.formatMoney(e.Amount))
		}

		report, err := l.GenerateReport()
		if err != nil {
			return err
		}
		c.app.printMarkdown(c.app.reportMarkdown(report))

		if err := l.TransferFunds(demoSource, demoDestination, decimal.NewFromInt(100)); err != nil {
			log.Errorw("Transaction failed", "error", err)
			return nil
		}
		for _, name := range []string{demoSource, demoDestination} {
			account, err := l.GetAccountByName(name)
			if err != nil {
				return err
			}
			c.app.printf("%s balance: %s\n", account.Name, c.app.formatMoney(account.Balance))
		}
		return nil
	})
}
