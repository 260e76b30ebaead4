package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"expensetracker/internal/services"
)

type reportCmd struct {
	app *App
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "show the expense total of every account" }
func (*reportCmd) Usage() string {
	return `ledger report

  Prints one line per account that has expenses, with its total.
`
}
func (*reportCmd) SetFlags(*flag.FlagSet) {}

func (c *reportCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.app.run(func(l *services.Ledger) error {
		report, err := l.GenerateReport()
		if err != nil {
			return err
		}
		c.app.printMarkdown(c.app.reportMarkdown(report))
		return nil
	})
}

func (a *App) reportMarkdown(report []services.AccountTotal) string {
	var b strings.Builder
	b.WriteString("## Expense report\n\n")
	if len(report) == 0 {
		b.WriteString("No expenses recorded.\n")
		return b.String()
	}

	b.WriteString("| Account ID | Account | Total Expense |\n|---:|---|---:|\n")
	grand := decimal.Zero
	for _, line := range report {
		fmt.Fprintf(&b, "| %d | %s | %s |\n", line.AccountID, cell(line.AccountName), a.formatMoney(line.Total))
		grand = grand.Add(line.Total)
	}
	fmt.Fprintf(&b, "| | **All accounts** | **%s** |\n", a.formatMoney(grand))
	return b.String()
}

type transferCmd struct {
	app *App
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "move funds from one account's balance to another's" }
func (*transferCmd) Usage() string {
	return `ledger transfer <from> <to> <amount>

  Debits <from> and credits <to> in one transaction. If either account does
  not exist nothing changes.
`
}
func (*transferCmd) SetFlags(*flag.FlagSet) {}

func (c *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 3 {
		return c.app.usage(c, "transfer takes a source account, a destination account and an amount")
	}
	amount, err := decimal.NewFromString(f.Arg(2))
	if err != nil {
		return c.app.usage(c, "invalid amount %q", f.Arg(2))
	}
	return c.app.run(func(l *services.Ledger) error {
		if err := l.TransferFunds(f.Arg(0), f.Arg(1), amount); err != nil {
			return err
		}
		l.Audit.Log("TRANSFER", "account", 0, map[string]interface{}{
			"from": f.Arg(0), "to": f.Arg(1), "amount": amount.String(),
		})
		c.app.printf("Transferred %s from %s to %s\n", c.app.formatMoney(amount), f.Arg(0), f.Arg(1))
		return nil
	})
}
