package cli

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"expensetracker/internal/export"
	"expensetracker/internal/models"
	"expensetracker/internal/services"
)

type addExpenseCmd struct {
	app      *App
	date     string
	category string
}

func (*addExpenseCmd) Name() string     { return "add-expense" }
func (*addExpenseCmd) Synopsis() string { return "record an expense against an account" }
func (*addExpenseCmd) Usage() string {
	return `ledger add-expense [-d <date>] [-c <category>] <account> <description> <amount>

  Records an expense. The date defaults to today.
  Suggested categories: ` + strings.Join(models.SuggestedCategories, ", ") + `
`
}

func (c *addExpenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Expense date as YYYY-MM-DD (defaults to today).")
	f.StringVar(&c.category, "c", "", "Expense category.")
}

func (c *addExpenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 3 {
		return c.app.usage(c, "add-expense takes an account, a description and an amount")
	}
	date := c.date
	if date == "" {
		date = models.Today()
	}
	return c.app.run(func(l *services.Ledger) error {
		expense, err := l.AddExpense(f.Arg(0), date, f.Arg(1), f.Arg(2), c.category)
		if err != nil {
			return err
		}
		l.Audit.Log("ADD_EXPENSE", "expense", expense.ID, map[string]interface{}{
			"account_id":  expense.AccountID,
			"date":        expense.Date,
			"description": expense.Description,
			"amount":      expense.Amount.String(),
		})
		c.app.printf("Added expense %d: %s %s %s\n",
			expense.ID, expense.Date, expense.Description, c.app.formatMoney(expense.Amount))
		return nil
	})
}

type expensesCmd struct {
	app *App
}

func (*expensesCmd) Name() string     { return "expenses" }
func (*expensesCmd) Synopsis() string { return "list an account's expenses" }
func (*expensesCmd) Usage() string {
	return `ledger expenses <account>

  Lists the account's expenses in the order they were recorded.
`
}
func (*expensesCmd) SetFlags(*flag.FlagSet) {}

func (c *expensesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return c.app.usage(c, "expenses takes exactly one account name")
	}
	return c.app.run(func(l *services.Ledger) error {
		expenses, err := l.ListExpenses(f.Arg(0))
		if err != nil {
			return err
		}

		var b strings.Builder
		b.WriteString("| ID | Date | Description | Amount | Category |\n|---:|---|---|---:|---|\n")
		for _, e := range expenses {
			fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n",
				e.ID, e.Date, cell(e.Description), c.app.formatMoney(e.Amount), cell(e.Category))
		}
		c.app.printMarkdown(b.String())
		return nil
	})
}

type deleteExpenseCmd struct {
	app *App
	id  uint
}

func (*deleteExpenseCmd) Name() string     { return "delete-expense" }
func (*deleteExpenseCmd) Synopsis() string { return "delete expenses by date and description, or by id" }
func (*deleteExpenseCmd) Usage() string {
	return `ledger delete-expense <account> <date> <description>
ledger delete-expense -id <id> <account>

  Without -id, every expense of the account with exactly that date and
  description is deleted.
`
}

func (c *deleteExpenseCmd) SetFlags(f *flag.FlagSet) {
	f.UintVar(&c.id, "id", 0, "Delete only the expense with this ID.")
}

func (c *deleteExpenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id != 0 {
		if f.NArg() != 1 {
			return c.app.usage(c, "delete-expense -id takes exactly one account name")
		}
		return c.app.run(func(l *services.Ledger) error {
			if err := l.DeleteExpenseByID(f.Arg(0), c.id); err != nil {
				return err
			}
			l.Audit.Log("DELETE_EXPENSE", "expense", c.id, nil)
			c.app.printf("Deleted expense %d\n", c.id)
			return nil
		})
	}

	if f.NArg() != 3 {
		return c.app.usage(c, "delete-expense takes an account, a date and a description")
	}
	return c.app.run(func(l *services.Ledger) error {
		deleted, err := l.DeleteExpense(f.Arg(0), f.Arg(1), f.Arg(2))
		if err != nil {
			return err
		}
		l.Audit.Log("DELETE_EXPENSES", "expense", 0, map[string]interface{}{
			"account":     f.Arg(0),
			"date":        f.Arg(1),
			"description": f.Arg(2),
			"deleted":     deleted,
		})
		c.app.printf("Deleted %d expense(s)\n", deleted)
		return nil
	})
}

type totalCmd struct {
	app *App
}

func (*totalCmd) Name() string     { return "total" }
func (*totalCmd) Synopsis() string { return "sum an account's expenses" }
func (*totalCmd) Usage() string {
	return `ledger total <account>
`
}
func (*totalCmd) SetFlags(*flag.FlagSet) {}

func (c *totalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return c.app.usage(c, "total takes exactly one account name")
	}
	return c.app.run(func(l *services.Ledger) error {
		total, err := l.TotalForAccount(f.Arg(0))
		if err != nil {
			return err
		}
		c.app.printf("Total expenses for %s: %s\n", f.Arg(0), c.app.formatMoney(total))
		return nil
	})
}

type exportCmd struct {
	app    *App
	format string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export an account's expenses as CSV or XLSX" }
func (*exportCmd) Usage() string {
	return `ledger export [-f csv|xlsx] [-o <file>] <account>

  Writes the account's expenses with a Date,Description,Amount,Category
  header. CSV goes to standard output unless -o is given; XLSX needs -o.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "f", "csv", "Output format: csv or xlsx.")
	f.StringVar(&c.output, "o", "", "Output file (defaults to standard output for csv).")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return c.app.usage(c, "export takes exactly one account name")
	}
	if c.format != "csv" && c.format != "xlsx" {
		return c.app.usage(c, "unknown export format %q", c.format)
	}
	if c.format == "xlsx" && c.output == "" {
		return c.app.usage(c, "xlsx export needs -o <file>")
	}

	return c.app.run(func(l *services.Ledger) error {
		rows, err := l.ExportRows(f.Arg(0))
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		if c.format == "xlsx" {
			err = export.WriteXLSX(&buf, f.Arg(0), rows)
		} else {
			err = export.WriteCSV(&buf, rows)
		}
		if err != nil {
			return err
		}

		if c.output == "" {
			_, err := c.app.Out.Write(buf.Bytes())
			return err
		}
		if err := os.WriteFile(c.output, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", c.output, err)
		}
		c.app.printf("Exported %d expense(s) to %s\n", len(rows), c.output)
		return nil
	})
}
