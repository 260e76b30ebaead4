package cli

import (
	"context"
	"flag"
	"strings"

	"github.com/google/subcommands"

	"expensetracker/internal/pagination"
	"expensetracker/internal/services"
)

type accountsCmd struct {
	app *App
}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list accounts with their balances" }
func (*accountsCmd) Usage() string {
	return `ledger accounts

  Lists every account in creation order together with its balance.
`
}
func (*accountsCmd) SetFlags(*flag.FlagSet) {}

func (c *accountsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.app.run(func(l *services.Ledger) error {
		var b strings.Builder
		b.WriteString("| Account | Balance |\n|---|---:|\n")

		page := pagination.PageRequest{Page: 1}
		for {
			result, err := l.ListAccounts(page)
			if err != nil {
				return err
			}
			for _, a := range result.Data {
				b.WriteString("| " + cell(a.Name) + " | " + c.app.formatMoney(a.Balance) + " |\n")
			}
			if result.Page >= result.TotalPages {
				break
			}
			page.Page++
		}

		c.app.printMarkdown(b.String())
		return nil
	})
}

type addAccountCmd struct {
	app *App
}

func (*addAccountCmd) Name() string     { return "add-account" }
func (*addAccountCmd) Synopsis() string { return "create a new account" }
func (*addAccountCmd) Usage() string {
	return `ledger add-account <name>

  Creates an account with a zero balance. Names are unique.
`
}
func (*addAccountCmd) SetFlags(*flag.FlagSet) {}

func (c *addAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return c.app.usage(c, "add-account takes exactly one account name")
	}
	return c.app.run(func(l *services.Ledger) error {
		account, err := l.CreateAccount(f.Arg(0))
		if err != nil {
			return err
		}
		l.Audit.Log("CREATE_ACCOUNT", "account", account.ID, map[string]interface{}{"name": account.Name})
		c.app.printf("Created account %q (id %d)\n", account.Name, account.ID)
		return nil
	})
}

type deleteAccountCmd struct {
	app *App
}

func (*deleteAccountCmd) Name() string     { return "delete-account" }
func (*deleteAccountCmd) Synopsis() string { return "delete an account and all of its expenses" }
func (*deleteAccountCmd) Usage() string {
	return `ledger delete-account <name>

  Deletes the account. Every expense recorded against it is deleted too.
`
}
func (*deleteAccountCmd) SetFlags(*flag.FlagSet) {}

func (c *deleteAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return c.app.usage(c, "delete-account takes exactly one account name")
	}
	return c.app.run(func(l *services.Ledger) error {
		account, err := l.GetAccountByName(f.Arg(0))
		if err != nil {
			return err
		}
		if err := l.DeleteAccount(account.Name); err != nil {
			return err
		}
		l.Audit.Log("DELETE_ACCOUNT", "account", account.ID, map[string]interface{}{"name": account.Name})
		c.app.printf("Deleted account %q\n", account.Name)
		return nil
	})
}

type balanceCmd struct {
	app *App
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "show an account's balance" }
func (*balanceCmd) Usage() string {
	return `ledger balance <account>
`
}
func (*balanceCmd) SetFlags(*flag.FlagSet) {}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return c.app.usage(c, "balance takes exactly one account name")
	}
	return c.app.run(func(l *services.Ledger) error {
		account, err := l.GetAccountByName(f.Arg(0))
		if err != nil {
			return err
		}
		c.app.printf("%s: %s\n", account.Name, c.app.formatMoney(account.Balance))
		return nil
	})
}
