package services

import (
	"github.com/shopspring/decimal"

	"expensetracker/internal/models"
	"expensetracker/internal/pagination"
)

// AccountServicer defines the contract for account-related business logic.
type AccountServicer interface {
	CreateAccount(name string) (*models.Account, error)
	DeleteAccount(name string) error
	GetAccountByName(name string) (*models.Account, error)
	ListAccounts(page pagination.PageRequest) (*pagination.PageResponse[models.Account], error)
	ListAccountNames() ([]string, error)
}

// ExpenseServicer defines the contract for expense-related business logic.
type ExpenseServicer interface {
	AddExpense(accountName, date, description, amount, category string) (*models.Expense, error)
	ListExpenses(accountName string) ([]models.Expense, error)
	ListExpensesPage(accountName string, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	DeleteExpense(accountName, date, description string) (int64, error)
	DeleteExpenseByID(accountName string, expenseID uint) error
	TotalForAccount(accountName string) (decimal.Decimal, error)
	ExportRows(accountName string) ([][]string, error)
}

// AccountTotal is one line of the expense report.
type AccountTotal struct {
	AccountID   uint            `json:"account_id"`
	AccountName string          `json:"account_name"`
	Total       decimal.Decimal `json:"total"`
}

// ReportServicer defines the contract for aggregate reporting.
type ReportServicer interface {
	GenerateReport() ([]AccountTotal, error)
}

// TransferServicer defines the contract for moving funds between accounts.
type TransferServicer interface {
	TransferFunds(fromAccount, toAccount string, amount decimal.Decimal) error
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(action, resourceType string, resourceID uint, changes map[string]interface{})
}
