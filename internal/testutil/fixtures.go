package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"expensetracker/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestAccount creates an account with a unique name and zero balance.
func CreateTestAccount(t *testing.T, db *gorm.DB) *models.Account {
	t.Helper()
	return CreateTestAccountWithBalance(t, db, "0")
}

// CreateTestAccountWithBalance creates an account holding the given balance.
func CreateTestAccountWithBalance(t *testing.T, db *gorm.DB, balance string) *models.Account {
	t.Helper()

	account := &models.Account{
		Name:    fmt.Sprintf("Test Account %d", nextID()),
		Balance: decimal.RequireFromString(balance),
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

// CreateTestExpense inserts an expense for accountID directly, bypassing validation.
func CreateTestExpense(t *testing.T, db *gorm.DB, accountID uint, date, description, amount string) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		AccountID:   accountID,
		Date:        date,
		Description: description,
		Amount:      decimal.RequireFromString(amount),
		Category:    models.CategoryFood,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// AccountBalance reloads the balance of the account with the given ID.
func AccountBalance(t *testing.T, db *gorm.DB, accountID uint) decimal.Decimal {
	t.Helper()

	var account models.Account
	if err := db.First(&account, accountID).Error; err != nil {
		t.Fatalf("failed to reload account %d: %v", accountID, err)
	}
	return account.Balance
}
