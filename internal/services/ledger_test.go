package services

import (
	"testing"

	"github.com/shopspring/decimal"

	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/pagination"
	"expensetracker/internal/testutil"
)

func TestLedgerRoundTrip(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	ledger := NewLedger(db)

	_, err := ledger.CreateAccount("Checking")
	testutil.AssertNoError(t, err)

	_, err = ledger.AddExpense("Checking", "2024-12-14", "Lunch", "20.50", "Food")
	testutil.AssertNoError(t, err)
	_, err = ledger.AddExpense("Checking", "2024-12-14", "Groceries", "45.75", "Food")
	testutil.AssertNoError(t, err)

	expenses, err := ledger.ListExpenses("Checking")
	testutil.AssertNoError(t, err)
	if len(expenses) != 2 {
		t.Fatalf("expected 2 expenses, got %d", len(expenses))
	}
	if expenses[0].Description != "Lunch" || expenses[1].Description != "Groceries" {
		t.Errorf("unexpected order: %q, %q", expenses[0].Description, expenses[1].Description)
	}

	total, err := ledger.TotalForAccount("Checking")
	testutil.AssertNoError(t, err)
	testutil.AssertDecimal(t, total, "66.25")

	testutil.AssertNoError(t, ledger.DeleteAccount("Checking"))

	report, err := ledger.GenerateReport()
	testutil.AssertNoError(t, err)
	if len(report) != 0 {
		t.Errorf("expected deleted account to vanish from report, got %+v", report)
	}
	_, err = ledger.ListExpenses("Checking")
	if err == nil {
		t.Error("expected listing a deleted account to fail")
	}
}

func TestLedgerStorageUnavailable(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ledger := NewLedger(db)
	_, err := ledger.CreateAccount("Checking")
	testutil.AssertNoError(t, err)

	// Lose the store mid-session.
	testutil.TeardownTestDB(t, db)

	tests := []struct {
		name string
		call func() error
	}{
		{"create_account", func() error { _, err := ledger.CreateAccount("Savings"); return err }},
		{"get_account", func() error { _, err := ledger.GetAccountByName("Checking"); return err }},
		{"list_accounts", func() error { _, err := ledger.ListAccounts(pagination.PageRequest{}); return err }},
		{"list_account_names", func() error { _, err := ledger.ListAccountNames(); return err }},
		{"delete_account", func() error { return ledger.DeleteAccount("Checking") }},
		{"total", func() error { _, err := ledger.TotalForAccount("Checking"); return err }},
		{"report", func() error { _, err := ledger.GenerateReport(); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertAppError(t, tt.call(), apperrors.CodeStorageUnavailable)
		})
	}

	t.Run("transfer", func(t *testing.T) {
		err := ledger.TransferFunds("Checking", "Checking", decimal.NewFromInt(1))
		testutil.AssertAppError(t, err, apperrors.CodeTransactionFailed)
	})
}
