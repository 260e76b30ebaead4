package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the ISO calendar date format expenses are recorded in.
const DateLayout = "2006-01-02"

// Expense is a single spending entry owned by an account.
type Expense struct {
	Base
	AccountID   uint            `gorm:"not null;index" json:"account_id"`
	Date        string          `gorm:"not null" json:"date"`
	Description string          `gorm:"not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:numeric;not null" json:"amount"`
	Category    string          `gorm:"not null;default:''" json:"category"`
}

// ExportHeader is the column order used by every tabular view of expenses.
var ExportHeader = []string{"Date", "Description", "Amount", "Category"}

// Row flattens the expense into ExportHeader order. The amount is written at
// its full stored precision.
func (e Expense) Row() []string {
	return []string{e.Date, e.Description, e.Amount.String(), e.Category}
}

// ParseAmount parses a finite decimal amount. Sign is not constrained.
func ParseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}

// ParseDate checks that s is a real calendar date in DateLayout.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// Today returns the current local date in DateLayout.
func Today() string {
	return time.Now().Format(DateLayout)
}
