package services

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "expensetracker/internal/errors"
)

// reportService computes aggregates across all accounts.
type reportService struct {
	db *gorm.DB
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB) ReportServicer {
	return &reportService{db: db}
}

// GenerateReport returns the expense total of every account that has at least
// one expense, ordered by account ID. Accounts without expenses contribute no
// rows and are therefore absent. Amounts are summed as decimals.
func (s *reportService) GenerateReport() ([]AccountTotal, error) {
	rows, err := s.db.Table("expenses").
		Select("expenses.account_id, accounts.name, expenses.amount").
		Joins("JOIN accounts ON accounts.id = expenses.account_id").
		Order("expenses.account_id ASC, expenses.id ASC").
		Rows()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	report := []AccountTotal{}
	for rows.Next() {
		var (
			accountID uint
			name      string
			amount    decimal.Decimal
		)
		if err := rows.Scan(&accountID, &name, &amount); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
		}
		if n := len(report); n > 0 && report[n-1].AccountID == accountID {
			report[n-1].Total = report[n-1].Total.Add(amount)
			continue
		}
		report = append(report, AccountTotal{AccountID: accountID, AccountName: name, Total: amount})
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	return report, nil
}
