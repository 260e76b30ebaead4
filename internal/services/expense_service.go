package services

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/logger"
	"expensetracker/internal/models"
	"expensetracker/internal/pagination"
)

// expenseService handles expense-related business logic.
type expenseService struct {
	db             *gorm.DB
	accountService AccountServicer
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB, accountService AccountServicer) ExpenseServicer {
	return &expenseService{
		db:             db,
		accountService: accountService,
	}
}

// AddExpense records an expense against the named account and returns it
// with its generated ID.
func (s *expenseService) AddExpense(accountName, date, description, amount, category string) (*models.Expense, error) {
	account, err := s.accountService.GetAccountByName(accountName)
	if err != nil {
		return nil, err
	}

	value, err := models.ParseAmount(amount)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidAmount, err)
	}

	if _, err := models.ParseDate(date); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidDate, err)
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return nil, apperrors.ErrDescriptionBlank
	}

	expense := &models.Expense{
		AccountID:   account.ID,
		Date:        strings.TrimSpace(date),
		Description: description,
		Amount:      value,
		Category:    strings.TrimSpace(category),
	}
	if err := s.db.Create(expense).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, apperrors.Wrap(apperrors.ErrConstraintViolation, err)
		}
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}

	logger.Get().Infow("expense added",
		"account", account.Name,
		"id", expense.ID,
		"date", expense.Date,
		"amount", expense.Amount.String(),
	)
	return expense, nil
}

// ListExpenses returns every expense of the account in insertion order.
func (s *expenseService) ListExpenses(accountName string) ([]models.Expense, error) {
	account, err := s.accountService.GetAccountByName(accountName)
	if err != nil {
		return nil, err
	}

	expenses := []models.Expense{}
	if err := s.db.Where("account_id = ?", account.ID).Order("id ASC").Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	return expenses, nil
}

// ListExpensesPage is the paginated form of ListExpenses.
func (s *expenseService) ListExpensesPage(accountName string, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	account, err := s.accountService.GetAccountByName(accountName)
	if err != nil {
		return nil, err
	}

	page.Defaults()

	base := s.db.Model(&models.Expense{}).Where("account_id = ?", account.ID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}

	var expenses []models.Expense
	if err := base.Scopes(pagination.Paginate(page)).Order("id ASC").Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}

	result := pagination.NewPageResponse(expenses, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// DeleteExpense deletes every expense of the account whose date and
// description both match exactly, and returns how many rows went away.
// Several expenses sharing a date and description are all removed.
func (s *expenseService) DeleteExpense(accountName, date, description string) (int64, error) {
	account, err := s.accountService.GetAccountByName(accountName)
	if err != nil {
		return 0, err
	}

	res := s.db.Where("account_id = ? AND date = ? AND description = ?", account.ID, date, description).
		Delete(&models.Expense{})
	if res.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrStorageUnavailable, res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, apperrors.ErrExpenseNotFound
	}

	if res.RowsAffected > 1 {
		logger.Get().Warnw("expense delete matched several rows",
			"account", account.Name, "date", date, "description", description, "rows", res.RowsAffected)
	}
	return res.RowsAffected, nil
}

// DeleteExpenseByID deletes exactly one expense of the account.
func (s *expenseService) DeleteExpenseByID(accountName string, expenseID uint) error {
	account, err := s.accountService.GetAccountByName(accountName)
	if err != nil {
		return err
	}

	res := s.db.Where("id = ? AND account_id = ?", expenseID, account.ID).Delete(&models.Expense{})
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrStorageUnavailable, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrExpenseNotFound
	}
	return nil
}

// TotalForAccount sums the account's expense amounts. An unknown account or
// one without expenses totals zero. The sum is taken over the decimals read
// back from the store so it matches ListExpenses exactly.
func (s *expenseService) TotalForAccount(accountName string) (decimal.Decimal, error) {
	var amounts []decimal.Decimal
	err := s.db.Model(&models.Expense{}).
		Joins("JOIN accounts ON accounts.id = expenses.account_id").
		Where("accounts.name = ?", strings.TrimSpace(accountName)).
		Order("expenses.id ASC").
		Pluck("expenses.amount", &amounts).Error
	if err != nil {
		return decimal.Zero, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	return decimal.Sum(decimal.Zero, amounts...), nil
}

// ExportRows returns the account's expenses flattened in models.ExportHeader
// column order, without the header.
func (s *expenseService) ExportRows(accountName string) ([][]string, error) {
	expenses, err := s.ListExpenses(accountName)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, e.Row())
	}
	return rows, nil
}
