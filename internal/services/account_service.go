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

// accountService handles account-related business logic.
type accountService struct {
	db *gorm.DB
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(db *gorm.DB) AccountServicer {
	return &accountService{db: db}
}

// CreateAccount creates a new account with a zero balance.
func (s *accountService) CreateAccount(name string) (*models.Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.ErrAccountNameBlank
	}

	var existing int64
	if err := s.db.Model(&models.Account{}).Where("name = ?", name).Count(&existing).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	if existing > 0 {
		return nil, apperrors.ErrDuplicateAccount
	}

	account := &models.Account{
		Name:    name,
		Balance: decimal.Zero,
	}
	if err := s.db.Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Wrap(apperrors.ErrDuplicateAccount, err)
		}
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}

	logger.Get().Infow("account created", "account", account.Name, "id", account.ID)
	return account, nil
}

// DeleteAccount removes an account together with all of its expenses. Both
// deletes run in one transaction so no expense is ever left orphaned.
func (s *accountService) DeleteAccount(name string) error {
	var removed int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		account, err := findAccountByName(tx, name)
		if err != nil {
			return err
		}

		res := tx.Where("account_id = ?", account.ID).Delete(&models.Expense{})
		if res.Error != nil {
			return apperrors.Wrap(apperrors.ErrStorageUnavailable, res.Error)
		}
		removed = res.RowsAffected

		if err := tx.Delete(account).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
		}
		return nil
	})
	if err != nil {
		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) {
			err = apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
		}
		return err
	}

	logger.Get().Infow("account deleted", "account", strings.TrimSpace(name), "expenses_removed", removed)
	return nil
}

// GetAccountByName retrieves an account, including its balance.
func (s *accountService) GetAccountByName(name string) (*models.Account, error) {
	return findAccountByName(s.db, name)
}

// ListAccounts retrieves a paginated list of accounts in creation order.
func (s *accountService) ListAccounts(page pagination.PageRequest) (*pagination.PageResponse[models.Account], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.Account{})
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}

	var accounts []models.Account
	if err := base.Scopes(pagination.Paginate(page)).Order("id ASC").Find(&accounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}

	result := pagination.NewPageResponse(accounts, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// ListAccountNames returns every account name in creation order, for selectors.
func (s *accountService) ListAccountNames() ([]string, error) {
	names := []string{}
	if err := s.db.Model(&models.Account{}).Order("id ASC").Pluck("name", &names).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	return names, nil
}

// findAccountByName resolves an account by its (trimmed) name using db, which
// may be a transaction.
func findAccountByName(db *gorm.DB, name string) (*models.Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.ErrAccountNameBlank
	}

	var account models.Account
	if err := db.Where("name = ?", name).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	return &account, nil
}
