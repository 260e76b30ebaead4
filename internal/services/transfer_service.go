package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/logger"
	"expensetracker/internal/models"
)

var errTransferLegMissed = errors.New("transfer leg matched no account")

// transferService moves funds between account balances.
type transferService struct {
	db *gorm.DB

	// afterDebit runs inside the transaction between the two legs.
	afterDebit func(tx *gorm.DB) error
}

// NewTransferService creates a new TransferServicer.
func NewTransferService(db *gorm.DB) TransferServicer {
	return &transferService{db: db}
}

// TransferFunds debits fromAccount and credits toAccount by amount as one
// transaction. Both legs are always attempted; if either matched no account
// the whole transaction is rolled back. Balances may go negative.
//
// Balances are read and rewritten as decimals within the transaction.
// Any failure is returned as TransactionFailed wrapping the cause, and no
// partial effect survives it. The transaction scope hands the connection back
// in autocommit mode on every path, including panics.
func (s *transferService) TransferFunds(fromAccount, toAccount string, amount decimal.Decimal) error {
	from := strings.TrimSpace(fromAccount)
	to := strings.TrimSpace(toAccount)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		debited, err := adjustBalance(tx, from, amount.Neg())
		if err != nil {
			return fmt.Errorf("debit %q: %w", from, err)
		}

		if s.afterDebit != nil {
			if err := s.afterDebit(tx); err != nil {
				return err
			}
		}

		credited, err := adjustBalance(tx, to, amount)
		if err != nil {
			return fmt.Errorf("credit %q: %w", to, err)
		}

		if debited == 0 || credited == 0 {
			return fmt.Errorf("%w: debit %q matched %d rows, credit %q matched %d rows",
				errTransferLegMissed, from, debited, to, credited)
		}
		return nil
	})
	if err != nil {
		logger.Get().Warnw("transfer rolled back",
			"from", from, "to", to, "amount", amount.String(), "error", err)
		return apperrors.Wrap(apperrors.ErrTransactionFailed, err)
	}

	logger.Get().Infow("funds transferred", "from", from, "to", to, "amount", amount.String())
	return nil
}

// adjustBalance adds delta to the named account's balance inside tx and
// returns the number of rows changed. The new balance is computed in decimal
// and written back whole.
func adjustBalance(tx *gorm.DB, name string, delta decimal.Decimal) (int64, error) {
	var account models.Account
	res := tx.Where("name = ?", name).Limit(1).Find(&account)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, nil
	}

	update := tx.Model(&account).Update("balance", account.Balance.Add(delta))
	return update.RowsAffected, update.Error
}
