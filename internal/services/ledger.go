package services

import "gorm.io/gorm"

// Ledger bundles the account, expense, report and transfer services over one
// store handle so command-line and other synchronous callers get every ledger
// operation from a single value.
type Ledger struct {
	AccountServicer
	ExpenseServicer
	ReportServicer
	TransferServicer

	Audit AuditServicer
}

// NewLedger wires all ledger services to db.
func NewLedger(db *gorm.DB) *Ledger {
	accounts := NewAccountService(db)
	return &Ledger{
		AccountServicer:  accounts,
		ExpenseServicer:  NewExpenseService(db, accounts),
		ReportServicer:   NewReportService(db),
		TransferServicer: NewTransferService(db),
		Audit:            NewAuditService(db),
	}
}
