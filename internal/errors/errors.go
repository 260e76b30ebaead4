// Package errors provides custom error types for the expense ledger.
// Every ledger operation either succeeds or returns an *AppError whose Code
// names one of the error kinds below, so callers can branch on the kind and
// show Message to the end user without leaking storage details.
package errors

import (
	stderrors "errors"
	"net/http"
)

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is reports whether target is an *AppError of the same kind.
// errors.Is(err, ErrNotFound) therefore matches ErrAccountNotFound too.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !stderrors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Error codes.
const (
	CodeInvalidInput        = "INVALID_INPUT"
	CodeNotFound            = "NOT_FOUND"
	CodeConstraintViolation = "CONSTRAINT_VIOLATION"
	CodeTransactionFailed   = "TRANSACTION_FAILED"
	CodeStorageUnavailable  = "STORAGE_UNAVAILABLE"
	CodeInternal            = "INTERNAL_ERROR"
)

// Error kinds.
var (
	ErrInvalidInput        = &AppError{Code: CodeInvalidInput, Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound            = &AppError{Code: CodeNotFound, Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrConstraintViolation = &AppError{Code: CodeConstraintViolation, Message: "Constraint violated", StatusCode: http.StatusConflict}
	ErrTransactionFailed   = &AppError{Code: CodeTransactionFailed, Message: "Transaction failed and was rolled back", StatusCode: http.StatusConflict}
	ErrStorageUnavailable  = &AppError{Code: CodeStorageUnavailable, Message: "Storage is unavailable", StatusCode: http.StatusServiceUnavailable}
	ErrInternalServer      = &AppError{Code: CodeInternal, Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Account errors.
var (
	ErrAccountNotFound  = &AppError{Code: CodeNotFound, Message: "Account not found", StatusCode: http.StatusNotFound}
	ErrDuplicateAccount = &AppError{Code: CodeConstraintViolation, Message: "An account with this name already exists", StatusCode: http.StatusConflict}
	ErrAccountNameBlank = &AppError{Code: CodeInvalidInput, Message: "Account name is required", StatusCode: http.StatusBadRequest}
)

// Expense errors.
var (
	ErrExpenseNotFound  = &AppError{Code: CodeNotFound, Message: "Expense not found", StatusCode: http.StatusNotFound}
	ErrInvalidAmount    = &AppError{Code: CodeInvalidInput, Message: "Amount must be a decimal number", StatusCode: http.StatusBadRequest}
	ErrInvalidDate      = &AppError{Code: CodeInvalidInput, Message: "Date must be a valid YYYY-MM-DD calendar date", StatusCode: http.StatusBadRequest}
	ErrDescriptionBlank = &AppError{Code: CodeInvalidInput, Message: "Description is required", StatusCode: http.StatusBadRequest}
)
