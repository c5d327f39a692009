package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks or the
// requested operation is semantically invalid.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller references a resource it does not own.
var ErrForbidden = errors.New("forbidden")

// ErrInsufficientFunds indicates that a requested debit exceeds the current account balance.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrAlreadyClosed indicates that a daily closing already exists for the account and day.
var ErrAlreadyClosed = errors.New("account already closed for the day")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// AppError wraps an underlying failure with an HTTP-ish status code and a message.
// Repositories use it for storage-level failures so services can propagate a
// single error value without losing the cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError returns an error that matches ErrNotFound via errors.Is.
func NewNotFoundError(message string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, message)
}

// NewValidationError returns an error that matches ErrValidation via errors.Is.
func NewValidationError(message string) error {
	return fmt.Errorf("%w: %s", ErrValidation, message)
}

// NewForbiddenError returns an error that matches ErrForbidden via errors.Is.
func NewForbiddenError(message string) error {
	return fmt.Errorf("%w: %s", ErrForbidden, message)
}

// NewInsufficientFundsError returns an error that matches ErrInsufficientFunds
// via errors.Is, naming the short account.
func NewInsufficientFundsError(message string) error {
	return fmt.Errorf("%w: %s", ErrInsufficientFunds, message)
}
