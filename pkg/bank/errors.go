package bank

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the root of every client input error.
var ErrInvalidInput = errors.New("invalid input")

// Client input errors. Each wraps ErrInvalidInput.
var (
	ErrInvalidTarget     = fmt.Errorf("%w: invalid database target", ErrInvalidInput)
	ErrInvalidPage       = fmt.Errorf("%w: invalid page window", ErrInvalidInput)
	ErrInvalidSort       = fmt.Errorf("%w: invalid sort", ErrInvalidInput)
	ErrInvalidFilter     = fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	ErrMissingField      = fmt.Errorf("%w: missing required field", ErrInvalidInput)
	ErrInvalidEnum       = fmt.Errorf("%w: invalid enumerated value", ErrInvalidInput)
	ErrInvalidIdentifier = fmt.Errorf("%w: invalid identifier", ErrInvalidInput)
	ErrInvalidAmount     = fmt.Errorf("%w: invalid monetary amount", ErrInvalidInput)
)

// Domain-level error values returned by the bank service and stores.
var (
	ErrNotFound             = errors.New("not found")
	ErrConstraintViolation  = errors.New("constraint violation")
	ErrInvalidServiceConfig = errors.New("invalid service config")
)

// OperationError wraps a failure with a stable operation code.
type OperationError struct {
	operation string
	subject   string
	code      string
	err       error
}

// Error returns the formatted error message.
func (operationError OperationError) Error() string {
	return fmt.Sprintf("%s.%s.%s: %v", operationError.operation, operationError.subject, operationError.code, operationError.err)
}

// Unwrap returns the underlying error.
func (operationError OperationError) Unwrap() error {
	return operationError.err
}

// Operation returns the operation segment.
func (operationError OperationError) Operation() string {
	return operationError.operation
}

// Subject returns the subject segment.
func (operationError OperationError) Subject() string {
	return operationError.subject
}

// Code returns the stable error code segment.
func (operationError OperationError) Code() string {
	return operationError.code
}

// WrapError wraps an error with operation, subject, and code metadata.
func WrapError(operation string, subject string, code string, err error) error {
	if err == nil {
		return nil
	}
	return OperationError{
		operation: operation,
		subject:   subject,
		code:      code,
		err:       err,
	}
}

// IsClientError reports whether err was caused by caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsNotFound reports whether err signals a missing entity.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
