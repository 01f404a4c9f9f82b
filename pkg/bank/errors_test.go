package bank

import (
	"errors"
	"fmt"
	"testing"
)

func TestOperationErrorFormatsSegments(test *testing.T) {
	test.Parallel()
	err := WrapError("store", "account", "get", errStoreFailure)
	var operationError OperationError
	if !errors.As(err, &operationError) {
		test.Fatalf("expected OperationError, got %T", err)
	}
	if operationError.Operation() != "store" || operationError.Subject() != "account" || operationError.Code() != "get" {
		test.Fatalf("unexpected segments: %+v", operationError)
	}
	if err.Error() != "store.account.get: store error" {
		test.Fatalf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, errStoreFailure) {
		test.Fatalf("expected wrapped store error")
	}
}

func TestWrapErrorNil(test *testing.T) {
	test.Parallel()
	if WrapError("store", "account", "get", nil) != nil {
		test.Fatalf("expected nil")
	}
}

func TestErrorKinds(test *testing.T) {
	test.Parallel()
	clientErrors := []error{ErrInvalidTarget, ErrInvalidPage, ErrInvalidSort, ErrInvalidFilter, ErrMissingField, ErrInvalidEnum, ErrInvalidIdentifier}
	for _, err := range clientErrors {
		wrapped := WrapError("service", "request", "validate", fmt.Errorf("%w: detail", err))
		if !IsClientError(wrapped) {
			test.Fatalf("expected %v to be a client error", err)
		}
		if IsNotFound(wrapped) {
			test.Fatalf("expected %v not to be not-found", err)
		}
	}
	notFound := WrapError("store", "account", "get", fmt.Errorf("%w: account 7", ErrNotFound))
	if !IsNotFound(notFound) || IsClientError(notFound) {
		test.Fatalf("expected not-found kind, got %v", notFound)
	}
	if IsClientError(ErrConstraintViolation) {
		test.Fatalf("constraint violations are storage errors")
	}
}
