/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestInvalidArgumentError(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "with field",
			field:    "tableName",
			message:  "must start with a letter",
			expected: `validation failed for "tableName": must start with a letter`,
		},
		{
			name:     "without field",
			field:    "",
			message:  "entity list is empty",
			expected: "validation failed: entity list is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewInvalidArgumentError(tt.field, tt.message)

			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}

			if !errors.Is(err, ErrInvalidArgument) {
				t.Error("InvalidArgumentError should match ErrInvalidArgument")
			}

			if !IsInvalidArgument(err) {
				t.Error("IsInvalidArgument should return true for InvalidArgumentError")
			}
		})
	}
}

func TestNotConnectedError(t *testing.T) {
	err := NewNotConnectedError("list tables")

	// Test error message
	expected := "cannot list tables: client is not connected"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	// Without an operation name
	bare := &NotConnectedError{}
	if bare.Error() != "client is not connected" {
		t.Errorf("Unexpected bare message: %q", bare.Error())
	}

	// Test Is method
	if !errors.Is(err, ErrNotConnected) {
		t.Error("NotConnectedError should match ErrNotConnected")
	}

	// Test helper function
	if !IsNotConnected(err) {
		t.Error("IsNotConnected should return true for NotConnectedError")
	}
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("table", "Customers")

	// Test error message
	expected := `table with key "Customers" not found`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	// Test Is method
	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}

	// Test helper function
	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
}

func TestAlreadyExistsError(t *testing.T) {
	err := NewAlreadyExistsError("table", "Customers")

	// Test error message
	expected := `table with key "Customers" already exists`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	// Test Is method
	if !errors.Is(err, ErrAlreadyExists) {
		t.Error("AlreadyExistsError should match ErrAlreadyExists")
	}

	// Test helper function
	if !IsAlreadyExists(err) {
		t.Error("IsAlreadyExists should return true for AlreadyExistsError")
	}
}

func TestBatchError(t *testing.T) {
	cause := NewServiceError("submit transaction", "Customers", 409, "EntityAlreadyExists", errors.New("boom"))
	err := NewBatchError("Customers", 2, "EU", 100, cause)

	expected := `batch 2 (partition key "EU", 100 entities) for table "Customers" failed: ` + cause.Error()
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrBatchFailed) {
		t.Error("BatchError should match ErrBatchFailed")
	}

	if !IsBatchError(err) {
		t.Error("IsBatchError should return true for BatchError")
	}

	// The wrapped cause stays visible through the batch error
	if !IsServiceError(err) {
		t.Error("BatchError wrapping a ServiceError should still match ErrService")
	}

	var be *BatchError
	if !errors.As(err, &be) {
		t.Fatal("errors.As should expose the BatchError")
	}
	if be.Index != 2 || be.PartitionKey != "EU" || be.Size != 100 {
		t.Errorf("Unexpected batch error fields: %+v", be)
	}
}

func TestServiceError(t *testing.T) {
	cause := errors.New("request rejected")
	err := NewServiceError("create table", "Customers", 403, "AuthorizationFailure", cause)

	expected := `create table failed for table "Customers": status 403 (AuthorizationFailure): request rejected`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrService) {
		t.Error("ServiceError should match ErrService")
	}

	if !IsServiceError(err) {
		t.Error("IsServiceError should return true for ServiceError")
	}

	if !errors.Is(err, cause) {
		t.Error("ServiceError should unwrap to its cause")
	}

	// Minimal variant keeps a readable message
	minimal := &ServiceError{Op: "list tables"}
	if minimal.Error() != "list tables failed" {
		t.Errorf("Unexpected minimal message: %q", minimal.Error())
	}
}

func TestTransportError(t *testing.T) {
	cause := errors.New("dial tcp: no such host")
	err := NewTransportError("list tables", cause)

	expected := "list tables: transport failure: dial tcp: no such host"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrTransport) {
		t.Error("TransportError should match ErrTransport")
	}

	if !IsTransportError(err) {
		t.Error("IsTransportError should return true for TransportError")
	}

	if !errors.Is(err, cause) {
		t.Error("TransportError should unwrap to its cause")
	}
}

func TestErrorWrapping(t *testing.T) {
	// Test that wrapped errors still match
	original := NewNotFoundError("entity", "EU/c-100")
	wrapped := fmt.Errorf("delete entity failed: %w", original)

	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("Wrapped NotFoundError should still match ErrNotFound")
	}

	if !IsNotFound(wrapped) {
		t.Error("IsNotFound should work with wrapped errors")
	}
}

func TestSentinelErrors(t *testing.T) {
	// Ensure sentinel errors are distinct
	sentinels := []error{
		ErrInvalidArgument,
		ErrNotConnected,
		ErrNotFound,
		ErrAlreadyExists,
		ErrBatchFailed,
		ErrService,
		ErrTransport,
		ErrNoKeyMap,
	}

	for i, err1 := range sentinels {
		for j, err2 := range sentinels {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Sentinel errors should be distinct: %v matches %v", err1, err2)
			}
		}
	}
}
