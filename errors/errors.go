/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrInvalidArgument is returned when local input validation fails
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotConnected is returned when an operation is attempted before Connect
	ErrNotConnected = errors.New("client not connected")

	// ErrNotFound is returned when a referenced table or entity does not exist
	ErrNotFound = errors.New("resource not found")

	// ErrAlreadyExists is returned when creating a table that already exists
	ErrAlreadyExists = errors.New("resource already exists")

	// ErrBatchFailed is returned when one transactional batch is rejected
	ErrBatchFailed = errors.New("batch transaction failed")

	// ErrService is returned when the service rejects a request
	ErrService = errors.New("service request failed")

	// ErrTransport is returned when the service could not be reached at all
	ErrTransport = errors.New("transport failure")

	// ErrNoKeyMap is returned when no key map is registered for a type
	ErrNoKeyMap = errors.New("no key map registered for type")
)

// InvalidArgumentError represents a local input validation failure
type InvalidArgumentError struct {
	Field   string
	Message string
}

func (e *InvalidArgumentError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NotConnectedError represents an operation attempted in the disconnected state
type NotConnectedError struct {
	Op string
}

func (e *NotConnectedError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("cannot %s: client is not connected", e.Op)
	}
	return "client is not connected"
}

func (e *NotConnectedError) Is(target error) bool {
	return target == ErrNotConnected
}

// NotFoundError represents an error when a table or entity is not found
type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q not found", e.Kind, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AlreadyExistsError represents an error when a table or entity already exists
type AlreadyExistsError struct {
	Kind string
	Key  string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s with key %q already exists", e.Kind, e.Key)
}

func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// BatchError represents the rejection of one transactional batch.
// Batches before Index were already committed and remain in place.
type BatchError struct {
	Table        string
	Index        int
	PartitionKey string
	Size         int
	Err          error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("batch %d (partition key %q, %d entities) for table %q failed: %v",
		e.Index, e.PartitionKey, e.Size, e.Table, e.Err)
}

func (e *BatchError) Is(target error) bool {
	return target == ErrBatchFailed
}

func (e *BatchError) Unwrap() error {
	return e.Err
}

// ServiceError represents a request the service received and rejected
type ServiceError struct {
	Op         string
	Table      string
	StatusCode int
	Code       string
	Err        error
}

func (e *ServiceError) Error() string {
	msg := fmt.Sprintf("%s failed", e.Op)
	if e.Table != "" {
		msg += fmt.Sprintf(" for table %q", e.Table)
	}
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(": status %d", e.StatusCode)
	}
	if e.Code != "" {
		msg += fmt.Sprintf(" (%s)", e.Code)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ServiceError) Is(target error) bool {
	return target == ErrService
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// TransportError represents a connectivity failure before any service response
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport failure: %v", e.Op, e.Err)
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Helper functions for creating errors

// NewInvalidArgumentError creates a new InvalidArgumentError
func NewInvalidArgumentError(field, message string) error {
	return &InvalidArgumentError{Field: field, Message: message}
}

// NewNotConnectedError creates a new NotConnectedError
func NewNotConnectedError(op string) error {
	return &NotConnectedError{Op: op}
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(kind, key string) error {
	return &NotFoundError{Kind: kind, Key: key}
}

// NewAlreadyExistsError creates a new AlreadyExistsError
func NewAlreadyExistsError(kind, key string) error {
	return &AlreadyExistsError{Kind: kind, Key: key}
}

// NewBatchError creates a new BatchError
func NewBatchError(table string, index int, partitionKey string, size int, cause error) error {
	return &BatchError{Table: table, Index: index, PartitionKey: partitionKey, Size: size, Err: cause}
}

// NewServiceError creates a new ServiceError
func NewServiceError(op, table string, statusCode int, code string, cause error) error {
	return &ServiceError{Op: op, Table: table, StatusCode: statusCode, Code: code, Err: cause}
}

// NewTransportError creates a new TransportError
func NewTransportError(op string, cause error) error {
	return &TransportError{Op: op, Err: cause}
}

// IsInvalidArgument checks if an error is a validation error
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsNotConnected checks if an error is a not connected error
func IsNotConnected(err error) bool {
	return errors.Is(err, ErrNotConnected)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsBatchError checks if an error is a batch rejection
func IsBatchError(err error) bool {
	return errors.Is(err, ErrBatchFailed)
}

// IsServiceError checks if an error is a remote service failure
func IsServiceError(err error) bool {
	return errors.Is(err, ErrService)
}

// IsTransportError checks if an error is a connectivity failure
func IsTransportError(err error) bool {
	return errors.Is(err, ErrTransport)
}
