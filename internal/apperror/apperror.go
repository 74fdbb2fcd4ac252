// Package apperror defines the error kinds shared by repositories,
// services and handlers. Handlers translate these into HTTP status
// codes: InvalidArgument and NotFound are client errors (4xx),
// MalformedRow and Storage are server errors (5xx) whose details
// must never reach the client.
package apperror

import (
	"errors"
	"fmt"
)

// MalformedRowError means storage returned a row the aggregation
// logic cannot interpret (schema drift or a join bug). It is always
// a bug, never caused by the caller.
type MalformedRowError struct {
	Field   string
	Context string
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("malformed row: field %q %s", e.Field, e.Context)
}

func NewMalformedRow(field, context string) *MalformedRowError {
	return &MalformedRowError{Field: field, Context: context}
}

// InvalidArgumentError means a caller-supplied identifier has the
// wrong shape.
type InvalidArgumentError struct {
	Value  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Value, e.Reason)
}

func NewInvalidArgument(value, reason string) *InvalidArgumentError {
	return &InvalidArgumentError{Value: value, Reason: reason}
}

// NotFoundError means a requested singular entity does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func NewNotFound(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// StorageError wraps an underlying data-access failure (connection,
// timeout, constraint violation).
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %v", e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func NewStorage(err error) *StorageError {
	return &StorageError{Err: err}
}

// IsMalformedRow reports whether err carries a MalformedRowError.
func IsMalformedRow(err error) bool {
	var target *MalformedRowError
	return errors.As(err, &target)
}

// IsInvalidArgument reports whether err carries an InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	var target *InvalidArgumentError
	return errors.As(err, &target)
}

// IsNotFound reports whether err carries a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}
