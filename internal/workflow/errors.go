package workflow

import (
	"errors"
	"fmt"

	"hospital-tui/internal/store"
)

// NotFoundError means a typed id or a stale selection no longer resolves.
type NotFoundError struct {
	Noun string
	ID   int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d doesn't exist", capitalize(e.Noun), e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == store.ErrNotFound
}

// ValidationError covers empty required fields and buffers that fail their
// typed parse. Message is shown to the user verbatim.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StorageError wraps a failed storage call.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return "Database error: " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// storageErr classifies an error returned by a repository.
func storageErr(noun string, id int64, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return &NotFoundError{Noun: noun, ID: id}
	}
	return &StorageError{Err: err}
}
