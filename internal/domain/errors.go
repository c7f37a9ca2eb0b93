package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrNotFound   = errors.New("not found")
	ErrEmptyTitle = errors.New("empty title")
	ErrTerminal   = errors.New("status is terminal")
)

// StorageError represents a failure reading or writing persisted tasks
type StorageError struct {
	Op  string // Operation: "load", "save", "decode"
	Key string // Storage entry name
	Err error  // Underlying error
}

func (e *StorageError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("storage %s [%s]: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
