package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for tracking operations
var (
	// ErrDatabaseNotFound is returned when the tracking database file has not been created yet
	ErrDatabaseNotFound = errors.New("deployment tracking database not found")

	// ErrInvalidBlockHash is returned when a block hash cannot be parsed
	ErrInvalidBlockHash = errors.New("invalid block hash")

	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")
)

// IOError wraps a filesystem failure on the tracking database or project files
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// FormatError is returned when a document cannot be parsed
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("malformed document: %v", e.Err)
	}
	return fmt.Sprintf("malformed document %s: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// SerializationError is returned when a stored value does not have the expected shape
type SerializationError struct {
	Path string
	Err  error
}

func (e *SerializationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("unexpected value shape: %v", e.Err)
	}
	return fmt.Sprintf("unexpected value shape at %q: %v", e.Path, e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

// InsertionError is returned when a path conflicts with the existing document structure
type InsertionError struct {
	Path   string
	Reason string
}

func (e *InsertionError) Error() string {
	return fmt.Sprintf("cannot write %q: %s", e.Path, e.Reason)
}
