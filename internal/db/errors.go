package db

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks caller mistakes: missing required dates, a
	// non-positive id, an inverted range, a disallowed status transition.
	ErrValidation = errors.New("invalid argument")

	// ErrNotFound marks operations that target a session that does not exist.
	ErrNotFound = errors.New("session not found")
)

// RepositoryError wraps an underlying store failure, preserving the cause.
type RepositoryError struct {
	Op  string
	Err error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("sessions: %s: %v", e.Op, e.Err)
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func notFoundf(id uint) error {
	return fmt.Errorf("%w: id %d", ErrNotFound, id)
}

func storeErr(op string, err error) error {
	return &RepositoryError{Op: op, Err: err}
}
