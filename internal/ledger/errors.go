package ledger

import (
	"errors"
	"fmt"
)

// Validation sentinels. Every *ValidationError unwraps to one of these.
var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidName     = errors.New("invalid name")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidMonth    = errors.New("invalid month")
)

// ValidationError rejects a mutation before anything is written.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Err, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// PersistenceError reports a failed load or save of one collection. When a
// save fails the in-memory collection is left as it was.
type PersistenceError struct {
	Key string
	Op  string // "load" or "save"
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
