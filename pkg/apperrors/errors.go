package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when zero rows come back where exactly one was expected.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a uniqueness constraint rejects a write,
	// e.g. a duplicate unique_name.
	ErrConflict = errors.New("conflict")
	// ErrInvalidReference is returned when a foreign key points at a row that
	// does not exist.
	ErrInvalidReference = errors.New("referenced row does not exist")
	// ErrConnection is returned when the pool is exhausted or the datastore
	// is unreachable.
	ErrConnection = errors.New("datastore unavailable")
)

// DecodeError reports a row-shape mismatch between a query's projection and
// the entity decoder reading it. This is always a programmer error (the query
// and the decoder disagree), never a user error, and is fatal for the request.
type DecodeError struct {
	Column string
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode column %q: %s", e.Column, e.Reason)
}

// NewDecodeError builds a DecodeError for the given column.
func NewDecodeError(column, format string, args ...any) *DecodeError {
	return &DecodeError{Column: column, Reason: fmt.Sprintf(format, args...)}
}

// UnknownVariantError reports a stored enum value outside the closed set of
// known variants. Raised at the decode boundary rather than trusting the
// check constraint to have held.
type UnknownVariantError struct {
	Type  string
	Value string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("unknown %s variant %q", e.Type, e.Value)
}
