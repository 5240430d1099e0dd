package core

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("database file does not exist")
	ErrDriverUnavailable = errors.New("database driver not available")
	ErrConnection        = errors.New("database connection error")
	ErrExecution         = errors.New("statement execution error")
	ErrNoResults         = errors.New("no results were returned")
	ErrUnsupportedValue  = errors.New("unsupported value type")
)

// Error records the operation that failed, the statement text when there is
// one, the taxonomy sentinel and the underlying cause.
type Error struct {
	Op    string
	Query string
	Kind  error
	Err   error
}

func (e *Error) Error() string {
	msg := e.Op
	if e.Kind != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Kind)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Query != "" {
		msg = fmt.Sprintf("%s (query: %s)", msg, e.Query)
	}
	return msg
}

func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// NewError creates an Error of the given kind.
func NewError(op string, kind error, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// NewQueryError creates an ErrExecution error carrying the statement text.
func NewQueryError(op, query string, err error) *Error {
	return &Error{Op: op, Query: query, Kind: ErrExecution, Err: err}
}
