// Package errors provides error handling for kin.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints surfaced to the interactive user
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrNotFound) {
//	    // handle not found
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is           = crdb.Is
	IsAny        = crdb.IsAny
	As           = crdb.As
	Unwrap       = crdb.Unwrap
	UnwrapOnce   = crdb.UnwrapOnce
	UnwrapAll    = crdb.UnwrapAll
	GetAllHints  = crdb.GetAllHints
	FlattenHints = crdb.FlattenHints
)

// Sentinel errors for the kin error taxonomy.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrParse indicates a malformed CSV row (wrong column count or an
	// unparseable year field). Parse errors are per-row: the row is
	// skipped and loading continues.
	ErrParse = New("parse error")

	// ErrDanglingRef indicates a relationship reference (father, mother,
	// spouse) naming a person that does not exist in the tree. The link
	// is dropped and the build continues.
	ErrDanglingRef = New("dangling reference")

	// ErrNotFound indicates a query anchor person is not in the tree.
	// Reported to the user; never fatal.
	ErrNotFound = New("not found")

	// ErrInvalidInput indicates query parameters that cannot be
	// interpreted (bad direction, bad year range).
	ErrInvalidInput = New("invalid input")
)

// IsNotFoundError checks if an error is or wraps ErrNotFound.
func IsNotFoundError(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// IsParseError checks if an error is or wraps ErrParse.
func IsParseError(err error) bool {
	return err != nil && Is(err, ErrParse)
}

// IsDanglingRefError checks if an error is or wraps ErrDanglingRef.
func IsDanglingRefError(err error) bool {
	return err != nil && Is(err, ErrDanglingRef)
}

// IsInvalidInputError checks if an error is or wraps ErrInvalidInput.
func IsInvalidInputError(err error) bool {
	return err != nil && Is(err, ErrInvalidInput)
}

// NewNotFoundError creates a not-found error with a formatted message.
func NewNotFoundError(format string, args ...interface{}) error {
	return Wrap(ErrNotFound, Newf(format, args...).Error())
}

// NewParseError creates a parse error with a formatted message.
func NewParseError(format string, args ...interface{}) error {
	return Wrap(ErrParse, Newf(format, args...).Error())
}

// NewDanglingRefError creates a dangling-reference error with a formatted message.
func NewDanglingRefError(format string, args ...interface{}) error {
	return Wrap(ErrDanglingRef, Newf(format, args...).Error())
}
