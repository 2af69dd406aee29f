// Package errors provides error handling for quants.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Sentinel marking with errors.Mark / errors.Is
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
//	// Check error kinds
//	if errors.Is(err, errors.ErrParse) {
//	    // handle parse failure
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
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Mark      = crdb.Mark
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for the quantity error surface. Fallible constructors
// mark their errors with one of these; use errors.Is() for type-safe
// checking and errors.Wrap() to add context while preserving the kind.
var (
	// ErrParse indicates a quantity string could not be parsed
	ErrParse = New("unable to parse quantity")

	// ErrRange indicates an invalid quantity range construction
	ErrRange = New("invalid quantity range")

	// ErrConversion indicates a conversion a quantity type rejects,
	// such as arithmetic across mismatched currencies
	ErrConversion = New("invalid conversion")

	// ErrUnsupported indicates an operation a quantity type does not support
	ErrUnsupported = New("unsupported operation")
)

// IsParseError checks if an error is or wraps ErrParse.
func IsParseError(err error) bool {
	return err != nil && Is(err, ErrParse)
}

// IsRangeError checks if an error is or wraps ErrRange.
func IsRangeError(err error) bool {
	return err != nil && Is(err, ErrRange)
}

// IsConversionError checks if an error is or wraps ErrConversion.
func IsConversionError(err error) bool {
	return err != nil && Is(err, ErrConversion)
}

// IsUnsupportedError checks if an error is or wraps ErrUnsupported.
func IsUnsupportedError(err error) bool {
	return err != nil && Is(err, ErrUnsupported)
}
