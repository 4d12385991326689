// Package errs defines the sentinel errors returned by timetag packages.
//
// Errors are grouped in four categories. Every specific error wraps exactly one
// category, so callers can match either the precise failure or its class:
//
//	if errors.Is(err, errs.ErrConfigurationMismatch) {
//	    // recompute the buffer length with the exported helper and retry
//	}
//
// Call sites add context with fmt.Errorf("%w: ...", errs.ErrX).
package errs

import (
	"errors"
	"fmt"
)

// Categories.
var (
	// ErrInvalidInput reports a missing input or an input that must not be empty.
	ErrInvalidInput = errors.New("invalid input")
	// ErrConfigurationMismatch reports a caller supplied buffer length that differs
	// from the length computable from the other inputs.
	ErrConfigurationMismatch = errors.New("configuration mismatch")
	// ErrConstraintViolation reports a violated precondition of a specific algorithm.
	ErrConstraintViolation = errors.New("constraint violation")
	// ErrInternalInvariant reports a state that valid inputs can never reach.
	ErrInternalInvariant = errors.New("internal invariant violation")
)

// Invalid input.
var (
	ErrEmptySequence      = wrap(ErrInvalidInput, "empty sequence")
	ErrSkipOutOfRange     = wrap(ErrInvalidInput, "records to skip exceed available records")
	ErrInvalidMagic       = wrap(ErrInvalidInput, "invalid stream magic")
	ErrCheckpointMismatch = wrap(ErrInvalidInput, "checkpoint does not match stream contents")
	ErrTruncatedRecord    = wrap(ErrInvalidInput, "truncated record")
)

// Configuration mismatch.
var (
	ErrHistogramLength = wrap(ErrConfigurationMismatch, "histogram length does not match bin edges")
	ErrOutputLength    = wrap(ErrConfigurationMismatch, "output length does not match expected length")
)

// Constraint violation.
var (
	ErrTooFewBinEdges     = wrap(ErrConstraintViolation, "at least two bin edges are required")
	ErrEdgesNotAscending  = wrap(ErrConstraintViolation, "bin edges are not strictly ascending")
	ErrBinsNotUnitSized   = wrap(ErrConstraintViolation, "bins are not unit sized")
	ErrInvalidBinSize     = wrap(ErrConstraintViolation, "new bin size must be positive")
	ErrInvalidRange       = wrap(ErrConstraintViolation, "invalid range")
	ErrInvalidWindow      = wrap(ErrConstraintViolation, "observation window is empty")
	ErrTooFewPulses       = wrap(ErrConstraintViolation, "at least two reference pulses are required")
	ErrInvalidPulsePeriod = wrap(ErrConstraintViolation, "reference pulse period must be positive")
	ErrInvalidSyncDivider = wrap(ErrConstraintViolation, "sync divider must be positive")
	ErrUnsortedInput      = wrap(ErrConstraintViolation, "input is not sorted")
	ErrMacrotimeOverflow  = wrap(ErrConstraintViolation, "macrotime exceeds int64 range")
)

// Internal invariant.
var (
	ErrNoPrecedingPulse = wrap(ErrInternalInvariant, "no reference pulse precedes event")
)

type categorized struct {
	category error
	msg      string
}

func wrap(category error, msg string) error {
	return &categorized{category: category, msg: msg}
}

func (e *categorized) Error() string {
	return fmt.Sprintf("%s: %s", e.category, e.msg)
}

func (e *categorized) Unwrap() error {
	return e.category
}
