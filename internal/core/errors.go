package core

// errors.go defines the error taxonomy of a pipeline run.
//
// Only ConfigError is fatal. RowRejection and ReconciliationGap are recorded
// and logged, and the run continues; unroutable records are counted and
// dropped without an error value at all.

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoGeographyID means the geography text has no parenthesized digit group.
	ErrNoGeographyID = errors.New("no parenthesized geography id")

	// ErrGeographyIDOverflow means the digit group does not fit in a GeographyID.
	ErrGeographyIDOverflow = errors.New("geography id out of range")

	// ErrOutsideProvince means a scoped resolver saw an ID from another province.
	ErrOutsideProvince = errors.New("geography id outside province")

	// ErrOutsideRange means a range-gated validator saw an ID outside its ranges.
	ErrOutsideRange = errors.New("geography id outside permitted ranges")

	// ErrNotNumeric means a field that must be a number could not be parsed.
	ErrNotNumeric = errors.New("invalid number format")
)

// ConfigError is a fatal configuration problem: wrong argument count, missing
// or unreadable input, or a dataset whose columns are absent from the input.
type ConfigError struct {
	Op  string // What was being configured: "args", "input", "header", "dataset"
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// configErrorf builds a ConfigError from a format string.
func configErrorf(op, format string, args ...any) *ConfigError {
	return &ConfigError{Op: op, Err: fmt.Errorf(format, args...)}
}

// IsConfigError reports whether err is, or wraps, a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// RejectKind classifies why a row was skipped.
type RejectKind string

const (
	RejectShape      RejectKind = "shape"      // Too few columns or unparseable CSV record
	RejectGeography  RejectKind = "geography"  // No usable ID in the geography text
	RejectScope      RejectKind = "scope"      // ID belongs to another province
	RejectRange      RejectKind = "range"      // ID outside the permitted ranges
	RejectValidation RejectKind = "validation" // Field values failed the dataset's checks
)

// RowRejection records a single skipped input row.
type RowRejection struct {
	Input      string      // Input path
	Line       int         // 1-indexed line in the input
	Kind       RejectKind  // Rejection category
	Reason     string      // Human-readable reason
	Difference int64       // Observed |total - sum| for sum-consistency failures
	Data       FieldVector // Offending values, when the row could be read
	Err        error       // Underlying cause
}

func (r *RowRejection) Error() string {
	if r.Line > 0 {
		return fmt.Sprintf("line %d: %s", r.Line, r.Reason)
	}
	return r.Reason
}

func (r *RowRejection) Unwrap() error { return r.Err }

// newRowRejection classifies err into a RowRejection.
func newRowRejection(input string, line int, data FieldVector, err error) RowRejection {
	rej := RowRejection{
		Input:  input,
		Line:   line,
		Kind:   RejectValidation,
		Reason: err.Error(),
		Data:   data,
		Err:    err,
	}

	var mismatch *SumMismatchError
	switch {
	case errors.Is(err, ErrNoGeographyID), errors.Is(err, ErrGeographyIDOverflow):
		rej.Kind = RejectGeography
	case errors.Is(err, ErrOutsideProvince):
		rej.Kind = RejectScope
	case errors.Is(err, ErrOutsideRange):
		rej.Kind = RejectRange
	case errors.As(err, &mismatch):
		rej.Difference = mismatch.Difference
	}
	return rej
}

// SumMismatchError reports a total that disagrees with the sum of its components.
type SumMismatchError struct {
	Total      int64
	Sum        int64
	Difference int64
}

func (e *SumMismatchError) Error() string {
	return fmt.Sprintf("difference %d between total %d and sum of components %d", e.Difference, e.Total, e.Sum)
}

// ReconciliationGap notes an ID present in only some inputs of a dual-input run.
// The missing side is filled with the dataset's null vector.
type ReconciliationGap struct {
	ID      GeographyID
	Missing []string // Labels of the sources that lack the ID
}

func (g ReconciliationGap) String() string {
	return fmt.Sprintf("%s missing %s", g.ID, strings.Join(g.Missing, ","))
}
