package las

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by the typed errors below through errors.Is.
var (
	ErrMalformedLine  = errors.New("malformed header line")
	ErrDateParse      = errors.New("date does not match format")
	ErrColumnCount    = errors.New("data row column count mismatch")
	ErrUnknownVersion = errors.New("unknown LAS version")
)

// MalformedLineError is returned when a header line has no name/value separators.
type MalformedLineError struct {
	Text   string
	Reason string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed header line %q: %s", e.Text, e.Reason)
}

func (e *MalformedLineError) Is(target error) bool { return target == ErrMalformedLine }

// DateParseError is returned when a value carries a date format hint it does not satisfy.
type DateParseError struct {
	Value  string
	Format string
	Reason string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as %s: %s", e.Value, e.Format, e.Reason)
}

func (e *DateParseError) Is(target error) bool { return target == ErrDateParse }

// ColumnCountMismatchError is returned when a data row does not hold one token per curve.
type ColumnCountMismatchError struct {
	Expected int
	Got      int
}

func (e *ColumnCountMismatchError) Error() string {
	return fmt.Sprintf("expected %d columns, got %d", e.Expected, e.Got)
}

func (e *ColumnCountMismatchError) Is(target error) bool { return target == ErrColumnCount }

// UnknownVersionError is returned when VERS is missing or not 1.2, 2.0 or 3.0.
type UnknownVersionError struct {
	Version string
}

func (e *UnknownVersionError) Error() string {
	if e.Version == "" {
		return "missing VERS item in ~Version section"
	}
	return fmt.Sprintf("unsupported LAS version %q", e.Version)
}

func (e *UnknownVersionError) Is(target error) bool { return target == ErrUnknownVersion }

// LineError attaches the input position to a parse failure.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v (%q)", e.Line, e.Err, e.Text)
}

func (e *LineError) Unwrap() error { return e.Err }
