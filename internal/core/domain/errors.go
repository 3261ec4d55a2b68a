package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent conversion failures.
// Fatal errors abort the run; per-record errors are absorbed by the driver.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown compression format or stemmer language.
	ErrUnsupportedType = errors.New("unsupported type")

	// Fatal Errors.

	// ErrUsage indicates a missing or invalid configuration value.
	// No processing is attempted.
	ErrUsage = errors.New("usage error")

	// ErrResourceLoad indicates a dictionary, manifest or container file could not be read.
	ErrResourceLoad = errors.New("cannot load resource")

	// ErrMalformedManifestLine indicates a manifest line does not follow the
	// "<*./path> <count>" convention. It aborts the entire run.
	ErrMalformedManifestLine = errors.New("malformed manifest line")

	// ErrOutputClose indicates the output sink could not be flushed or closed.
	ErrOutputClose = errors.New("error closing output stream")

	// Non-fatal Errors.

	// ErrMalformedRecord indicates a response record has no header/body separator.
	// The record is skipped and processing continues.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrCountMismatch indicates the number of emitted documents differs from
	// the number declared in the manifest.
	ErrCountMismatch = errors.New("record count mismatch")
)

// ManifestLineError describes the offending manifest line.
type ManifestLineError struct {
	// Line is the 1-based line number.
	Line int

	// Text is the raw line.
	Text string

	// Reason says what was wrong with it.
	Reason string
}

// Error implements the error interface.
func (e *ManifestLineError) Error() string {
	return fmt.Sprintf("%s %d %q: %s", ErrMalformedManifestLine, e.Line, e.Text, e.Reason)
}

// Unwrap allows errors.Is(err, ErrMalformedManifestLine).
func (e *ManifestLineError) Unwrap() error {
	return ErrMalformedManifestLine
}
