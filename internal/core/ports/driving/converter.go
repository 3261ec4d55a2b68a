package driving

import (
	"context"

	"github.com/custodia-labs/clueconv/internal/core/domain"
)

// Converter runs one archive conversion.
type Converter interface {
	// Convert processes every container file listed in the manifest.
	// The returned summary is non-nil even when err is non-nil.
	Convert(ctx context.Context) (*domain.RunSummary, error)

	// Status returns a snapshot of the conversion progress.
	Status() ConvertStatus
}

// ConvertStatus represents the current state of a conversion.
type ConvertStatus struct {
	// RunID identifies the run.
	RunID string

	// State is the state machine position.
	State domain.RunState

	// CurrentFile is the container file being read, if any.
	CurrentFile string

	// FilesProcessed is the number of container files finished.
	FilesProcessed int

	// DocumentsEmitted is the number of documents written so far.
	DocumentsEmitted int

	// Mismatches is the number of files whose counts disagreed with the manifest.
	Mismatches int
}
