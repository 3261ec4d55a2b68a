package domain

import "time"

// RunState is the converter's position in its state machine.
type RunState int

// Converter states.
const (
	// StateReadingManifest is the state between container files.
	StateReadingManifest RunState = iota

	// StateProcessingFile is entered when a container file is opened.
	StateProcessingFile

	// StateReadingRecords is entered once records are being read from the file.
	StateReadingRecords

	// StateDone is terminal: the manifest was exhausted.
	StateDone

	// StateFailed is terminal: an unrecoverable error occurred.
	StateFailed
)

// String returns the string representation.
func (s RunState) String() string {
	switch s {
	case StateReadingManifest:
		return "reading_manifest"
	case StateProcessingFile:
		return "processing_file"
	case StateReadingRecords:
		return "reading_records"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// IsTerminal returns true for Done and Failed.
func (s RunState) IsTerminal() bool {
	return s == StateDone || s == StateFailed
}

// RunStatus is the recorded outcome of a run.
type RunStatus string

// Run outcomes.
const (
	RunRunning   RunStatus = "running"
	RunSucceeded RunStatus = "succeeded"
	RunFailed    RunStatus = "failed"
)

// FileReport holds the counts for one container file.
type FileReport struct {
	// Path is the manifest-relative container path.
	Path string

	// Expected is the count declared in the manifest.
	Expected int

	// Records is the number of records read, of any type.
	Records int

	// Responses is the number of response records seen.
	Responses int

	// Emitted is the number of documents written to the output.
	Emitted int

	// Skipped is the number of response records without a header/body split.
	Skipped int
}

// Mismatch reports whether the emitted count differs from the declared one.
func (r FileReport) Mismatch() bool {
	return r.Emitted != r.Expected
}

// RunSummary describes one conversion run.
type RunSummary struct {
	// ID uniquely identifies the run.
	ID string

	// OutputPath is where documents were written.
	OutputPath string

	// Status is the run outcome.
	Status RunStatus

	// StartedAt is when the run started.
	StartedAt time.Time

	// FinishedAt is when the run ended. Zero while running.
	FinishedAt time.Time

	// Files lists the reports of processed container files, in manifest order.
	Files []FileReport

	// Error contains the fatal error message, if any.
	Error string
}

// Emitted returns the number of documents emitted across all files.
func (s *RunSummary) Emitted() int {
	total := 0
	for _, f := range s.Files {
		total += f.Emitted
	}
	return total
}

// Mismatches returns the number of files whose counts disagree with the manifest.
func (s *RunSummary) Mismatches() int {
	n := 0
	for _, f := range s.Files {
		if f.Mismatch() {
			n++
		}
	}
	return n
}
