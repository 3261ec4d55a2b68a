package driven

import (
	"context"

	"github.com/custodia-labs/clueconv/internal/core/domain"
)

// ReportStore persists run summaries and per-file counts.
type ReportStore interface {
	// StartRun records a new run. Files are ignored.
	StartRun(ctx context.Context, run domain.RunSummary) error

	// SaveFileReport appends a file report to a run.
	SaveFileReport(ctx context.Context, runID string, report domain.FileReport) error

	// FinishRun records the final status, finish time and error of a run.
	FinishRun(ctx context.Context, run domain.RunSummary) error

	// GetRun retrieves a run with its file reports.
	// Returns domain.ErrNotFound if the run does not exist.
	GetRun(ctx context.Context, runID string) (*domain.RunSummary, error)

	// ListRuns returns all runs, most recent first, without file reports.
	ListRuns(ctx context.Context) ([]domain.RunSummary, error)
}
