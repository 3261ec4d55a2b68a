package driving

import (
	"context"

	"github.com/custodia-labs/clueconv/internal/core/domain"
)

// RunHistory exposes the ledger of past conversion runs.
type RunHistory interface {
	// List returns all runs, most recent first. File reports are not included.
	List(ctx context.Context) ([]domain.RunSummary, error)

	// Get returns one run with its file reports.
	// Returns domain.ErrNotFound if the run does not exist.
	Get(ctx context.Context, runID string) (*domain.RunSummary, error)
}
