package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/clueconv/internal/core/domain"
	"github.com/custodia-labs/clueconv/internal/core/ports/driven"
	"github.com/custodia-labs/clueconv/internal/core/ports/driving"
)

// Ensure RunHistory implements the interface.
var _ driving.RunHistory = (*RunHistory)(nil)

// RunHistory reads past runs from a report store.
type RunHistory struct {
	store driven.ReportStore
}

// NewRunHistory creates a run history service.
func NewRunHistory(store driven.ReportStore) *RunHistory {
	return &RunHistory{store: store}
}

// List returns all runs, most recent first.
func (h *RunHistory) List(ctx context.Context) ([]domain.RunSummary, error) {
	runs, err := h.store.ListRuns(ctx)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// Get returns one run with its file reports.
func (h *RunHistory) Get(ctx context.Context, runID string) (*domain.RunSummary, error) {
	runID = strings.TrimSpace(runID)
	if runID == "" {
		return nil, fmt.Errorf("%w: empty run id", domain.ErrInvalidInput)
	}

	run, err := h.store.GetRun(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	return run, nil
}
