package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/clueconv/internal/core/domain"
	"github.com/custodia-labs/clueconv/internal/core/ports/driven"
)

// Ensure ReportStore implements the interface.
var _ driven.ReportStore = (*ReportStore)(nil)

// ReportStore is an in-memory implementation of driven.ReportStore.
type ReportStore struct {
	mu   sync.RWMutex
	runs map[string]*domain.RunSummary
}

// NewReportStore creates a new in-memory report store.
func NewReportStore() *ReportStore {
	return &ReportStore{
		runs: make(map[string]*domain.RunSummary),
	}
}

// StartRun records a new run.
func (s *ReportStore) StartRun(_ context.Context, run domain.RunSummary) error {
	if run.ID == "" {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.runs[run.ID]; exists {
		return domain.ErrInvalidInput
	}
	run.Files = nil
	s.runs[run.ID] = &run
	return nil
}

// SaveFileReport appends a file report to a run.
func (s *ReportStore) SaveFileReport(_ context.Context, runID string, report domain.FileReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	run, ok := s.runs[runID]
	if !ok {
		return domain.ErrNotFound
	}
	run.Files = append(run.Files, report)
	return nil
}

// FinishRun records the final status of a run.
func (s *ReportStore) FinishRun(_ context.Context, run domain.RunSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.runs[run.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.Status = run.Status
	stored.FinishedAt = run.FinishedAt
	stored.Error = run.Error
	return nil
}

// GetRun retrieves a run with its file reports.
func (s *ReportStore) GetRun(_ context.Context, runID string) (*domain.RunSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, ok := s.runs[runID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return copyRun(run, true), nil
}

// ListRuns returns all runs, most recent first, without file reports.
func (s *ReportStore) ListRuns(_ context.Context) ([]domain.RunSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	runs := make([]domain.RunSummary, 0, len(s.runs))
	for _, run := range s.runs {
		runs = append(runs, *copyRun(run, false))
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].StartedAt.After(runs[j].StartedAt)
	})
	return runs, nil
}

// copyRun returns a copy that callers may modify.
func copyRun(run *domain.RunSummary, withFiles bool) *domain.RunSummary {
	cp := *run
	cp.Files = nil
	if withFiles && len(run.Files) > 0 {
		cp.Files = make([]domain.FileReport, len(run.Files))
		copy(cp.Files, run.Files)
	}
	return &cp
}
