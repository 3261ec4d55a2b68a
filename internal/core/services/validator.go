package services

import (
	"fmt"

	"github.com/custodia-labs/clueconv/internal/core/domain"
	"github.com/custodia-labs/clueconv/internal/logger"
)

// CountValidator compares emitted document counts with manifest declarations.
// A mismatch is an observability signal, never a reason to stop.
type CountValidator struct {
	mismatches int
}

// NewCountValidator creates a validator.
func NewCountValidator() *CountValidator {
	return &CountValidator{}
}

// Check logs the outcome of one container file.
// It returns an error wrapping domain.ErrCountMismatch when counts differ;
// callers log it and continue.
func (v *CountValidator) Check(containerPath string, report domain.FileReport) error {
	logger.Info("Finished processing file: %s expected: %d recs processed: %d recs",
		containerPath, report.Expected, report.Emitted)

	if !report.Mismatch() {
		return nil
	}

	v.mismatches++
	err := fmt.Errorf("%w: %s declares %d records, %d processed (%d skipped)",
		domain.ErrCountMismatch, report.Path, report.Expected, report.Emitted, report.Skipped)
	logger.Warn("Record # mismatch: the number of processed records != the number of declared records: %v", err)
	return err
}

// Mismatches returns the number of mismatching files seen so far.
func (v *CountValidator) Mismatches() int {
	return v.mismatches
}
