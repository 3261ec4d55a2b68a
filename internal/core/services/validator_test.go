package services

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/clueconv/internal/core/domain"
	"github.com/custodia-labs/clueconv/internal/logger"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })
	return &buf
}

func TestCountValidator_Match(t *testing.T) {
	logs := captureLogs(t)
	v := NewCountValidator()

	err := v.Check("/cw/en0000/00.warc.gz", domain.FileReport{Path: "en0000/00.warc.gz", Expected: 3, Emitted: 3})

	require.NoError(t, err)
	assert.Equal(t, 0, v.Mismatches())
	assert.Contains(t, logs.String(), "Finished processing file: /cw/en0000/00.warc.gz expected: 3 recs processed: 3 recs")
	assert.NotContains(t, logs.String(), "[WARN]")
}

func TestCountValidator_Mismatch(t *testing.T) {
	logs := captureLogs(t)
	v := NewCountValidator()

	err := v.Check("/cw/en0000/01.warc.gz", domain.FileReport{
		Path:     "en0000/01.warc.gz",
		Expected: 5,
		Emitted:  4,
		Skipped:  1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCountMismatch)
	assert.Contains(t, err.Error(), "declares 5 records, 4 processed (1 skipped)")
	assert.Equal(t, 1, v.Mismatches())
	assert.Contains(t, logs.String(), "[WARN] Record # mismatch")
}
