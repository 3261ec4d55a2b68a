package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunState_String(t *testing.T) {
	tests := []struct {
		state    RunState
		expected string
	}{
		{StateReadingManifest, "reading_manifest"},
		{StateProcessingFile, "processing_file"},
		{StateReadingRecords, "reading_records"},
		{StateDone, "done"},
		{StateFailed, "failed"},
		{RunState(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestRunState_IsTerminal(t *testing.T) {
	assert.False(t, StateReadingManifest.IsTerminal())
	assert.False(t, StateProcessingFile.IsTerminal())
	assert.False(t, StateReadingRecords.IsTerminal())
	assert.True(t, StateDone.IsTerminal())
	assert.True(t, StateFailed.IsTerminal())
}

func TestFileReport_Mismatch(t *testing.T) {
	assert.False(t, FileReport{Expected: 3, Emitted: 3}.Mismatch())
	assert.True(t, FileReport{Expected: 3, Emitted: 2}.Mismatch())
	assert.True(t, FileReport{Expected: 0, Emitted: 1}.Mismatch())
}

func TestRunSummary_Totals(t *testing.T) {
	run := &RunSummary{
		Files: []FileReport{
			{Path: "a", Expected: 2, Emitted: 2},
			{Path: "b", Expected: 5, Emitted: 4},
			{Path: "c", Expected: 0, Emitted: 1},
		},
	}

	assert.Equal(t, 7, run.Emitted())
	assert.Equal(t, 2, run.Mismatches())
}

func TestRunSummary_Empty(t *testing.T) {
	run := &RunSummary{}

	assert.Equal(t, 0, run.Emitted())
	assert.Equal(t, 0, run.Mismatches())
}
