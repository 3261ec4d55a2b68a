package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/clueconv/internal/core/domain"
	"github.com/custodia-labs/clueconv/internal/core/ports/driven"
)

// memorySink implements driven.EntryWriter for testing.
type memorySink struct {
	entries  []domain.IndexEntry
	closed   bool
	writeErr error
	closeErr error
}

var _ driven.EntryWriter = (*memorySink)(nil)

func (s *memorySink) Write(entry domain.IndexEntry) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.entries = append(s.entries, entry)
	return nil
}

func (s *memorySink) Close() error {
	s.closed = true
	return s.closeErr
}

func TestEmitter_Emit(t *testing.T) {
	sink := &memorySink{}
	e := NewEmitter(sink)

	require.NoError(t, e.Emit("doc-1", "titl", "bodi", "link"))
	require.NoError(t, e.Emit("doc-2", "", "", ""))

	assert.Equal(t, 2, e.Emitted())
	require.Len(t, sink.entries, 2)
	assert.Equal(t, domain.IndexEntry{DocNo: "doc-1", Title: "titl", Text: "bodi", LinkText: "link"}, sink.entries[0])
	assert.Equal(t, "doc-2", sink.entries[1].DocNo)
}

func TestEmitter_WriteError(t *testing.T) {
	sink := &memorySink{writeErr: errors.New("disk full")}
	e := NewEmitter(sink)

	err := e.Emit("doc-1", "a", "b", "c")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "doc-1")
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, 0, e.Emitted())
}

func TestEmitter_Close(t *testing.T) {
	sink := &memorySink{}
	e := NewEmitter(sink)

	require.NoError(t, e.Close())
	assert.True(t, sink.closed)
}

func TestEmitter_CloseError(t *testing.T) {
	sink := &memorySink{closeErr: errors.New("flush failed")}
	e := NewEmitter(sink)

	err := e.Close()

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOutputClose)
	assert.Contains(t, err.Error(), "flush failed")
}
