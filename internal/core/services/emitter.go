package services

import (
	"fmt"

	"github.com/custodia-labs/clueconv/internal/core/domain"
	"github.com/custodia-labs/clueconv/internal/core/ports/driven"
)

// Emitter writes normalised documents to an output sink.
type Emitter struct {
	sink    driven.EntryWriter
	emitted int
}

// NewEmitter creates an emitter writing to sink.
func NewEmitter(sink driven.EntryWriter) *Emitter {
	return &Emitter{sink: sink}
}

// Emit writes one document built from already filtered and stemmed fields.
func (e *Emitter) Emit(id, title, body, linkText string) error {
	entry := domain.IndexEntry{
		DocNo:    id,
		Title:    title,
		Text:     body,
		LinkText: linkText,
	}
	if err := e.sink.Write(entry); err != nil {
		return fmt.Errorf("write entry %s: %w", id, err)
	}
	e.emitted++
	return nil
}

// Emitted returns the number of documents written.
func (e *Emitter) Emitted() int {
	return e.emitted
}

// Close flushes and closes the sink.
// Failures wrap domain.ErrOutputClose.
func (e *Emitter) Close() error {
	if err := e.sink.Close(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrOutputClose, err)
	}
	return nil
}
