package driven

import "github.com/custodia-labs/clueconv/internal/core/domain"

// EntryWriter serialises output documents to a sink.
// Each entry is a self-delimited block; the data model does not support
// concurrent writers to one sink.
type EntryWriter interface {
	// Write appends one entry followed by a record terminator.
	Write(entry domain.IndexEntry) error

	// Close flushes buffered data and closes the sink.
	Close() error
}

// EntryWriterFactory creates entry writers.
type EntryWriterFactory interface {
	// Create opens a new sink at path.
	Create(path string) (EntryWriter, error)
}
