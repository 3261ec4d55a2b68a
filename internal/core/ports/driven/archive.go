package driven

import "github.com/custodia-labs/clueconv/internal/core/domain"

// ArchiveReader reads records from one container file sequentially.
type ArchiveReader interface {
	// Next returns the next record.
	// Returns io.EOF when the container is exhausted or its tail is malformed.
	Next() (*domain.RawRecord, error)

	// Close releases the underlying file.
	Close() error
}

// ArchiveOpener opens container files.
type ArchiveOpener interface {
	// Open opens the container at path.
	// Returns an error wrapping domain.ErrResourceLoad if it cannot be read.
	Open(path string) (ArchiveReader, error)
}
