package driven

import "io"

// StreamOpener opens files through a decompression-aware layer.
type StreamOpener interface {
	// OpenReader opens path for reading, transparently decompressing it.
	OpenReader(path string) (io.ReadCloser, error)

	// OpenWriter creates path for writing, compressing according to its name.
	// Closing the writer flushes and closes every layer.
	OpenWriter(path string) (io.WriteCloser, error)
}
