// Package stream opens local files as byte streams, transparently handling
// gzip and bzip2 compression.
package stream

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/custodia-labs/clueconv/internal/core/domain"
	"github.com/custodia-labs/clueconv/internal/core/ports/driven"
)

// Ensure Opener implements the interface.
var _ driven.StreamOpener = (*Opener)(nil)

var (
	gzipMagic  = []byte{0x1f, 0x8b}
	bzip2Magic = []byte("BZh")
)

// readBufferSize is sized for multi-gigabyte container files.
const readBufferSize = 1 << 20

// Opener opens files for reading and writing.
type Opener struct{}

// NewOpener creates a stream opener.
func NewOpener() *Opener {
	return &Opener{}
}

// OpenReader opens path for reading. Compression is detected from the
// leading magic bytes, not the file name; concatenated gzip members are
// read as one stream.
func (o *Opener) OpenReader(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	br := bufio.NewReaderSize(f, readBufferSize)
	// Short files simply fail to match any magic.
	head, _ := br.Peek(len(bzip2Magic))

	switch {
	case bytes.HasPrefix(head, gzipMagic):
		zr, err := gzip.NewReader(br)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		return &readCloser{Reader: zr, closers: []io.Closer{zr, f}}, nil
	case bytes.HasPrefix(head, bzip2Magic):
		return &readCloser{Reader: bzip2.NewReader(br), closers: []io.Closer{f}}, nil
	default:
		return &readCloser{Reader: br, closers: []io.Closer{f}}, nil
	}
}

// OpenWriter creates (or truncates) path for writing. A ".gz" suffix selects
// gzip compression. bzip2 output is not supported.
func (o *Opener) OpenWriter(path string) (io.WriteCloser, error) {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".bz2") {
		return nil, fmt.Errorf("%w: bzip2 output %s", domain.ErrUnsupportedType, path)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}

	if strings.HasSuffix(lower, ".gz") {
		zw := gzip.NewWriter(f)
		return &writeCloser{Writer: zw, closers: []io.Closer{zw, f}}, nil
	}
	return &writeCloser{Writer: f, closers: []io.Closer{f}}, nil
}

// readCloser closes its decoder and the underlying file in order.
type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	return closeAll(r.closers)
}

// writeCloser flushes its encoder before closing the underlying file.
type writeCloser struct {
	io.Writer
	closers []io.Closer
}

func (w *writeCloser) Close() error {
	return closeAll(w.closers)
}

func closeAll(closers []io.Closer) error {
	var errs []error
	for _, c := range closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
