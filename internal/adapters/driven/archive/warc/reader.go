package warc

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/custodia-labs/clueconv/internal/core/domain"
	"github.com/custodia-labs/clueconv/internal/core/ports/driven"
)

// Ensure implementations satisfy the interfaces.
var (
	_ driven.ArchiveOpener = (*Opener)(nil)
	_ driven.ArchiveReader = (*Reader)(nil)
)

const versionPrefix = "WARC/"

// maxContentLength bounds a single record block. Larger declared lengths
// are treated as corruption.
const maxContentLength = 1 << 30

// Opener opens container files through a stream opener, so compressed
// containers are decoded transparently.
type Opener struct {
	streams driven.StreamOpener
}

// NewOpener creates a WARC opener.
func NewOpener(streams driven.StreamOpener) *Opener {
	return &Opener{streams: streams}
}

// Open opens the container file at path.
func (o *Opener) Open(path string) (driven.ArchiveReader, error) {
	rc, err := o.streams.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrResourceLoad, err)
	}
	return NewReader(rc), nil
}

// Reader yields records one at a time from a WARC stream.
type Reader struct {
	src io.ReadCloser
	br  *bufio.Reader
}

// NewReader creates a reader over src. Close closes src.
func NewReader(src io.ReadCloser) *Reader {
	return &Reader{src: src, br: bufio.NewReader(src)}
}

// Next returns the next record, or io.EOF when no complete record remains.
// Other errors come from the underlying stream.
func (r *Reader) Next() (*domain.RawRecord, error) {
	version, err := r.skipToVersion()
	if err != nil {
		return nil, err
	}

	rec := domain.NewRawRecord(version)
	if err := r.readHeaders(rec); err != nil {
		return nil, err
	}

	length, err := strconv.ParseInt(strings.TrimSpace(rec.Header(domain.HeaderContentLength)), 10, 64)
	if err != nil || length < 0 || length > maxContentLength {
		return nil, io.EOF
	}

	// The buffer grows with the bytes actually present, so a length that
	// overstates the remaining stream costs no more than the stream itself.
	var content bytes.Buffer
	if _, err := io.CopyN(&content, r.br, length); err != nil {
		return nil, eof(err)
	}
	rec.Content = content.Bytes()
	return rec, nil
}

// Close closes the underlying stream.
func (r *Reader) Close() error {
	return r.src.Close()
}

// skipToVersion discards lines until a version line and returns it.
func (r *Reader) skipToVersion() (string, error) {
	for {
		line, err := r.readLine()
		if strings.HasPrefix(line, versionPrefix) {
			return line, nil
		}
		if err != nil {
			return "", eof(err)
		}
	}
}

// readHeaders reads "Name: value" lines up to the first blank line.
func (r *Reader) readHeaders(rec *domain.RawRecord) error {
	for {
		line, err := r.readLine()
		if err != nil {
			// Headers cut off before the blank line.
			return eof(err)
		}
		if line == "" {
			return nil
		}

		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		rec.SetHeader(strings.TrimSpace(name), strings.TrimSpace(value))
	}
}

// readLine returns one line without its terminator. A final unterminated
// line is returned together with io.EOF.
func (r *Reader) readLine() (string, error) {
	line, err := r.br.ReadString('\n')
	return strings.TrimRight(line, "\r\n"), err
}

// eof maps truncation to end of stream and passes other errors through.
func eof(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return io.EOF
	}
	return err
}
