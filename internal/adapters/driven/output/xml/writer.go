// Package xml writes index entries as TREC-style XML document blocks.
package xml

import (
	"bufio"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/custodia-labs/clueconv/internal/core/domain"
	"github.com/custodia-labs/clueconv/internal/core/ports/driven"
)

// Ensure implementations satisfy the interfaces.
var (
	_ driven.EntryWriterFactory = (*WriterFactory)(nil)
	_ driven.EntryWriter        = (*Writer)(nil)
)

const (
	docOpen    = "<DOC>\n"
	docClose   = "</DOC>\n"
	terminator = "\n"
)

// WriterFactory creates writers on streams from a stream opener,
// so a ".gz" output path is compressed.
type WriterFactory struct {
	streams driven.StreamOpener
}

// NewWriterFactory creates a writer factory.
func NewWriterFactory(streams driven.StreamOpener) *WriterFactory {
	return &WriterFactory{streams: streams}
}

// Create opens path and returns a writer on it.
func (f *WriterFactory) Create(path string) (driven.EntryWriter, error) {
	w, err := f.streams.OpenWriter(path)
	if err != nil {
		return nil, err
	}
	return NewWriter(w), nil
}

// Writer serialises entries one block at a time. Not safe for concurrent use.
type Writer struct {
	dst io.WriteCloser
	bw  *bufio.Writer
}

// NewWriter creates a writer on dst. Close closes dst.
func NewWriter(dst io.WriteCloser) *Writer {
	return &Writer{dst: dst, bw: bufio.NewWriter(dst)}
}

// Write appends one document block:
//
//	<DOC>
//	<DOCNO>id</DOCNO>
//	<title>...</title>
//	<text>...</text>
//	<linkText>...</linkText>
//	</DOC>
//
// followed by a blank line. Values are XML-escaped.
func (w *Writer) Write(entry domain.IndexEntry) error {
	if _, err := w.bw.WriteString(docOpen); err != nil {
		return err
	}
	for _, field := range entry.Fields() {
		if err := w.writeField(field); err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
	}
	if _, err := w.bw.WriteString(docClose); err != nil {
		return err
	}
	_, err := w.bw.WriteString(terminator)
	return err
}

func (w *Writer) writeField(field domain.Field) error {
	if _, err := fmt.Fprintf(w.bw, "<%s>", field.Name); err != nil {
		return err
	}
	if err := xml.EscapeText(w.bw, []byte(field.Value)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w.bw, "</%s>\n", field.Name)
	return err
}

// Close flushes buffered output and closes the stream. The stream is
// closed even when the flush fails.
func (w *Writer) Close() error {
	flushErr := w.bw.Flush()
	return errors.Join(flushErr, w.dst.Close())
}
