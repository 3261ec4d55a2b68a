package domain

import "strings"

// RecordTypeResponse is the only record type the converter processes.
const RecordTypeResponse = "response"

// Well-known archive record header names.
const (
	HeaderRecordType    = "WARC-Type"
	HeaderTrecID        = "WARC-TREC-ID"
	HeaderTargetURI     = "WARC-Target-URI"
	HeaderContentLength = "Content-Length"
)

// RawRecord is one unit read from an archive container file.
// It is discarded once the current document has been processed.
type RawRecord struct {
	// Version is the record version line (e.g. "WARC/0.18").
	Version string

	// Type is the record type tag ("warcinfo", "response", ...).
	Type string

	// Headers holds the record headers keyed by lower-cased name.
	Headers map[string]string

	// Content is the record payload.
	Content []byte
}

// NewRawRecord creates an empty record with the given version line.
func NewRawRecord(version string) *RawRecord {
	return &RawRecord{
		Version: version,
		Headers: make(map[string]string),
	}
}

// SetHeader stores a header value. Header names are case-insensitive.
func (r *RawRecord) SetHeader(name, value string) {
	if r.Headers == nil {
		r.Headers = make(map[string]string)
	}
	r.Headers[strings.ToLower(name)] = value
	if strings.EqualFold(name, HeaderRecordType) {
		r.Type = value
	}
}

// Header returns the value of a header, or "" when absent.
func (r *RawRecord) Header(name string) string {
	return r.Headers[strings.ToLower(name)]
}

// TrecID returns the crawl target identifier.
func (r *RawRecord) TrecID() string {
	return r.Header(HeaderTrecID)
}

// TargetURI returns the crawled URL.
func (r *RawRecord) TargetURI() string {
	return r.Header(HeaderTargetURI)
}

// HTTPResponse is a response record split at the first blank line.
type HTTPResponse struct {
	// ID is the crawl target identifier.
	ID string

	// SourceURL is the crawled URL as recorded, before normalisation.
	SourceURL string

	// HeaderBlock is the status line plus HTTP headers.
	HeaderBlock string

	// Body is the payload after the blank line.
	Body string
}
