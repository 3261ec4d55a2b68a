package driven

import "github.com/custodia-labs/clueconv/internal/core/domain"

// FieldExtractor converts an HTML page into text fields.
// Implementations must not fail on malformed HTML: fields that cannot be
// recovered are returned empty.
type FieldExtractor interface {
	// Extract parses html, resolving relative links against baseURL.
	Extract(encoding, baseURL, html string) domain.HTMLFields
}

// Stemmer reduces one token to its stem.
// It must be a pure function of its input.
type Stemmer interface {
	Stem(token string) string
}
