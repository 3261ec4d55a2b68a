package services

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/unicode"

	"github.com/custodia-labs/clueconv/internal/core/domain"
)

// SplitResponse splits a response record into its HTTP header block and body.
// The payload is decoded as UTF-8, replacing invalid bytes. The split happens
// at the first "\n\n"; CRLF blank lines do not count. Records without one
// return domain.ErrMalformedRecord.
func SplitResponse(rec *domain.RawRecord) (*domain.HTTPResponse, error) {
	if rec == nil {
		return nil, domain.ErrInvalidInput
	}

	payload, err := unicode.UTF8.NewDecoder().Bytes(rec.Content)
	if err != nil {
		payload = []byte(strings.ToValidUTF8(string(rec.Content), "\uFFFD"))
	}
	content := string(payload)

	head, body, ok := strings.Cut(content, "\n\n")
	if !ok {
		return nil, fmt.Errorf("%w: %s has no header/body separator", domain.ErrMalformedRecord, rec.TrecID())
	}

	return &domain.HTTPResponse{
		ID:          rec.TrecID(),
		SourceURL:   rec.TargetURI(),
		HeaderBlock: head,
		Body:        body,
	}, nil
}
