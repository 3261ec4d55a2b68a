// Package snowball adapts the Snowball stemming algorithms to driven.Stemmer.
package snowball

import (
	"fmt"
	"strings"

	"github.com/kljensen/snowball"

	"github.com/custodia-labs/clueconv/internal/core/domain"
	"github.com/custodia-labs/clueconv/internal/core/ports/driven"
)

// Ensure Stemmer implements the interface.
var _ driven.Stemmer = (*Stemmer)(nil)

// LanguageNone disables stemming.
const LanguageNone = "none"

// Stemmer stems single tokens for one language. Stateless and safe to share.
type Stemmer struct {
	language string
}

// New creates a stemmer for language, e.g. "english".
// Languages the library does not know return domain.ErrUnsupportedType.
func New(language string) (*Stemmer, error) {
	language = strings.ToLower(strings.TrimSpace(language))
	if language == LanguageNone {
		return &Stemmer{language: LanguageNone}, nil
	}

	if _, err := snowball.Stem("running", language, true); err != nil {
		return nil, fmt.Errorf("%w: stemmer language %q", domain.ErrUnsupportedType, language)
	}
	return &Stemmer{language: language}, nil
}

// Language returns the configured language.
func (s *Stemmer) Language() string {
	return s.language
}

// Stem returns the stem of token. Stop words are stemmed as well, so
// equal inputs always give equal outputs.
func (s *Stemmer) Stem(token string) string {
	if s.language == LanguageNone || token == "" {
		return token
	}

	stemmed, err := snowball.Stem(token, s.language, true)
	if err != nil || stemmed == "" {
		return token
	}
	return stemmed
}
