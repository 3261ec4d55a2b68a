package services

import (
	"strings"

	"github.com/custodia-labs/clueconv/internal/core/domain"
	"github.com/custodia-labs/clueconv/internal/core/ports/driven"
)

// TextNormaliser filters tokens against a stop-word list and a vocabulary,
// then stems the survivors. It holds no mutable state and is safe to share.
type TextNormaliser struct {
	stopWords  *domain.Dictionary
	vocabulary *domain.Dictionary
	stemmer    driven.Stemmer
	lowercase  bool
}

// NewTextNormaliser creates a text normaliser.
// A nil stemmer leaves tokens unchanged.
func NewTextNormaliser(
	stopWords *domain.Dictionary,
	vocabulary *domain.Dictionary,
	stemmer driven.Stemmer,
	lowercase bool,
) *TextNormaliser {
	return &TextNormaliser{
		stopWords:  stopWords,
		vocabulary: vocabulary,
		stemmer:    stemmer,
		lowercase:  lowercase,
	}
}

// Filter keeps tokens that are not stop words and are in the vocabulary.
// Tokens are lower-cased first when lower-casing is enabled. Order is
// preserved and duplicates are kept.
func (n *TextNormaliser) Filter(text string) string {
	tokens := strings.Fields(text)
	kept := tokens[:0]
	for _, tok := range tokens {
		if n.lowercase {
			tok = strings.ToLower(tok)
		}
		if !n.stopWords.Contains(tok) && n.vocabulary.Contains(tok) {
			kept = append(kept, tok)
		}
	}
	return strings.Join(kept, " ")
}

// Stem stems every whitespace-separated token independently.
func (n *TextNormaliser) Stem(text string) string {
	tokens := strings.Fields(text)
	if n.stemmer != nil {
		for i, tok := range tokens {
			tokens[i] = n.stemmer.Stem(tok)
		}
	}
	return strings.Join(tokens, " ")
}

// Normalise filters text and stems the result.
// It returns both the filtered (unstemmed) and the stemmed form.
func (n *TextNormaliser) Normalise(text string) (unstemmed, stemmed string) {
	unstemmed = n.Filter(text)
	return unstemmed, n.Stem(unstemmed)
}
