package driven

import "github.com/custodia-labs/clueconv/internal/core/domain"

// DictionaryLoader builds dictionaries from word lists.
type DictionaryLoader interface {
	// Load reads the word list at path.
	// Returns an error wrapping domain.ErrResourceLoad if it cannot be read.
	Load(path string, caseInsensitive bool) (*domain.Dictionary, error)
}
