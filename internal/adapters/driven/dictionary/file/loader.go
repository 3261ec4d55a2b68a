// Package file loads word lists from local files into dictionaries.
package file

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/custodia-labs/clueconv/internal/core/domain"
	"github.com/custodia-labs/clueconv/internal/core/ports/driven"
)

// Ensure Loader implements the interface.
var _ driven.DictionaryLoader = (*Loader)(nil)

// commentPrefix marks lines that are not words.
const commentPrefix = "#"

// Loader reads one word per line. Lines are trimmed; empty lines and
// comment lines are skipped.
type Loader struct {
	streams driven.StreamOpener
}

// NewLoader creates a dictionary loader. Word lists may be compressed.
func NewLoader(streams driven.StreamOpener) *Loader {
	return &Loader{streams: streams}
}

// Load reads the word list at path.
func (l *Loader) Load(path string, caseInsensitive bool) (*domain.Dictionary, error) {
	rc, err := l.streams.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: dictionary: %w", domain.ErrResourceLoad, err)
	}
	defer rc.Close()

	var words []string
	scanner := bufio.NewScanner(rc)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, commentPrefix) {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: dictionary %s: %w", domain.ErrResourceLoad, path, err)
	}

	return domain.NewDictionary(words, caseInsensitive), nil
}
