package domain

import "strings"

// Dictionary is an immutable word set.
// It is safe for concurrent reads.
type Dictionary struct {
	words           map[string]struct{}
	caseInsensitive bool
}

// NewDictionary builds a dictionary from words.
// When caseInsensitive is set, words are lower-cased on insert and on lookup.
func NewDictionary(words []string, caseInsensitive bool) *Dictionary {
	d := &Dictionary{
		words:           make(map[string]struct{}, len(words)),
		caseInsensitive: caseInsensitive,
	}
	for _, w := range words {
		d.words[d.fold(w)] = struct{}{}
	}
	return d
}

// Contains reports whether word is in the dictionary.
func (d *Dictionary) Contains(word string) bool {
	if d == nil {
		return false
	}
	_, ok := d.words[d.fold(word)]
	return ok
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.words)
}

func (d *Dictionary) fold(w string) string {
	if d.caseInsensitive {
		return strings.ToLower(w)
	}
	return w
}
