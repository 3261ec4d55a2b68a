// Package normalisers holds the content extractors that turn raw crawled
// payloads into indexable text. Each format lives in its own subpackage;
// html is the only format ClueWeb09 responses need.
package normalisers
