// Package domain defines the core entities of the ClueWeb converter.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawRecord: One record read from an archive container file
//   - HTTPResponse: A response record split into header block and body
//   - HTMLFields: Text fields extracted from one HTML page
//   - IndexEntry: One field-tagged output document
//   - Dictionary: An immutable word set (stop words, vocabulary)
//   - ManifestEntry, FileReport, RunSummary: Run bookkeeping
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
