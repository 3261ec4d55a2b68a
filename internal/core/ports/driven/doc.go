// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the converter to function:
//
//   - StreamOpener: Opens plain or compressed files for reading and writing
//   - ArchiveOpener / ArchiveReader: Sequential access to container records
//   - DictionaryLoader: Loads stop-word and vocabulary lists
//   - FieldExtractor: Turns an HTML page into text fields
//   - Stemmer: Reduces a single token to its stem
//   - EntryWriterFactory / EntryWriter: Serialises output documents
//
// # Optional Interfaces
//
// These can be nil - the converter degrades gracefully:
//
//   - ReportStore: Run ledger. Without it, counts are only logged.
//   - ConfigStore: Configuration file. Without it, flags and defaults are used.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven
