// Package warc reads records from WARC container files.
//
// ClueWeb09 ships WARC/0.18 files: each record is a "WARC/<version>" line,
// header lines up to a blank line, then exactly Content-Length bytes of
// content. Anything between records (usually a blank line pair) is skipped.
// The reader does not attempt recovery: a truncated or inconsistent record
// ends the stream.
package warc
