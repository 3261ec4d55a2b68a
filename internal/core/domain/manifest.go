package domain

import (
	"strconv"
	"strings"
)

// ManifestRecordMarker prefixes every container path in a manifest.
const ManifestRecordMarker = "*./"

// ManifestEntry declares how many response records a container file holds.
type ManifestEntry struct {
	// Path is the container path relative to the archive directory.
	Path string

	// Expected is the declared record count.
	Expected int

	// Line is the 1-based manifest line number.
	Line int
}

// ParseManifestLine parses one "<*./path> <count>" manifest line.
// Blank lines return ok=false and no error.
func ParseManifestLine(lineNo int, line string) (entry ManifestEntry, ok bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ManifestEntry{}, false, nil
	}

	first := fields[0]
	if !strings.HasPrefix(first, ManifestRecordMarker) {
		return ManifestEntry{}, false, &ManifestLineError{
			Line:   lineNo,
			Text:   line,
			Reason: "path must start with " + ManifestRecordMarker,
		}
	}
	if len(fields) < 2 {
		return ManifestEntry{}, false, &ManifestLineError{Line: lineNo, Text: line, Reason: "missing record count"}
	}

	expected, convErr := strconv.Atoi(fields[1])
	if convErr != nil || expected < 0 {
		return ManifestEntry{}, false, &ManifestLineError{Line: lineNo, Text: line, Reason: "invalid record count"}
	}

	path := strings.TrimPrefix(first, ManifestRecordMarker)
	if path == "" {
		return ManifestEntry{}, false, &ManifestLineError{Line: lineNo, Text: line, Reason: "empty path"}
	}

	return ManifestEntry{Path: path, Expected: expected, Line: lineNo}, true, nil
}
