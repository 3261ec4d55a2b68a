package domain

import (
	"fmt"
	"path/filepath"
)

// Defaults for a ClueWeb09 category B layout.
const (
	DefaultArchiveDir      = "ClueWeb09_English_1"
	DefaultEncoding        = "UTF-8"
	DefaultStemmerLanguage = "english"
)

// ConvertConfig holds everything a conversion run needs.
type ConvertConfig struct {
	// ArchiveRoot is the root directory of the crawl. Required.
	ArchiveRoot string

	// OutputPath is the output file; a ".gz" suffix compresses it. Required.
	OutputPath string

	// StopWordFile lists words removed during filtering. Required.
	StopWordFile string

	// CommonWordFile lists the vocabulary kept during filtering. Required.
	CommonWordFile string

	// ManifestPath overrides the default record-count manifest location.
	ManifestPath string

	// ArchiveDir is the directory under ArchiveRoot holding container files.
	ArchiveDir string

	// Lowercase folds tokens and dictionaries to lower case.
	Lowercase bool

	// Encoding is the charset assumed for HTML bodies.
	Encoding string

	// StemmerLanguage selects the stemming algorithm ("none" disables stemming).
	StemmerLanguage string

	// ReportDB is an optional run ledger database path.
	ReportDB string
}

// DefaultConvertConfig returns a configuration with defaults and no paths.
func DefaultConvertConfig() ConvertConfig {
	return ConvertConfig{
		ArchiveDir:      DefaultArchiveDir,
		Lowercase:       true,
		Encoding:        DefaultEncoding,
		StemmerLanguage: DefaultStemmerLanguage,
	}
}

// WithDefaults fills empty optional values.
func (c ConvertConfig) WithDefaults() ConvertConfig {
	if c.ArchiveDir == "" {
		c.ArchiveDir = DefaultArchiveDir
	}
	if c.Encoding == "" {
		c.Encoding = DefaultEncoding
	}
	if c.StemmerLanguage == "" {
		c.StemmerLanguage = DefaultStemmerLanguage
	}
	if c.ManifestPath == "" && c.ArchiveRoot != "" {
		c.ManifestPath = filepath.Join(c.ArchiveRoot, "record_counts", c.ArchiveDir+"_counts.txt")
	}
	return c
}

// Validate checks that all required values are present.
func (c ConvertConfig) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"clueweb09-dir", c.ArchiveRoot},
		{"out", c.OutputPath},
		{"stop-word-file", c.StopWordFile},
		{"common-word-file", c.CommonWordFile},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%w: specify --%s", ErrUsage, r.name)
		}
	}
	return nil
}

// ContainerPath returns the absolute location of a manifest entry's container file.
func (c ConvertConfig) ContainerPath(entry ManifestEntry) string {
	return filepath.Join(c.ArchiveRoot, c.ArchiveDir, filepath.FromSlash(entry.Path))
}
