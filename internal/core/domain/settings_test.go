package domain

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() ConvertConfig {
	cfg := DefaultConvertConfig()
	cfg.ArchiveRoot = "/data/clueweb09"
	cfg.OutputPath = "/out/docs.xml.gz"
	cfg.StopWordFile = "/dict/stopwords.txt"
	cfg.CommonWordFile = "/dict/common.txt"
	return cfg
}

func TestDefaultConvertConfig(t *testing.T) {
	cfg := DefaultConvertConfig()

	assert.True(t, cfg.Lowercase)
	assert.Equal(t, "ClueWeb09_English_1", cfg.ArchiveDir)
	assert.Equal(t, "UTF-8", cfg.Encoding)
	assert.Equal(t, "english", cfg.StemmerLanguage)
	assert.Empty(t, cfg.ReportDB)
}

func TestConvertConfig_Validate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*ConvertConfig)
		flag   string
	}{
		{"no root", func(c *ConvertConfig) { c.ArchiveRoot = "" }, "--clueweb09-dir"},
		{"no output", func(c *ConvertConfig) { c.OutputPath = "" }, "--out"},
		{"no stop words", func(c *ConvertConfig) { c.StopWordFile = "" }, "--stop-word-file"},
		{"no common words", func(c *ConvertConfig) { c.CommonWordFile = "" }, "--common-word-file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUsage))
			assert.Contains(t, err.Error(), tt.flag)
		})
	}
}

func TestConvertConfig_WithDefaults(t *testing.T) {
	cfg := ConvertConfig{ArchiveRoot: "/data/cw"}.WithDefaults()

	assert.Equal(t, DefaultArchiveDir, cfg.ArchiveDir)
	assert.Equal(t, DefaultEncoding, cfg.Encoding)
	assert.Equal(t, DefaultStemmerLanguage, cfg.StemmerLanguage)
	assert.Equal(t, filepath.Join("/data/cw", "record_counts", "ClueWeb09_English_1_counts.txt"), cfg.ManifestPath)
}

func TestConvertConfig_WithDefaultsKeepsOverrides(t *testing.T) {
	cfg := ConvertConfig{
		ArchiveRoot:  "/data/cw",
		ArchiveDir:   "ClueWeb09_English_2",
		ManifestPath: "/elsewhere/counts.txt",
	}.WithDefaults()

	assert.Equal(t, "ClueWeb09_English_2", cfg.ArchiveDir)
	assert.Equal(t, "/elsewhere/counts.txt", cfg.ManifestPath)
}

func TestConvertConfig_ContainerPath(t *testing.T) {
	cfg := validConfig()
	entry := ManifestEntry{Path: "en0000/00.warc.gz", Expected: 1}

	assert.Equal(t,
		filepath.Join("/data/clueweb09", "ClueWeb09_English_1", "en0000", "00.warc.gz"),
		cfg.ContainerPath(entry))
}
