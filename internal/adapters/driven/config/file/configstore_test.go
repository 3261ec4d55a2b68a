package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/clueconv/internal/core/domain"
)

const sampleConfig = `
[convert]
clueweb09_dir = "/data/ClueWeb09"
stop_word_file = "stop.txt"
lowercase = false
progress_interval = 5

[convert.report]
db = "runs.db"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clueconv.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestNewConfigStore_EmptyPath(t *testing.T) {
	store, err := NewConfigStore("")

	require.NoError(t, err)
	assert.Empty(t, store.Path())
	_, ok := store.Get("convert.out")
	assert.False(t, ok)
}

func TestNewConfigStore_MissingFile(t *testing.T) {
	_, err := NewConfigStore(filepath.Join(t.TempDir(), "missing.toml"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrResourceLoad)
}

func TestNewConfigStore_InvalidTOML(t *testing.T) {
	path := writeConfig(t, "[convert\nout = ")

	_, err := NewConfigStore(path)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrResourceLoad)
}

func TestConfigStore_Getters(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	store, err := NewConfigStore(path)
	require.NoError(t, err)

	assert.Equal(t, path, store.Path())

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"string", store.GetString("convert.clueweb09_dir"), "/data/ClueWeb09"},
		{"nested table", store.GetString("convert.report.db"), "runs.db"},
		{"int", store.GetInt("convert.progress_interval"), 5},
		{"bool", store.GetBool("convert.lowercase"), false},
		{"missing string", store.GetString("convert.out"), ""},
		{"missing int", store.GetInt("convert.out"), 0},
		{"wrong type string", store.GetString("convert.lowercase"), ""},
		{"wrong type int", store.GetInt("convert.stop_word_file"), 0},
		{"wrong type bool", store.GetBool("convert.stop_word_file"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}

	val, ok := store.Get("convert.lowercase")
	assert.True(t, ok)
	assert.Equal(t, false, val)
}

func TestConfigStore_Reload(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	store, err := NewConfigStore(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("[convert]\nout = \"docs.xml.gz\"\n"), 0600))
	require.NoError(t, store.Load())

	assert.Equal(t, "docs.xml.gz", store.GetString("convert.out"))
	assert.Equal(t, "", store.GetString("convert.clueweb09_dir"))
}

func TestFlattenMap(t *testing.T) {
	nested := map[string]any{
		"a": map[string]any{
			"b": 1,
			"c": map[string]any{"d": "x"},
		},
		"e": true,
	}

	flat := flattenMap(nested, "")

	assert.Equal(t, map[string]any{"a.b": 1, "a.c.d": "x", "e": true}, flat)
}
