package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/clueconv/internal/core/ports/driven"
	"github.com/custodia-labs/clueconv/internal/logger"
)

// mockConfigStore implements driven.ConfigStore over a map of dotted keys.
type mockConfigStore struct {
	values map[string]any
}

func newMockConfigStore(values map[string]any) *mockConfigStore {
	return &mockConfigStore{values: values}
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *mockConfigStore) GetString(key string) string {
	s, _ := m.values[key].(string)
	return s
}

func (m *mockConfigStore) GetInt(key string) int {
	switch v := m.values[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	}
	return 0
}

func (m *mockConfigStore) GetBool(key string) bool {
	b, _ := m.values[key].(bool)
	return b
}

func (m *mockConfigStore) Load() error  { return nil }
func (m *mockConfigStore) Path() string { return "clueconv.toml" }

// resetFlags restores every flag to its default so commands can be
// executed repeatedly within one test binary.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	cmd.SilenceUsage = false
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		logger.SetVerbose(false)
		logger.SetQuiet(false)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

// withDependencies installs deps for the duration of the test.
func withDependencies(t *testing.T, deps Dependencies) {
	t.Helper()
	oldLoader, oldFactory, oldOpener := configLoader, converterFactory, historyOpener
	Configure(deps)
	t.Cleanup(func() {
		configLoader, converterFactory, historyOpener = oldLoader, oldFactory, oldOpener
		config = nil
	})
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "clueconv", rootCmd.Use)
	assert.True(t, rootCmd.SilenceErrors)
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	for _, name := range []string{"config", "verbose", "quiet"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, "v", rootCmd.PersistentFlags().Lookup("verbose").Shorthand)
	assert.Equal(t, "q", rootCmd.PersistentFlags().Lookup("quiet").Shorthand)
}

func TestRootCmd_Subcommands(t *testing.T) {
	names := make([]string, 0, len(rootCmd.Commands()))
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "convert")
	assert.Contains(t, names, "runs")
	assert.Contains(t, names, "version")
}

func TestRootCmd_LoggingFlags(t *testing.T) {
	withDependencies(t, Dependencies{})

	_, err := execute(t, "--verbose", "version")
	require.NoError(t, err)
	assert.True(t, logger.IsVerbose())

	_, err = execute(t, "-q", "version")
	require.NoError(t, err)
	assert.True(t, logger.IsQuiet())
}

func TestRootCmd_ConfigLoaderReceivesPath(t *testing.T) {
	var gotPath string
	withDependencies(t, Dependencies{
		LoadConfig: func(path string) (driven.ConfigStore, error) {
			gotPath = path
			return newMockConfigStore(nil), nil
		},
	})

	_, err := execute(t, "--config", "/etc/clueconv.toml", "version")

	require.NoError(t, err)
	assert.Equal(t, "/etc/clueconv.toml", gotPath)
}

func TestRootCmd_ConfigLoadError(t *testing.T) {
	loadErr := errors.New("config broken")
	withDependencies(t, Dependencies{
		LoadConfig: func(string) (driven.ConfigStore, error) { return nil, loadErr },
	})

	_, err := execute(t, "--config", "bad.toml", "version")

	assert.ErrorIs(t, err, loadErr)
}

func TestRootCmd_ConfigWithoutLoader(t *testing.T) {
	withDependencies(t, Dependencies{})

	_, err := execute(t, "--config", "clueconv.toml", "version")

	assert.Error(t, err)
}
