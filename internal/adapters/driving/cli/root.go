// Package cli implements the clueconv command line.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/clueconv/internal/core/domain"
	"github.com/custodia-labs/clueconv/internal/core/ports/driven"
	"github.com/custodia-labs/clueconv/internal/core/ports/driving"
	"github.com/custodia-labs/clueconv/internal/logger"
)

// version is set at build time.
var version = "dev"

// ConfigLoader loads the configuration file at path. An empty path yields
// an empty configuration.
type ConfigLoader func(path string) (driven.ConfigStore, error)

// ConverterFactory assembles a converter for a validated configuration.
// The returned cleanup releases whatever the converter holds open.
type ConverterFactory func(cfg domain.ConvertConfig) (driving.Converter, func() error, error)

// HistoryOpener opens the run ledger at path.
type HistoryOpener func(path string) (driving.RunHistory, func() error, error)

// Dependencies are the services the commands run against.
type Dependencies struct {
	LoadConfig   ConfigLoader
	NewConverter ConverterFactory
	OpenHistory  HistoryOpener
}

var (
	configLoader     ConfigLoader
	converterFactory ConverterFactory
	historyOpener    HistoryOpener
)

var (
	configPath string
	verbose    bool
	quiet      bool

	// config is loaded before any command runs.
	config driven.ConfigStore
)

var rootCmd = &cobra.Command{
	Use:   "clueconv",
	Short: "Convert ClueWeb09 WARC archives to normalised XML",
	Long: `clueconv reads the ClueWeb09 record-count manifest, walks every WARC
container file it lists, and writes one XML document block per HTTP
response with the page title, body text and link text filtered against
a vocabulary and stemmed.`,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "TOML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log warnings and errors")
}

// Configure installs the services used by the commands.
func Configure(deps Dependencies) {
	configLoader = deps.LoadConfig
	converterFactory = deps.NewConverter
	historyOpener = deps.OpenHistory
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command. ctx is cancelled on interrupt.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func loadConfig(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	logger.SetQuiet(quiet)

	config = nil
	if configLoader == nil {
		if configPath != "" {
			return errors.New("configuration loading not configured")
		}
		return nil
	}

	store, err := configLoader(configPath)
	if err != nil {
		return err
	}
	config = store
	if configPath != "" {
		logger.Debug("Loaded configuration from %s", store.Path())
	}
	return nil
}

// configString returns a [convert] value from the configuration file.
func configString(key string) (string, bool) {
	if config == nil {
		return "", false
	}
	if _, ok := config.Get("convert." + key); !ok {
		return "", false
	}
	return config.GetString("convert." + key), true
}

// configInt returns a [convert] integer from the configuration file.
func configInt(key string) (int, bool) {
	if config == nil {
		return 0, false
	}
	if _, ok := config.Get("convert." + key); !ok {
		return 0, false
	}
	return config.GetInt("convert." + key), true
}

// configBool returns a [convert] boolean from the configuration file.
func configBool(key string) (bool, bool) {
	if config == nil {
		return false, false
	}
	if _, ok := config.Get("convert." + key); !ok {
		return false, false
	}
	return config.GetBool("convert." + key), true
}
