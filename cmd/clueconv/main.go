// Command clueconv converts ClueWeb09 WARC archives to normalised XML.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/clueconv/internal/adapters/driven/archive/warc"
	configfile "github.com/custodia-labs/clueconv/internal/adapters/driven/config/file"
	dictfile "github.com/custodia-labs/clueconv/internal/adapters/driven/dictionary/file"
	"github.com/custodia-labs/clueconv/internal/adapters/driven/output/xml"
	"github.com/custodia-labs/clueconv/internal/adapters/driven/stemmer/snowball"
	"github.com/custodia-labs/clueconv/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/clueconv/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/clueconv/internal/adapters/driven/stream"
	"github.com/custodia-labs/clueconv/internal/adapters/driving/cli"
	"github.com/custodia-labs/clueconv/internal/core/domain"
	"github.com/custodia-labs/clueconv/internal/core/ports/driven"
	"github.com/custodia-labs/clueconv/internal/core/ports/driving"
	"github.com/custodia-labs/clueconv/internal/core/services"
	"github.com/custodia-labs/clueconv/internal/logger"
	"github.com/custodia-labs/clueconv/internal/normalisers/html"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cli.SetVersion(version)
	cli.Configure(cli.Dependencies{
		LoadConfig:   loadConfig,
		NewConverter: newConverter,
		OpenHistory:  openHistory,
	})

	err := cli.Execute(ctx)
	stop()
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (driven.ConfigStore, error) {
	store, err := configfile.NewConfigStore(path)
	if err != nil {
		return nil, err
	}
	return store, nil
}

// newConverter loads the dictionaries and assembles the conversion pipeline.
func newConverter(cfg domain.ConvertConfig) (driving.Converter, func() error, error) {
	cfg = cfg.WithDefaults()
	streams := stream.NewOpener()
	dictionaries := dictfile.NewLoader(streams)

	vocabulary, err := dictionaries.Load(cfg.CommonWordFile, cfg.Lowercase)
	if err != nil {
		return nil, nil, fmt.Errorf("common words: %w", err)
	}
	logger.Info("# of common words to use: %d", vocabulary.Len())

	stopWords, err := dictionaries.Load(cfg.StopWordFile, cfg.Lowercase)
	if err != nil {
		return nil, nil, fmt.Errorf("stop words: %w", err)
	}
	logger.Info("# of stop words to use: %d", stopWords.Len())

	stemmer, err := snowball.New(cfg.StemmerLanguage)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Stemmer: %s", stemmer.Language())

	var reports driven.ReportStore = memory.NewReportStore()
	cleanup := func() error { return nil }
	if cfg.ReportDB != "" {
		store, err := sqlite.NewStore(cfg.ReportDB)
		if err != nil {
			return nil, nil, fmt.Errorf("report database: %w", err)
		}
		reports = store.ReportStore()
		cleanup = store.Close
	}

	converter := services.NewConverter(
		cfg,
		streams,
		warc.NewOpener(streams),
		html.New(),
		services.NewTextNormaliser(stopWords, vocabulary, stemmer, cfg.Lowercase),
		xml.NewWriterFactory(streams),
		reports,
	)
	return converter, cleanup, nil
}

// openHistory opens an existing run ledger.
func openHistory(path string) (driving.RunHistory, func() error, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: report database %s does not exist", domain.ErrResourceLoad, path)
		}
		return nil, nil, fmt.Errorf("%w: %w", domain.ErrResourceLoad, err)
	}

	store, err := sqlite.NewStore(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", domain.ErrResourceLoad, err)
	}
	return services.NewRunHistory(store.ReportStore()), store.Close, nil
}
