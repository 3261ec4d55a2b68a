package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/clueconv/internal/core/domain"
	"github.com/custodia-labs/clueconv/internal/core/ports/driving"
	"github.com/custodia-labs/clueconv/internal/logger"
)

// progressInterval is how often --progress polls the converter, unless
// progress_interval_ms is set in the [convert] table.
const progressInterval = 500 * time.Millisecond

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a ClueWeb09 collection to XML",
	Long: `Reads the record-count manifest of a ClueWeb09 collection and converts
every HTTP response in the listed WARC files into a <DOC> block with
DOCNO, title, text and linkText fields.

Values can also be set in the [convert] table of the --config file, using
the flag names with underscores (e.g. stop_word_file). Flags win.
progress_interval_ms sets how often --progress refreshes. --progress
prints nothing with --quiet.`,
	Example: `  clueconv convert --clueweb09-dir /data/ClueWeb09 --out docs.xml.gz \
    --stop-word-file stop.txt --common-word-file common.txt`,
	Args: cobra.NoArgs,
	RunE: runConvert,
}

// convertStringFlags maps string flags to their configuration fields.
var convertStringFlags = []struct {
	name  string
	usage string
	field func(*domain.ConvertConfig) *string
}{
	{"clueweb09-dir", "root directory of the ClueWeb09 collection (required)",
		func(c *domain.ConvertConfig) *string { return &c.ArchiveRoot }},
	{"out", "output file; a .gz suffix compresses it (required)",
		func(c *domain.ConvertConfig) *string { return &c.OutputPath }},
	{"stop-word-file", "stop words, one per line (required)",
		func(c *domain.ConvertConfig) *string { return &c.StopWordFile }},
	{"common-word-file", "vocabulary to keep, one word per line (required)",
		func(c *domain.ConvertConfig) *string { return &c.CommonWordFile }},
	{"manifest", "record-count manifest (default <clueweb09-dir>/record_counts/<archive-dir>_counts.txt)",
		func(c *domain.ConvertConfig) *string { return &c.ManifestPath }},
	{"archive-dir", "directory under the root holding the WARC files",
		func(c *domain.ConvertConfig) *string { return &c.ArchiveDir }},
	{"stemmer", "stemmer language, or \"none\"",
		func(c *domain.ConvertConfig) *string { return &c.StemmerLanguage }},
	{"encoding", "character encoding of HTML bodies",
		func(c *domain.ConvertConfig) *string { return &c.Encoding }},
	{"report-db", "SQLite database recording runs and per-file counts",
		func(c *domain.ConvertConfig) *string { return &c.ReportDB }},
}

func init() {
	defaults := domain.DefaultConvertConfig()
	for _, f := range convertStringFlags {
		convertCmd.Flags().String(f.name, *f.field(&defaults), f.usage)
	}
	convertCmd.Flags().Bool("no-lowercase", false, "keep token case when filtering")
	convertCmd.Flags().Bool("progress", false, "print progress while converting")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, _ []string) error {
	cfg := resolveConvertConfig(cmd)
	if err := cfg.Validate(); err != nil {
		return err
	}
	// Past validation, errors are not about usage.
	cmd.SilenceUsage = true

	if converterFactory == nil {
		return errors.New("converter not configured")
	}

	converter, cleanup, err := converterFactory(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cleanup == nil {
			return
		}
		if err := cleanup(); err != nil {
			logger.Warn("Cleanup failed: %v", err)
		}
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var run *domain.RunSummary
	if showProgress, _ := cmd.Flags().GetBool("progress"); showProgress && !logger.IsQuiet() {
		run, err = convertWithProgress(ctx, cmd, converter)
	} else {
		run, err = converter.Convert(ctx)
	}

	if run != nil {
		printRun(cmd, run)
	}
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}
	return nil
}

// resolveConvertConfig layers defaults, the configuration file and flags.
func resolveConvertConfig(cmd *cobra.Command) domain.ConvertConfig {
	cfg := domain.DefaultConvertConfig()

	for _, f := range convertStringFlags {
		field := f.field(&cfg)
		if v, ok := configString(strings.ReplaceAll(f.name, "-", "_")); ok {
			*field = v
		}
		if cmd.Flags().Changed(f.name) {
			*field, _ = cmd.Flags().GetString(f.name)
		}
	}

	if v, ok := configBool("lowercase"); ok {
		cfg.Lowercase = v
	}
	if cmd.Flags().Changed("no-lowercase") {
		noLowercase, _ := cmd.Flags().GetBool("no-lowercase")
		cfg.Lowercase = !noLowercase
	}

	return cfg
}

// convertWithProgress runs the conversion while displaying progress updates.
func convertWithProgress(
	ctx context.Context,
	cmd *cobra.Command,
	converter driving.Converter,
) (*domain.RunSummary, error) {
	type result struct {
		run *domain.RunSummary
		err error
	}

	// Start conversion in goroutine
	done := make(chan result, 1)
	go func() {
		run, err := converter.Convert(ctx)
		done <- result{run: run, err: err}
	}()

	ticker := time.NewTicker(progressEvery())
	defer ticker.Stop()

	// Debug lines would overwrite a carriage-return status line.
	lineEnd := ""
	if logger.IsVerbose() {
		lineEnd = "\n"
	}

	lastCount := -1
	for {
		select {
		case res := <-done:
			status := converter.Status()
			if lastCount >= 0 {
				cmd.Printf("\rProcessed %d documents from %d files\n",
					status.DocumentsEmitted, status.FilesProcessed)
			}
			return res.run, res.err
		case <-ticker.C:
			status := converter.Status()
			if status.DocumentsEmitted != lastCount {
				cmd.Printf("\rProcessing %s... %d documents"+lineEnd,
					filepath.Base(status.CurrentFile), status.DocumentsEmitted)
				lastCount = status.DocumentsEmitted
			}
		}
	}
}

// progressEvery returns the --progress polling interval.
func progressEvery() time.Duration {
	if ms, ok := configInt("progress_interval_ms"); ok && ms > 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return progressInterval
}
