package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/clueconv/internal/core/domain"
	"github.com/custodia-labs/clueconv/internal/logger"
)

// timeLayout formats run timestamps.
const timeLayout = "2006-01-02 15:04:05"

var runsReportDB string

var runsCmd = &cobra.Command{
	Use:   "runs [run-id]",
	Short: "Show past conversion runs",
	Long: `Lists the conversion runs recorded in the report database.
If a run ID is provided, shows that run with the record counts of every
container file, flagging files whose count disagrees with the manifest.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().StringVar(&runsReportDB, "report-db", "", "SQLite database written by convert --report-db")
	rootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command, args []string) error {
	path := runsReportDB
	if !cmd.Flags().Changed("report-db") {
		if v, ok := configString("report_db"); ok {
			path = v
		}
	}
	if path == "" {
		return fmt.Errorf("%w: specify --report-db", domain.ErrUsage)
	}
	cmd.SilenceUsage = true

	if historyOpener == nil {
		return errors.New("run history not configured")
	}

	history, closeHistory, err := historyOpener(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeHistory == nil {
			return
		}
		if err := closeHistory(); err != nil {
			logger.Warn("Failed to close %s: %v", path, err)
		}
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if len(args) == 1 {
		run, err := history.Get(ctx, args[0])
		if err != nil {
			return err
		}
		printRun(cmd, run)
		printFileReports(cmd, run.Files)
		return nil
	}

	runs, err := history.List(ctx)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		cmd.Println("No runs recorded.")
		return nil
	}

	cmd.Println(titleStyle.Render("Runs:"))
	for i := range runs {
		run := &runs[i]
		cmd.Printf("  %s  %s  %s  %s\n",
			run.ID,
			statusStyle(run.Status == domain.RunFailed, false).Render(fmt.Sprintf("%-9s", run.Status)),
			run.StartedAt.Local().Format(timeLayout),
			mutedStyle.Render(run.OutputPath))
	}
	return nil
}

// printRun writes a run's summary block.
func printRun(cmd *cobra.Command, run *domain.RunSummary) {
	failed := run.Status == domain.RunFailed
	mismatches := run.Mismatches()

	cmd.Println(statusStyle(failed, mismatches > 0).Render(fmt.Sprintf("Run %s: %s", run.ID, run.Status)))
	cmd.Printf("  Output:     %s\n", run.OutputPath)
	cmd.Printf("  Started:    %s\n", run.StartedAt.Local().Format(timeLayout))
	if !run.FinishedAt.IsZero() {
		cmd.Printf("  Duration:   %s\n", run.FinishedAt.Sub(run.StartedAt).Round(time.Millisecond))
	}
	cmd.Printf("  Files:      %d\n", len(run.Files))
	cmd.Printf("  Documents:  %d\n", run.Emitted())
	if mismatches > 0 {
		cmd.Println(warningStyle.Render(fmt.Sprintf("  Mismatches: %d", mismatches)))
	} else {
		cmd.Printf("  Mismatches: %d\n", mismatches)
	}
	if run.Error != "" {
		cmd.Println(errorStyle.Render("  Error:      " + run.Error))
	}
}

// printFileReports writes one line per container file.
func printFileReports(cmd *cobra.Command, files []domain.FileReport) {
	if len(files) == 0 {
		return
	}
	cmd.Println()
	cmd.Println(titleStyle.Render("Files:"))
	for _, f := range files {
		line := fmt.Sprintf("  %-32s expected %6d  emitted %6d  skipped %4d  records %6d",
			f.Path, f.Expected, f.Emitted, f.Skipped, f.Records)
		if f.Mismatch() {
			line = warningStyle.Render(line + "  MISMATCH")
		}
		cmd.Println(line)
	}
}
