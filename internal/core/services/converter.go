package services

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/clueconv/internal/core/domain"
	"github.com/custodia-labs/clueconv/internal/core/ports/driven"
	"github.com/custodia-labs/clueconv/internal/core/ports/driving"
	"github.com/custodia-labs/clueconv/internal/logger"
)

// Ensure Converter implements the interface.
var _ driving.Converter = (*Converter)(nil)

// maxManifestLine bounds a single manifest line.
const maxManifestLine = 1 << 20

// Converter drives one conversion run: manifest, container files, records, documents.
// Processing is strictly sequential; only Status may be called concurrently.
type Converter struct {
	cfg        domain.ConvertConfig
	streams    driven.StreamOpener
	archives   driven.ArchiveOpener
	extractor  driven.FieldExtractor
	normaliser *TextNormaliser
	sinks      driven.EntryWriterFactory
	reports    driven.ReportStore

	progress *rate.Sometimes

	// Status tracking
	mu     sync.RWMutex
	status driving.ConvertStatus
}

// NewConverter creates a converter.
// The reports store is optional - if nil, counts are only logged.
func NewConverter(
	cfg domain.ConvertConfig,
	streams driven.StreamOpener,
	archives driven.ArchiveOpener,
	extractor driven.FieldExtractor,
	normaliser *TextNormaliser,
	sinks driven.EntryWriterFactory,
	reports driven.ReportStore,
) *Converter {
	return &Converter{
		cfg:        cfg.WithDefaults(),
		streams:    streams,
		archives:   archives,
		extractor:  extractor,
		normaliser: normaliser,
		sinks:      sinks,
		reports:    reports,
		progress:   &rate.Sometimes{Interval: 10 * time.Second},
	}
}

// Convert processes every container file listed in the manifest.
// The output sink is closed on every return path, including a panic in a
// driven adapter, which fails the run instead of crashing the process.
func (c *Converter) Convert(ctx context.Context) (run *domain.RunSummary, err error) {
	run = &domain.RunSummary{
		ID:         uuid.New().String(),
		OutputPath: c.cfg.OutputPath,
		Status:     domain.RunRunning,
		StartedAt:  time.Now(),
	}
	c.setStatus(driving.ConvertStatus{RunID: run.ID, State: domain.StateReadingManifest})
	c.startRun(ctx, run)

	sink, err := c.sinks.Create(c.cfg.OutputPath)
	if err != nil {
		err = fmt.Errorf("open output %s: %w", c.cfg.OutputPath, err)
		c.finishRun(ctx, run, err)
		return run, err
	}
	emitter := NewEmitter(sink)

	defer func() {
		if r := recover(); r != nil {
			err = errors.Join(err, fmt.Errorf("conversion aborted: %v", r))
		}
		if closeErr := emitter.Close(); closeErr != nil {
			logger.Error("Error closing output stream: %v", closeErr)
			err = errors.Join(err, closeErr)
		}
		c.finishRun(ctx, run, err)
	}()

	return run, c.processManifest(ctx, run, emitter)
}

// Status returns a snapshot of the conversion progress.
func (c *Converter) Status() driving.ConvertStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

// processManifest reads the manifest line by line and converts each listed file.
func (c *Converter) processManifest(ctx context.Context, run *domain.RunSummary, emitter *Emitter) error {
	manifest, err := c.streams.OpenReader(c.cfg.ManifestPath)
	if err != nil {
		return fmt.Errorf("%w: manifest %s: %w", domain.ErrResourceLoad, c.cfg.ManifestPath, err)
	}
	defer manifest.Close()

	validator := NewCountValidator()
	scanner := bufio.NewScanner(manifest)
	scanner.Buffer(make([]byte, 0, 64*1024), maxManifestLine)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := ctx.Err(); err != nil {
			return err
		}

		entry, ok, err := domain.ParseManifestLine(lineNo, scanner.Text())
		if err != nil {
			logger.Error("Invalid line %q in file %s", scanner.Text(), c.cfg.ManifestPath)
			return fmt.Errorf("manifest %s: %w", c.cfg.ManifestPath, err)
		}
		if !ok {
			continue
		}

		containerPath := c.cfg.ContainerPath(entry)
		report, err := c.processFile(ctx, containerPath, entry, emitter)
		if err != nil {
			return err
		}

		// Mismatches are reported, never fatal.
		_ = validator.Check(containerPath, report)

		run.Files = append(run.Files, report)
		c.fileDone(validator.Mismatches())
		c.saveFileReport(ctx, run.ID, report)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: manifest %s: %w", domain.ErrResourceLoad, c.cfg.ManifestPath, err)
	}
	return nil
}

// processFile converts all response records of one container file.
func (c *Converter) processFile(
	ctx context.Context,
	containerPath string,
	entry domain.ManifestEntry,
	emitter *Emitter,
) (domain.FileReport, error) {
	report := domain.FileReport{Path: entry.Path, Expected: entry.Expected}

	logger.Info("Started processing file: %s expecting: %d records", containerPath, entry.Expected)
	c.setState(domain.StateProcessingFile, containerPath)

	reader, err := c.archives.Open(containerPath)
	if err != nil {
		return report, fmt.Errorf("open container %s: %w", containerPath, err)
	}
	defer reader.Close()

	c.setState(domain.StateReadingRecords, containerPath)

	for {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		rec, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return report, fmt.Errorf("read container %s: %w", containerPath, err)
		}

		report.Records++
		if rec.Type != domain.RecordTypeResponse {
			continue
		}
		report.Responses++

		emitted, err := c.convertRecord(rec, emitter)
		if err != nil {
			return report, err
		}
		if emitted {
			report.Emitted++
			c.documentEmitted()
		} else {
			report.Skipped++
		}

		c.progress.Do(func() {
			logger.Debug("%s: %d records read, %d documents emitted", containerPath, report.Records, report.Emitted)
		})
	}

	c.setState(domain.StateReadingManifest, "")
	return report, nil
}

// convertRecord runs split, extract, normalise and emit for one response record.
// Records without a header/body split are skipped and return false.
func (c *Converter) convertRecord(rec *domain.RawRecord, emitter *Emitter) (bool, error) {
	resp, err := SplitResponse(rec)
	if err != nil {
		logger.Debug("Skipping record: %v", err)
		return false, nil
	}

	baseHref := NormaliseURL(resp.SourceURL)
	fields := c.extractor.Extract(c.cfg.Encoding, baseHref, resp.Body)

	// All-text is extracted but deliberately not indexed.
	_, title := c.normaliser.Normalise(fields.Title)
	_, body := c.normaliser.Normalise(fields.BodyText)
	_, linkText := c.normaliser.Normalise(fields.LinkText)

	if err := emitter.Emit(resp.ID, title, body, linkText); err != nil {
		return false, err
	}
	return true, nil
}

// startRun records the run in the report store, if any.
func (c *Converter) startRun(ctx context.Context, run *domain.RunSummary) {
	if c.reports == nil {
		return
	}
	if err := c.reports.StartRun(ctx, *run); err != nil {
		logger.Warn("Failed to record run %s: %v", run.ID, err)
	}
}

// saveFileReport stores a file report, if a report store is configured.
func (c *Converter) saveFileReport(ctx context.Context, runID string, report domain.FileReport) {
	if c.reports == nil {
		return
	}
	if err := c.reports.SaveFileReport(ctx, runID, report); err != nil {
		logger.Warn("Failed to record report for %s: %v", report.Path, err)
	}
}

// finishRun sets the final run status and stores it.
func (c *Converter) finishRun(ctx context.Context, run *domain.RunSummary, err error) {
	run.FinishedAt = time.Now()
	state := domain.StateDone
	run.Status = domain.RunSucceeded
	if err != nil {
		state = domain.StateFailed
		run.Status = domain.RunFailed
		run.Error = err.Error()
	}
	c.setState(state, "")

	if c.reports == nil {
		return
	}
	// The run must be recorded even when ctx was cancelled.
	if storeErr := c.reports.FinishRun(context.WithoutCancel(ctx), *run); storeErr != nil {
		logger.Warn("Failed to record run %s: %v", run.ID, storeErr)
	}
}

// setStatus replaces the status snapshot.
func (c *Converter) setStatus(status driving.ConvertStatus) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = status
}

// setState moves the state machine.
func (c *Converter) setState(state domain.RunState, currentFile string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status.State = state
	c.status.CurrentFile = currentFile
}

// documentEmitted increments the emitted document count.
func (c *Converter) documentEmitted() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status.DocumentsEmitted++
}

// fileDone increments the processed file count.
func (c *Converter) fileDone(mismatches int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status.FilesProcessed++
	c.status.Mismatches = mismatches
}
