package application

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/WangYihang/Apex-Extractor/pkg/dedup"
	"github.com/WangYihang/Apex-Extractor/pkg/domain"
	"github.com/WangYihang/Apex-Extractor/pkg/domain/entity"
	"github.com/WangYihang/Apex-Extractor/pkg/input"
	"github.com/WangYihang/Apex-Extractor/pkg/metrics"
	"github.com/WangYihang/Apex-Extractor/pkg/output"
	mapset "github.com/deckarep/golang-set/v2"
)

// MetricsObserver observes extraction progress
type MetricsObserver interface {
	OnMetricsUpdate(metrics *entity.Metrics)
	AddFileResult(result entity.FileResult)
}

// Config holds the use case configuration
type Config struct {
	InputDir  string
	Extension string
	Quiet     bool
}

// ExtractUseCase orchestrates apex extraction over a directory of list files
type ExtractUseCase struct {
	config   Config
	resolver *domain.Resolver
	loader   *input.Loader
	writer   *output.Writer
	seen     *dedup.Filter

	out         io.Writer
	metrics     *entity.Metrics
	metricsLock sync.RWMutex
	observers   []MetricsObserver
}

// NewExtractUseCase creates a new extract use case
func NewExtractUseCase(
	config Config,
	resolver *domain.Resolver,
	loader *input.Loader,
	writer *output.Writer,
	seen *dedup.Filter,
) *ExtractUseCase {
	return &ExtractUseCase{
		config:   config,
		resolver: resolver,
		loader:   loader,
		writer:   writer,
		seen:     seen,
		out:      os.Stdout,
		metrics:  &entity.Metrics{},
	}
}

// SetOutput redirects the console report (used by tests)
func (uc *ExtractUseCase) SetOutput(w io.Writer) {
	uc.out = w
}

// RegisterMetricsObserver registers a metrics observer
func (uc *ExtractUseCase) RegisterMetricsObserver(observer MetricsObserver) {
	uc.observers = append(uc.observers, observer)
}

// Discover lists input files with the configured extension, sorted by name.
// A missing input directory is treated as zero files, not an error.
func (uc *ExtractUseCase) Discover() ([]string, error) {
	entries, err := os.ReadDir(uc.config.InputDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) != uc.config.Extension {
			continue
		}
		files = append(files, filepath.Join(uc.config.InputDir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// ProcessFile extracts apex domains from one list file and writes the
// sorted deduplicated result, returning the output path and unique count
func (uc *ExtractUseCase) ProcessFile(inputPath string) (string, int, error) {
	tokens, stats, err := uc.loader.Load(inputPath)
	if err != nil {
		return "", 0, err
	}

	apexes := mapset.NewSet[string]()
	for _, token := range tokens {
		apex, ok := uc.resolver.Resolve(token)
		if !ok {
			continue
		}
		apexes.Add(apex)
	}

	outputPath := uc.writer.PathFor(inputPath)
	if err := uc.writer.WriteSorted(outputPath, apexes); err != nil {
		return "", 0, err
	}

	for _, apex := range apexes.ToSlice() {
		uc.seen.TestAndAdd([]byte(apex))
	}

	count := apexes.Cardinality()
	metrics.LinesRead.Add(float64(stats.Lines))
	metrics.LinesSkipped.Add(float64(stats.Skipped))
	metrics.DomainsResolved.Add(float64(len(tokens)))
	metrics.UniqueDomains.Add(float64(count))

	uc.updateMetrics(func(m *entity.Metrics) {
		m.LinesRead += int64(stats.Lines)
		m.LinesSkipped += int64(stats.Skipped)
		m.DomainsResolved += int64(len(tokens))
		m.UniqueWritten += int64(count)
	})

	return outputPath, count, nil
}

// Execute runs the batch: discover, process each file in order, report.
// Per-file failures are logged and count as zero; they never abort the run.
func (uc *ExtractUseCase) Execute(ctx context.Context) error {
	uc.updateMetrics(func(m *entity.Metrics) {
		m.StartTime = time.Now()
	})

	files, err := uc.Discover()
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", uc.config.InputDir, err)
	}

	if len(files) == 0 {
		if !uc.config.Quiet {
			fmt.Fprintf(uc.out, "No %s files found in %s\n", uc.config.Extension, uc.config.InputDir)
		}
		return nil
	}

	if err := uc.writer.EnsureDir(); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", uc.writer.Dir(), err)
	}

	uc.updateMetrics(func(m *entity.Metrics) {
		m.TotalFiles = len(files)
	})
	uc.notifyMetricsObservers()

	if !uc.config.Quiet {
		fmt.Fprintf(uc.out, "Found %d %s files to process\n", len(files), uc.config.Extension)
		fmt.Fprintf(uc.out, "Results will be saved to: %s\n\n", uc.writer.Dir())
	}

	total := 0
	for _, inputPath := range files {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		name := filepath.Base(inputPath)
		uc.updateMetrics(func(m *entity.Metrics) {
			m.CurrentFile = name
		})
		uc.notifyMetricsObservers()

		outputPath, count, err := uc.ProcessFile(inputPath)
		total++
		metrics.FilesProcessed.Inc()

		if err != nil {
			metrics.FileErrors.Inc()
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", inputPath, err)
		}

		uc.updateMetrics(func(m *entity.Metrics) {
			m.DoneFiles++
			if err != nil {
				m.FailedFiles++
			}
			m.ApproxDistinct = uc.seen.ApproxCount()
		})

		if !uc.config.Quiet {
			fmt.Fprintf(uc.out, "✓ %s: %d unique apex domains\n", name, count)
		}

		uc.notifyFileResult(entity.FileResult{
			InputPath:   inputPath,
			OutputPath:  outputPath,
			UniqueCount: count,
			Err:         err,
		})
		uc.notifyMetricsObservers()
	}

	if !uc.config.Quiet {
		fmt.Fprint(uc.out, uc.Summary())
	}
	return nil
}

// Summary renders the final report from the current metrics snapshot
func (uc *ExtractUseCase) Summary() string {
	uc.metricsLock.RLock()
	m := *uc.metrics
	uc.metricsLock.RUnlock()

	return fmt.Sprintf("\nDone! Processed %d files\nResults saved to: %s\nApproximately %d distinct apex domains across all files\n",
		m.DoneFiles, uc.writer.Dir(), m.ApproxDistinct)
}

func (uc *ExtractUseCase) updateMetrics(update func(m *entity.Metrics)) {
	uc.metricsLock.Lock()
	update(uc.metrics)
	uc.metrics.LastUpdateTime = time.Now()
	uc.metricsLock.Unlock()
}

func (uc *ExtractUseCase) notifyMetricsObservers() {
	uc.metricsLock.RLock()
	m := *uc.metrics
	uc.metricsLock.RUnlock()

	for _, observer := range uc.observers {
		observer.OnMetricsUpdate(&m)
	}
}

func (uc *ExtractUseCase) notifyFileResult(result entity.FileResult) {
	for _, observer := range uc.observers {
		observer.AddFileResult(result)
	}
}
