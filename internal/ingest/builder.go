package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"liner/internal/catalog"
	"liner/internal/config"
	"liner/internal/derive"
	"liner/internal/logging"
	"liner/internal/record"
	"liner/internal/search"
	"liner/internal/track"
)

// Issue is one record that failed validation during a lenient build.
type Issue struct {
	Record string
	Err    error
}

// Report summarizes one build for the end-of-build summary. The build ID
// only appears in logs and reports, never in exported artifacts, which must
// be byte-identical across runs.
type Report struct {
	BuildID  string
	Source   string
	Mode     string
	Parsed   int
	Skipped  []Issue
	Warnings []derive.Warning
	Elapsed  time.Duration
}

// Result carries the outputs of one build.
type Result struct {
	Catalog *catalog.Catalog
	Index   *search.Index
	Report  *Report
}

// Builder runs the ingest pipeline for one configuration.
type Builder struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewBuilder returns a Builder. A nil logger is replaced with a no-op one.
func NewBuilder(cfg *config.Config, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Builder{cfg: cfg, logger: logger}
}

// parsed is one record's outcome, slotted by input position so the join
// preserves input order regardless of goroutine scheduling.
type parsed struct {
	name     string
	track    *track.Track
	err      error
	warnings []derive.Warning
}

// Build runs the full pipeline over the configured source directory.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	start := time.Now()
	report := &Report{
		BuildID: uuid.NewString(),
		Source:  b.cfg.Paths.SourceDir,
		Mode:    b.cfg.Build.Mode,
	}

	names, err := listRecords(b.cfg.Paths.SourceDir)
	if err != nil {
		return nil, err
	}
	b.logger.Info("building catalog",
		"build_id", report.BuildID,
		"source", b.cfg.Paths.SourceDir,
		"records", len(names),
		"mode", report.Mode,
	)

	results, err := b.parseAll(ctx, names)
	if err != nil {
		return nil, err
	}

	cat := catalog.New()
	for _, res := range results {
		if res.err != nil {
			if b.cfg.Build.Mode == config.ModeStrict {
				return nil, res.err
			}
			b.logger.Warn("skipping malformed record", "record", res.name, "error", res.err)
			report.Skipped = append(report.Skipped, Issue{Record: res.name, Err: res.err})
			continue
		}
		for _, warning := range res.warnings {
			b.logger.Warn("derived field drift", "record", res.name, "field", warning.Field)
		}
		report.Warnings = append(report.Warnings, res.warnings...)
		if err := cat.Insert(res.track); err != nil {
			// DuplicateURL corrupts the uniqueness invariant; halt
			// regardless of mode.
			return nil, err
		}
		report.Parsed++
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	idx := search.Build(cat)
	report.Elapsed = time.Since(start)
	b.logger.Info("catalog ready",
		"build_id", report.BuildID,
		"tracks", cat.Len(),
		"tokens", idx.TokenCount(),
		"skipped", len(report.Skipped),
	)

	return &Result{Catalog: cat, Index: idx, Report: report}, nil
}

// parseAll reads and validates every record concurrently. Parse failures are
// captured per slot rather than failing the group so lenient mode can keep
// going; only I/O setup errors abort here.
func (b *Builder) parseAll(ctx context.Context, names []string) ([]parsed, error) {
	workers := b.cfg.Build.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]parsed, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = b.parseOne(name)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (b *Builder) parseOne(name string) parsed {
	res := parsed{name: name}

	data, err := os.ReadFile(filepath.Join(b.cfg.Paths.SourceDir, name))
	if err != nil {
		res.err = fmt.Errorf("read record %s: %w", name, err)
		return res
	}

	trk, err := record.Parse(name, data)
	if err != nil {
		res.err = err
		return res
	}

	warnings, err := derive.Apply(name, trk)
	if err != nil {
		res.err = err
		return res
	}

	res.track = trk
	res.warnings = warnings
	return res
}

// listRecords returns the markdown record file names in the source
// directory, sorted by name. Subdirectories and dotfiles are ignored.
func listRecords(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read source directory: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if filepath.Ext(name) != ".md" {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}
