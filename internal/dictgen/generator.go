package dictgen

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dictgen/internal/domain"
	"github.com/heartmarshall/dictgen/pkg/ctxutil"
)

// Source yields raw dictionary records one at a time. Each stops at the first
// error returned by fn.
type Source interface {
	Name() string
	Each(ctx context.Context, fn func(record string) error) error
}

// Emitter renders a table as the source text of a target language.
type Emitter interface {
	Plain(w io.Writer, t domain.Table) error
	Padded(w io.Writer, t domain.PaddedTable) error
}

// Options controls a single generator run.
type Options struct {
	Mode       domain.Mode
	OutputPath string
	FillGaps   bool
	DryRun     bool
}

// Stats holds the outcome of a generator run.
type Stats struct {
	RunID        uuid.UUID
	Collect      CollectStats
	Groups       int
	MaxGroupSize int
	Rows         int // padded mode only
	Width        int // padded mode only
	Bytes        int
	Written      bool
	Duration     time.Duration
}

// Generator reads a source, builds the length table for one mode and writes
// it through an emitter.
type Generator struct {
	log     *slog.Logger
	src     Source
	emitter Emitter
	opts    Options
}

// NewGenerator creates a new Generator.
func NewGenerator(log *slog.Logger, src Source, emitter Emitter, opts Options) *Generator {
	return &Generator{
		log:     log,
		src:     src,
		emitter: emitter,
		opts:    opts,
	}
}

// Run executes one generation. The output file is only replaced after the
// whole table has been rendered. A run ID already present in ctx is reused.
func (g *Generator) Run(ctx context.Context) (Stats, error) {
	start := time.Now()
	runID, ok := ctxutil.RunIDFromCtx(ctx)
	if !ok {
		runID = uuid.New()
		ctx = ctxutil.WithRunID(ctx, runID)
	}
	stats := Stats{RunID: runID}
	log := g.log.With(slog.String("run_id", stats.RunID.String()))

	if !g.opts.Mode.IsValid() {
		return stats, fmt.Errorf("%w: %q", domain.ErrUnknownMode, g.opts.Mode)
	}

	log.Info("generation started",
		slog.String("source", g.src.Name()),
		slog.String("mode", g.opts.Mode.String()),
		slog.Bool("fill_gaps", g.opts.FillGaps),
		slog.Bool("dry_run", g.opts.DryRun),
	)

	collector := NewCollector(g.opts.Mode)
	err := g.src.Each(ctx, func(record string) error {
		collector.Add(record)
		return nil
	})
	stats.Collect = collector.Stats()
	if err != nil {
		return stats, fmt.Errorf("read source %s: %w", g.src.Name(), err)
	}

	table := collector.Table()
	if g.opts.FillGaps {
		table = FillGaps(table)
	}
	stats.Groups = len(table.Groups)
	stats.MaxGroupSize = table.MaxGroupSize()

	log.Info("source collected",
		slog.Int("lines", stats.Collect.Lines),
		slog.Int("kept", stats.Collect.Kept),
		slog.Int("rejected", stats.Collect.Rejected),
		slog.Int("groups", stats.Groups),
		slog.Int("max_group_size", stats.MaxGroupSize),
	)

	var buf bytes.Buffer
	switch g.opts.Mode {
	case domain.ModePlain:
		if err := g.emitter.Plain(&buf, table); err != nil {
			return stats, fmt.Errorf("emit plain table: %w", err)
		}
	case domain.ModePadded:
		padded, err := BuildPadded(table)
		if err != nil {
			return stats, fmt.Errorf("build padded table: %w", err)
		}
		stats.Rows = len(padded.Rows)
		stats.Width = padded.Width
		if stats.Rows == 0 {
			log.Warn("padded table has no rows after dropping the smallest group")
		}
		if err := g.emitter.Padded(&buf, padded); err != nil {
			return stats, fmt.Errorf("emit padded table: %w", err)
		}
	}
	stats.Bytes = buf.Len()

	if g.opts.DryRun {
		stats.Duration = time.Since(start)
		log.Info("dry run, output not written",
			slog.Int("bytes", stats.Bytes),
			slog.Duration("duration", stats.Duration),
		)
		return stats, nil
	}

	if err := WriteFileAtomic(g.opts.OutputPath, buf.Bytes(), 0o644); err != nil {
		return stats, fmt.Errorf("write output %s: %w", g.opts.OutputPath, err)
	}
	stats.Written = true
	stats.Duration = time.Since(start)

	log.Info("generation completed",
		slog.String("output", g.opts.OutputPath),
		slog.Int("bytes", stats.Bytes),
		slog.Duration("duration", stats.Duration),
	)
	return stats, nil
}
