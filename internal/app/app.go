package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/dictgen/internal/adapter/file"
	"github.com/heartmarshall/dictgen/internal/adapter/postgres"
	"github.com/heartmarshall/dictgen/internal/adapter/postgres/refentry"
	"github.com/heartmarshall/dictgen/internal/config"
	"github.com/heartmarshall/dictgen/internal/dictgen"
	"github.com/heartmarshall/dictgen/internal/domain"
	"github.com/heartmarshall/dictgen/internal/emit"
)

// Run wires the configured source and emitter into a generator and executes
// one generation. cfg must already be validated.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) (dictgen.Stats, error) {
	logger.Info("starting dictgen",
		slog.String("version", BuildVersion()),
		slog.String("source", cfg.Source.Kind),
		slog.String("target", cfg.Generate.Target),
	)

	target, err := domain.ParseTarget(cfg.Generate.Target)
	if err != nil {
		return dictgen.Stats{}, err
	}
	mode, err := domain.ParseMode(cfg.Generate.Mode)
	if err != nil {
		return dictgen.Stats{}, err
	}

	emitter, err := emit.New(target, emit.Options{
		Package: cfg.Generate.Package,
		Symbol:  cfg.Generate.Symbol,
	})
	if err != nil {
		return dictgen.Stats{}, err
	}

	src, closeSrc, err := openSource(ctx, cfg)
	if err != nil {
		return dictgen.Stats{}, err
	}
	defer closeSrc()

	gen := dictgen.NewGenerator(logger, src, emitter, dictgen.Options{
		Mode:       mode,
		OutputPath: cfg.Generate.OutputPath,
		FillGaps:   cfg.Generate.FillGaps,
		DryRun:     cfg.Generate.DryRun,
	})
	return gen.Run(ctx)
}

func openSource(ctx context.Context, cfg *config.Config) (dictgen.Source, func(), error) {
	switch domain.SourceKind(cfg.Source.Kind) {
	case domain.SourceKindFile:
		return file.NewSource(cfg.Generate.InputPath), func() {}, nil
	case domain.SourceKindPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		src := refentry.NewSource(pool, refentry.Options{
			CoreOnly: cfg.Source.CoreOnly,
			Limit:    cfg.Source.Limit,
		})
		return src, pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: unknown source kind %q", domain.ErrValidation, cfg.Source.Kind)
	}
}
