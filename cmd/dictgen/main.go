// Command dictgen builds a length-grouped word table from a dictionary file
// (or the reference catalog in PostgreSQL) and writes it as Rust, Go or JSON
// source.
//
// Usage:
//
//	dictgen [--config dictgen.yaml] [--mode plain|padded] [--target rust|go|json] ...
//
// Flags override environment variables, which override the config file.
// Validation runs once, after flags are applied.
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/heartmarshall/dictgen/internal/app"
	"github.com/heartmarshall/dictgen/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// flags mirrors the overridable config keys.
type flags struct {
	configPath string
	input      string
	output     string
	mode       string
	target     string
	pkg        string
	symbol     string
	source     string
	coreOnly   bool
	limit      int
	fillGaps   bool
	dryRun     bool
	logLevel   string
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:           "dictgen",
		Short:         "Generate a length-grouped dictionary table as source code",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadRaw(f.configPath)
			if err != nil {
				slog.Error("load config", slog.String("error", err.Error()))
				return err
			}
			applyFlags(cfg, &f, cmd.Flags())
			if err := cfg.Validate(); err != nil {
				slog.Error("invalid config", slog.String("error", err.Error()))
				return err
			}

			logger := app.NewLogger(cfg.Log)
			if _, err := app.Run(cmd.Context(), cfg, logger); err != nil {
				logger.Error("generation failed", slog.String("error", err.Error()))
				return err
			}
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.configPath, "config", "c", "", "path to YAML config file")
	fs.StringVarP(&f.input, "input", "i", "", "input dictionary file (file source)")
	fs.StringVarP(&f.output, "output", "o", "", "output file")
	fs.StringVarP(&f.mode, "mode", "m", "", "plain or padded")
	fs.StringVarP(&f.target, "target", "t", "", "rust, go or json")
	fs.StringVar(&f.pkg, "package", "", "package name for the go target")
	fs.StringVar(&f.symbol, "symbol", "", "generated function or variable name")
	fs.StringVar(&f.source, "source", "", "file or postgres")
	fs.BoolVar(&f.coreOnly, "core-only", false, "postgres source: only core lexicon entries")
	fs.IntVar(&f.limit, "limit", 0, "postgres source: maximum rows to read (0 = all)")
	fs.BoolVar(&f.fillGaps, "fill-gaps", false, "insert empty groups for missing lengths")
	fs.BoolVar(&f.dryRun, "dry-run", false, "build the table and log stats without writing")
	fs.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")

	return cmd
}

// applyFlags copies explicitly set flags over the loaded config.
func applyFlags(cfg *config.Config, f *flags, fs *pflag.FlagSet) {
	set := func(name string, apply func()) {
		if fs.Changed(name) {
			apply()
		}
	}
	set("input", func() { cfg.Generate.InputPath = f.input })
	set("output", func() { cfg.Generate.OutputPath = f.output })
	set("mode", func() { cfg.Generate.Mode = f.mode })
	set("target", func() { cfg.Generate.Target = f.target })
	set("package", func() { cfg.Generate.Package = f.pkg })
	set("symbol", func() { cfg.Generate.Symbol = f.symbol })
	set("source", func() { cfg.Source.Kind = f.source })
	set("core-only", func() { cfg.Source.CoreOnly = f.coreOnly })
	set("limit", func() { cfg.Source.Limit = f.limit })
	set("fill-gaps", func() { cfg.Generate.FillGaps = f.fillGaps })
	set("dry-run", func() { cfg.Generate.DryRun = f.dryRun })
	set("log-level", func() { cfg.Log.Level = f.logLevel })
}
