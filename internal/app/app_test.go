package app

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/dictgen/internal/config"
	"github.com/heartmarshall/dictgen/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fileConfig(t *testing.T, input string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	in := filepath.Join(dir, "ejdict.txt")
	require.NoError(t, os.WriteFile(in, []byte(input), 0o644))

	cfg := &config.Config{
		Log: config.LogConfig{Level: "info", Format: "text"},
		Generate: config.GenerateConfig{
			InputPath:  in,
			OutputPath: filepath.Join(dir, "dictionary.rs"),
			Mode:       "plain",
			Target:     "rust",
			Package:    "dictionary",
		},
		Source: config.SourceConfig{Kind: "file"},
	}
	require.NoError(t, cfg.Validate())
	return cfg
}

func TestRun_FileToRust(t *testing.T) {
	t.Parallel()

	cfg := fileConfig(t, "run,jog\tto move fast\nox\tanimal\n")

	stats, err := Run(context.Background(), cfg, discardLogger())
	require.NoError(t, err)
	assert.True(t, stats.Written)
	assert.Equal(t, 3, stats.Collect.Kept)

	data, err := os.ReadFile(cfg.Generate.OutputPath)
	require.NoError(t, err)
	want := "pub fn get_dictionary() -> Vec<Vec<&'static str>> {\n" +
		"    vec![\n" +
		"        vec![\n" +
		"            \"ox\",\n" +
		"        ],\n" +
		"        vec![\n" +
		"            \"jog\",\n" +
		"            \"run\",\n" +
		"        ],\n" +
		"    ]\n" +
		"}\n"
	assert.Equal(t, want, string(data))
}

func TestRun_PaddedJSON(t *testing.T) {
	t.Parallel()

	cfg := fileConfig(t, "a\tx\nox\tx\ncat,dog\tx\n")
	cfg.Generate.Mode = "padded"
	cfg.Generate.Target = "json"

	_, err := Run(context.Background(), cfg, discardLogger())
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.Generate.OutputPath)
	require.NoError(t, err)
	assert.JSONEq(t, `[["ox", null], ["cat", "dog"]]`, string(data))
}

func TestRun_PaddedEmptyInput(t *testing.T) {
	t.Parallel()

	cfg := fileConfig(t, "")
	cfg.Generate.Mode = "padded"

	_, err := Run(context.Background(), cfg, discardLogger())
	assert.ErrorIs(t, err, domain.ErrNoEntries)
}

func TestRun_MissingInput(t *testing.T) {
	t.Parallel()

	cfg := fileConfig(t, "")
	cfg.Generate.InputPath = filepath.Join(t.TempDir(), "missing.txt")

	_, err := Run(context.Background(), cfg, discardLogger())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_UnknownSource(t *testing.T) {
	t.Parallel()

	cfg := fileConfig(t, "")
	cfg.Source.Kind = "s3"

	_, err := Run(context.Background(), cfg, discardLogger())
	assert.ErrorIs(t, err, domain.ErrValidation)
}
