package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/dictgen/internal/domain"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "dictgen.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
log:
  level: "debug"
  format: "json"

generate:
  input_path: "ejdict.txt"
  output_path: "out/dictionary.go"
  mode: "Padded"
  target: "go"
  package: "typo"
  symbol: "Words"
  fill_gaps: true

source:
  kind: "file"
  limit: 100

database:
  max_conns: 2
  max_conn_lifetime: "5m"
`

func TestLoad_ValidYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)

	assert.Equal(t, "ejdict.txt", cfg.Generate.InputPath)
	assert.Equal(t, "out/dictionary.go", cfg.Generate.OutputPath)
	assert.Equal(t, "padded", cfg.Generate.Mode, "mode is normalized to lower case")
	assert.Equal(t, "go", cfg.Generate.Target)
	assert.Equal(t, "typo", cfg.Generate.Package)
	assert.Equal(t, "Words", cfg.Generate.Symbol)
	assert.True(t, cfg.Generate.FillGaps)
	assert.False(t, cfg.Generate.DryRun)

	assert.Equal(t, "file", cfg.Source.Kind)
	assert.Equal(t, 100, cfg.Source.Limit)

	assert.Equal(t, int32(2), cfg.Database.MaxConns)
	assert.Equal(t, int32(0), cfg.Database.MinConns, "default applies to missing keys")
	assert.Equal(t, 5*time.Minute, cfg.Database.MaxConnLifetime)
	assert.Equal(t, 30*time.Minute, cfg.Database.MaxConnIdleTime)
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("DICTGEN_MODE", "plain")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "plain", cfg.Generate.Mode)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_NoFile_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "20241025_ejdict-hand-utf8.txt", cfg.Generate.InputPath)
	assert.Equal(t, "dictionary.rs", cfg.Generate.OutputPath)
	assert.Equal(t, "plain", cfg.Generate.Mode)
	assert.Equal(t, "rust", cfg.Generate.Target)
	assert.Equal(t, "dictionary", cfg.Generate.Package)
	assert.Empty(t, cfg.Generate.Symbol)
	assert.Equal(t, "file", cfg.Source.Kind)
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist), "error should wrap os.ErrNotExist, got %v", err)
}

func TestLoad_InvalidYAMLValue(t *testing.T) {
	path := writeYAML(t, t.TempDir(), `
generate:
  mode: "sparse"
`)
	_, err := Load(path)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestLoadRaw_SkipsValidation(t *testing.T) {
	path := writeYAML(t, t.TempDir(), `
generate:
  mode: "sparse"
source:
  kind: "postgres"
`)
	cfg, err := LoadRaw(path)
	require.NoError(t, err)
	assert.Equal(t, "sparse", cfg.Generate.Mode)
	assert.Equal(t, "postgres", cfg.Source.Kind)

	cfg.Generate.Mode = "plain"
	cfg.Source.Kind = "file"
	assert.NoError(t, cfg.Validate(), "overrides repair the loaded config")
}

func TestLoadRaw_ExplicitPathNotFound(t *testing.T) {
	_, err := LoadRaw(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func validConfig() Config {
	return Config{
		Log: LogConfig{Level: "info", Format: "text"},
		Generate: GenerateConfig{
			InputPath:  "in.txt",
			OutputPath: "out.rs",
			Mode:       "plain",
			Target:     "rust",
			Package:    "dictionary",
		},
		Source: SourceConfig{Kind: "file"},
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantField string
	}{
		{"valid", func(c *Config) {}, ""},
		{"unknown mode", func(c *Config) { c.Generate.Mode = "sparse" }, "generate.mode"},
		{"unknown target", func(c *Config) { c.Generate.Target = "python" }, "generate.target"},
		{"bad go package", func(c *Config) {
			c.Generate.Target = "go"
			c.Generate.Package = "my-dict"
		}, "generate.package"},
		{"keyword go package", func(c *Config) {
			c.Generate.Target = "go"
			c.Generate.Package = "func"
		}, "generate.package"},
		{"package ignored for rust", func(c *Config) { c.Generate.Package = "my-dict" }, ""},
		{"bad symbol", func(c *Config) { c.Generate.Symbol = "get dictionary" }, "generate.symbol"},
		{"blank symbol", func(c *Config) { c.Generate.Symbol = "_" }, "generate.symbol"},
		{"rust keyword symbol", func(c *Config) { c.Generate.Symbol = "fn" }, "generate.symbol"},
		{"rust reserved symbol", func(c *Config) { c.Generate.Symbol = "match" }, "generate.symbol"},
		{"rust keyword fine for go", func(c *Config) {
			c.Generate.Target = "go"
			c.Generate.Symbol = "match"
		}, ""},
		{"go symbol collides with Word", func(c *Config) {
			c.Generate.Target = "go"
			c.Generate.Mode = "padded"
			c.Generate.Symbol = "Word"
		}, "generate.symbol"},
		{"Word fine for rust", func(c *Config) { c.Generate.Symbol = "Word" }, ""},
		{"missing output", func(c *Config) { c.Generate.OutputPath = " " }, "generate.output_path"},
		{"dry run needs no output", func(c *Config) {
			c.Generate.OutputPath = ""
			c.Generate.DryRun = true
		}, ""},
		{"missing input for file source", func(c *Config) { c.Generate.InputPath = "" }, "generate.input_path"},
		{"postgres needs dsn", func(c *Config) { c.Source.Kind = "postgres" }, "database.dsn"},
		{"postgres with dsn", func(c *Config) {
			c.Source.Kind = "postgres"
			c.Generate.InputPath = ""
			c.Database.DSN = "postgres://u:p@localhost:5432/db"
		}, ""},
		{"unknown source", func(c *Config) { c.Source.Kind = "s3" }, "source.kind"},
		{"negative limit", func(c *Config) { c.Source.Limit = -1 }, "source.limit"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()

			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, domain.ErrValidation)

			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			fields := make([]string, 0, len(verr.Errors))
			for _, fe := range verr.Errors {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tt.wantField)
		})
	}
}

func TestValidate_ReportsAllErrors(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Generate.Mode = "x"
	cfg.Generate.Target = "y"
	cfg.Source.Limit = -5

	err := cfg.Validate()

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Errors, 3)
}
