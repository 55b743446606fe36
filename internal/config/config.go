package config

import "time"

// Config is the root dictgen configuration.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Generate GenerateConfig `yaml:"generate"`
	Source   SourceConfig   `yaml:"source"`
	Database DatabaseConfig `yaml:"database"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// GenerateConfig holds the transform and emission settings.
type GenerateConfig struct {
	InputPath  string `yaml:"input_path"  env:"DICTGEN_INPUT_PATH"  env-default:"20241025_ejdict-hand-utf8.txt"`
	OutputPath string `yaml:"output_path" env:"DICTGEN_OUTPUT_PATH" env-default:"dictionary.rs"`
	Mode       string `yaml:"mode"        env:"DICTGEN_MODE"        env-default:"plain"`
	Target     string `yaml:"target"      env:"DICTGEN_TARGET"      env-default:"rust"`
	Package    string `yaml:"package"     env:"DICTGEN_PACKAGE"     env-default:"dictionary"`
	// Symbol overrides the generated function name; empty uses the target default.
	Symbol   string `yaml:"symbol"    env:"DICTGEN_SYMBOL"`
	FillGaps bool   `yaml:"fill_gaps" env:"DICTGEN_FILL_GAPS" env-default:"false"`
	DryRun   bool   `yaml:"dry_run"   env:"DICTGEN_DRY_RUN"   env-default:"false"`
}

// SourceConfig selects where dictionary records are read from.
type SourceConfig struct {
	Kind     string `yaml:"kind"      env:"DICTGEN_SOURCE_KIND"      env-default:"file"`
	CoreOnly bool   `yaml:"core_only" env:"DICTGEN_SOURCE_CORE_ONLY" env-default:"false"`
	Limit    int    `yaml:"limit"     env:"DICTGEN_SOURCE_LIMIT"     env-default:"0"`
}

// DatabaseConfig holds PostgreSQL connection settings for the postgres source.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"2"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"0"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}
