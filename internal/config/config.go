// Package config loads rtbcodec settings from YAML, environment and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the root CLI configuration.
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Decode   DecodeConfig   `mapstructure:"decode"`
	Output   OutputConfig   `mapstructure:"output"`
	Validate ValidateConfig `mapstructure:"validate"`
}

// LogConfig defines logger settings.
type LogConfig struct {
	// Level: debug, info, warn, error
	Level string `mapstructure:"level"`
	// Format: console or json
	Format string `mapstructure:"format"`
	// Outputs: stdout, stderr, or file paths
	Outputs []string `mapstructure:"outputs"`

	Rotation    RotationConfig `mapstructure:"rotation"`
	Development bool           `mapstructure:"development"`
}

// RotationConfig controls log file rotation for file outputs.
type RotationConfig struct {
	Enable     bool   `mapstructure:"enable"`
	Filename   string `mapstructure:"filename"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// DecodeConfig controls how bid requests are read.
type DecodeConfig struct {
	// Strict requires at least one impression
	Strict bool `mapstructure:"strict"`
	// JSONC accepts comments and trailing commas in input
	JSONC bool `mapstructure:"jsonc"`
}

// OutputConfig controls how canonical documents are printed.
type OutputConfig struct {
	Pretty bool `mapstructure:"pretty"`
	// Color: auto, always or never
	Color string `mapstructure:"color"`
	// Style is a chroma style name
	Style  string `mapstructure:"style"`
	Digest bool   `mapstructure:"digest"`
}

// ValidateConfig controls the validate command.
type ValidateConfig struct {
	Jobs int `mapstructure:"jobs"`
}

// Default returns a Config populated with defaults.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:   "warn",
			Format:  "console",
			Outputs: []string{"stderr"},
			Rotation: RotationConfig{
				Enable:     false,
				Filename:   "logs/rtbcodec.log",
				MaxSizeMB:  50,
				MaxBackups: 3,
				MaxAgeDays: 28,
				Compress:   true,
			},
		},
		Output: OutputConfig{
			Color: "auto",
			Style: "monokai",
		},
		Validate: ValidateConfig{Jobs: 4},
	}
}

// Load reads configuration from path when non-empty, otherwise from
// RTBCODEC_CONFIG or the usual search locations. Environment variables use
// the prefix RTBCODEC with `.` and `-` replaced by `_`, e.g.
// RTBCODEC_DECODE_STRICT=true.
func Load(path string) (*Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("RTBCODEC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// seed defaults so env-only configs work
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
	v.SetDefault("log.outputs", cfg.Log.Outputs)
	v.SetDefault("log.development", cfg.Log.Development)
	v.SetDefault("log.rotation.enable", cfg.Log.Rotation.Enable)
	v.SetDefault("log.rotation.filename", cfg.Log.Rotation.Filename)
	v.SetDefault("log.rotation.max_size_mb", cfg.Log.Rotation.MaxSizeMB)
	v.SetDefault("log.rotation.max_backups", cfg.Log.Rotation.MaxBackups)
	v.SetDefault("log.rotation.max_age_days", cfg.Log.Rotation.MaxAgeDays)
	v.SetDefault("log.rotation.compress", cfg.Log.Rotation.Compress)
	v.SetDefault("decode.strict", cfg.Decode.Strict)
	v.SetDefault("decode.jsonc", cfg.Decode.JSONC)
	v.SetDefault("output.pretty", cfg.Output.Pretty)
	v.SetDefault("output.color", cfg.Output.Color)
	v.SetDefault("output.style", cfg.Output.Style)
	v.SetDefault("output.digest", cfg.Output.Digest)
	v.SetDefault("validate.jobs", cfg.Validate.Jobs)

	if path == "" {
		if envPath := os.Getenv("RTBCODEC_CONFIG"); envPath != "" {
			path = envPath
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("rtbcodec")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".rtbcodec"))
		}
	}

	// a missing config file is fine; defaults and env still apply
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log.level: %q", c.Log.Level)
	}

	c.Output.Color = strings.ToLower(strings.TrimSpace(c.Output.Color))
	switch c.Output.Color {
	case "":
		c.Output.Color = "auto"
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid output.color: %q (want auto, always or never)", c.Output.Color)
	}

	if c.Validate.Jobs < 1 {
		return fmt.Errorf("invalid validate.jobs: %d", c.Validate.Jobs)
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
	if len(c.Log.Outputs) == 0 {
		c.Log.Outputs = []string{"stderr"}
	}
	return nil
}
