// Package config holds generator settings and builds the logger.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/oisee/gbopcodes/pkg/source"
)

// Output formats.
const (
	FormatZig  = "zig"
	FormatJSON = "json"
)

// DefaultOutput is where the Zig enums are written.
const DefaultOutput = "src/op_codes.zig"

// Config is the generator configuration. Zero Timeout means no limit.
type Config struct {
	URL             string        `yaml:"url"`
	Input           string        `yaml:"input"`
	Output          string        `yaml:"output"`
	Format          string        `yaml:"format"`
	Timeout         time.Duration `yaml:"timeout"`
	LogLevel        string        `yaml:"log_level"`
	AllowDuplicates bool          `yaml:"allow_duplicates"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		URL:      source.DefaultURL,
		Output:   DefaultOutput,
		Format:   FormatZig,
		LogLevel: "info",
	}
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("unable to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c Config) Validate() error {
	switch c.Format {
	case FormatZig, FormatJSON:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if c.URL == "" && c.Input == "" {
		return errors.New("either url or input must be set")
	}
	if c.Output == "" {
		return errors.New("output path is empty")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("negative timeout %s", c.Timeout)
	}
	if c.LogLevel != "" {
		if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("log setting: %w", err)
		}
	}
	return nil
}

// Source returns the instruction table source the configuration names.
func (c Config) Source() source.Source {
	return source.New(c.URL, c.Input)
}

// Logger builds a console logger at the configured level, or at debug
// level when debug is set.
func (c Config) Logger(debug bool) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if c.LogLevel != "" {
		var err error
		level, err = zapcore.ParseLevel(c.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("log setting: %w", err)
		}
	}
	if debug {
		level = zapcore.DebugLevel
	}

	cc := zap.NewProductionConfig()
	cc.DisableCaller = true
	cc.DisableStacktrace = true
	cc.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	cc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cc.Encoding = "console"
	cc.Level = zap.NewAtomicLevelAt(level)
	cc.Sampling = nil

	return cc.Build()
}
