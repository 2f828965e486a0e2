package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/oisee/gbopcodes/pkg/source"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, source.DefaultURL, cfg.URL)
	assert.Equal(t, "src/op_codes.zig", cfg.Output)
	assert.Equal(t, FormatZig, cfg.Format)
	assert.Zero(t, cfg.Timeout)
	assert.Equal(t, source.HTTP{URL: source.DefaultURL}, cfg.Source())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gbopcodes.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
input: testdata/Opcodes.json
output: gen/opcodes.json
format: json
timeout: 30s
allow_duplicates: true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, source.DefaultURL, cfg.URL)
	assert.Equal(t, "testdata/Opcodes.json", cfg.Input)
	assert.Equal(t, "gen/opcodes.json", cfg.Output)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.AllowDuplicates)
	assert.Equal(t, source.File{Path: "testdata/Opcodes.json"}, cfg.Source())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("timeout: [1"), 0o644))
	_, err = Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := map[string]func(*Config){
		"format":   func(c *Config) { c.Format = "c" },
		"no input": func(c *Config) { c.URL = "" },
		"output":   func(c *Config) { c.Output = "" },
		"timeout":  func(c *Config) { c.Timeout = -time.Second },
		"level":    func(c *Config) { c.LogLevel = "loud" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestLogger(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "warn"

	log, err := cfg.Logger(false)
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))

	log, err = cfg.Logger(true)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))

	cfg.LogLevel = "loud"
	_, err = cfg.Logger(false)
	require.Error(t, err)
}
