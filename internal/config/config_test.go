// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retree

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/retree"
)

func validConfig() Config {
	return Config{
		Logging:   LoggingConfig{Level: "warn", Format: "text"},
		Rules:     RulesConfig{Sets: []string{"markdown"}},
		Output:    OutputConfig{Format: FormatText, Color: ColorAuto},
		Transform: TransformConfig{MaxDepth: retree.DefaultMaxDepth},
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, validConfig(), *cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "retree.yaml")
	content := `
logging:
  level: debug
  format: json
rules:
  dir: ./rules
  sets: [textfmt, markdown]
output:
  format: json
  color: never
transform:
  max_depth: 16
  case_insensitive: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "./rules", cfg.Rules.Dir)
	assert.Equal(t, []string{"textfmt", "markdown"}, cfg.Rules.Sets)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
	assert.Equal(t, ColorNever, cfg.Output.Color)
	assert.Equal(t, 16, cfg.Transform.MaxDepth)
	assert.True(t, cfg.Transform.CaseInsensitive)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("RETREE_OUTPUT_FORMAT", FormatTree)
	t.Setenv("RETREE_TRANSFORM_MAX_DEPTH", "8")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, FormatTree, cfg.Output.Format)
	assert.Equal(t, 8, cfg.Transform.MaxDepth)
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "retree.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: xml\n"), 0o600))

	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidFormat)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{name: "log level", mutate: func(c *Config) { c.Logging.Level = "loud" }, want: ErrInvalidLogLevel},
		{name: "log format", mutate: func(c *Config) { c.Logging.Format = "xml" }, want: ErrInvalidLogFormat},
		{name: "output format", mutate: func(c *Config) { c.Output.Format = "html" }, want: ErrInvalidFormat},
		{name: "color", mutate: func(c *Config) { c.Output.Color = "sometimes" }, want: ErrInvalidColor},
		{name: "max depth", mutate: func(c *Config) { c.Transform.MaxDepth = 0 }, want: ErrInvalidMaxDepth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(&cfg)

			assert.ErrorIs(t, cfg.Validate(), tt.want)
		})
	}

	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestSlogLevel(t *testing.T) {
	t.Parallel()

	level, err := LoggingConfig{Level: "info"}.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)

	_, err = LoggingConfig{Level: "loud"}.SlogLevel()
	assert.ErrorIs(t, err, ErrInvalidLogLevel)
}

func TestMatcherOptions(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.DiscardHandler)
	opts := TransformConfig{MaxDepth: 7, CaseInsensitive: true}.MatcherOptions(logger)

	assert.Equal(t, retree.Options{MaxDepth: 7, CaseInsensitive: true, Logger: logger}, opts)
}
