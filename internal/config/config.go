// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retree

// Package config provides configuration loading and validation for the retree CLI.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/woozymasta/retree"
)

// Sentinel validation errors.
var (
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidLogFormat = errors.New("invalid log format")
	ErrInvalidFormat    = errors.New("invalid output format")
	ErrInvalidColor     = errors.New("invalid color mode")
	ErrInvalidMaxDepth  = errors.New("max depth must be positive")
)

// Output formats.
const (
	FormatText = "text"
	FormatTree = "tree"
	FormatJSON = "json"
	FormatDiff = "diff"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// EnvPrefix is environment variable prefix, "RETREE_OUTPUT_FORMAT" maps to output.format.
const EnvPrefix = "RETREE"

var (
	outputFormats = []string{FormatText, FormatTree, FormatJSON, FormatDiff}
	colorModes    = []string{ColorAuto, ColorAlways, ColorNever}
	logFormats    = []string{"text", "json"}
)

// Config holds all configuration for the retree CLI.
type Config struct {
	Logging   LoggingConfig   `mapstructure:"logging"`
	Rules     RulesConfig     `mapstructure:"rules"`
	Output    OutputConfig    `mapstructure:"output"`
	Transform TransformConfig `mapstructure:"transform"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// RulesConfig selects rule sets.
type RulesConfig struct {
	Dir  string   `mapstructure:"dir"`
	Sets []string `mapstructure:"sets"`
}

// OutputConfig holds output rendering configuration.
type OutputConfig struct {
	Format string `mapstructure:"format"`
	Color  string `mapstructure:"color"`
}

// TransformConfig holds matcher configuration.
type TransformConfig struct {
	MaxDepth        int  `mapstructure:"max_depth"`
	CaseInsensitive bool `mapstructure:"case_insensitive"`
}

// Load loads configuration from file and environment variables.
//
// Empty configPath searches "retree.yaml" in the working directory and "$HOME/.config/retree".
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("retree")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/retree")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := v.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "text")

	v.SetDefault("rules.dir", "")
	v.SetDefault("rules.sets", []string{"markdown"})

	v.SetDefault("output.format", FormatText)
	v.SetDefault("output.color", ColorAuto)

	v.SetDefault("transform.max_depth", retree.DefaultMaxDepth)
	v.SetDefault("transform.case_insensitive", false)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if _, err := c.Logging.SlogLevel(); err != nil {
		return err
	}

	if !slices.Contains(logFormats, c.Logging.Format) {
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Logging.Format)
	}

	if !slices.Contains(outputFormats, c.Output.Format) {
		return fmt.Errorf("%w: %q (want one of %s)", ErrInvalidFormat, c.Output.Format, strings.Join(outputFormats, ", "))
	}

	if !slices.Contains(colorModes, c.Output.Color) {
		return fmt.Errorf("%w: %q (want one of %s)", ErrInvalidColor, c.Output.Color, strings.Join(colorModes, ", "))
	}

	if c.Transform.MaxDepth <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxDepth, c.Transform.MaxDepth)
	}

	return nil
}

// SlogLevel parses configured level name.
func (c LoggingConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Level)
	}

	return level, nil
}

// MatcherOptions converts transform configuration into matcher options.
func (c TransformConfig) MatcherOptions(logger *slog.Logger) retree.Options {
	return retree.Options{
		MaxDepth:        c.MaxDepth,
		CaseInsensitive: c.CaseInsensitive,
		Logger:          logger,
	}
}
