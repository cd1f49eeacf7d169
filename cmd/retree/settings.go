// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retree

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/woozymasta/retree"
	"github.com/woozymasta/retree/internal/config"
	"github.com/woozymasta/retree/internal/logging"
	"github.com/woozymasta/retree/rules/markdown"
	"github.com/woozymasta/retree/rules/textfmt"
)

// globalFlags holds persistent flag values overriding configuration.
type globalFlags struct {
	cfgFile         string
	rulesDir        string
	colorMode       string
	rules           []string
	maxDepth        int
	caseInsensitive bool
	verbose         bool
}

// settings is resolved runtime state shared by subcommands.
type settings struct {
	cfg      *config.Config
	logger   *slog.Logger
	registry *retree.Registry
}

// loadSettings merges config file, environment and changed flags.
func loadSettings(cmd *cobra.Command, flags *globalFlags) (*settings, error) {
	cfg, err := config.Load(flags.cfgFile)
	if err != nil {
		return nil, err
	}

	pf := cmd.Flags()
	if pf.Changed("rules") {
		cfg.Rules.Sets = flags.rules
	}

	if pf.Changed("rules-dir") {
		cfg.Rules.Dir = flags.rulesDir
	}

	if pf.Changed("color") {
		cfg.Output.Color = flags.colorMode
	}

	if pf.Changed("max-depth") {
		cfg.Transform.MaxDepth = flags.maxDepth
	}

	if pf.Changed("ignore-case") {
		cfg.Transform.CaseInsensitive = flags.caseInsensitive
	}

	if flags.verbose {
		cfg.Logging.Level = "debug"
	}

	if pf.Lookup("format") != nil && pf.Changed("format") {
		format, _ := pf.GetString("format")
		cfg.Output.Format = format
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}

	logger, err := logging.New(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	registry, err := newRegistry(cfg.Rules.Dir)
	if err != nil {
		return nil, err
	}

	return &settings{
		cfg:      cfg,
		logger:   logger,
		registry: registry,
	}, nil
}

// newRegistry creates registry with built-in rule sets.
func newRegistry(dir string) (*retree.Registry, error) {
	registry, err := retree.NewRegistry(retree.RegistryOptions{Dir: dir})
	if err != nil {
		return nil, err
	}

	builtins := map[string][]retree.Rule[string]{
		"markdown": markdown.Rules(),
		"textfmt":  textfmt.All(),
		"demo":     markdown.Rules(textfmt.Phone(), textfmt.IBAN()),
	}

	for name, rules := range builtins {
		if err := registry.Register(name, rules); err != nil {
			return nil, fmt.Errorf("register %s: %w", name, err)
		}
	}

	return registry, nil
}

// useColor resolves color mode against output writer.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
