// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retree

// Package main provides the retree CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Build metadata, set with -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd assembles command tree with shared persistent flags.
func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "retree",
		Short: "Rule based text to tree transformer",
		Long: `retree scans text with ordered regular-expression rules, builds a match tree
and folds it into output. Built-in rule sets: markdown, textfmt, demo.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.cfgFile, "config", "", "config file (default is ./retree.yaml)")
	pf.StringSliceVarP(&flags.rules, "rules", "r", nil, "rule sets to apply, in order")
	pf.StringVar(&flags.rulesDir, "rules-dir", "", "directory with <name>.yaml rule sets")
	pf.StringVar(&flags.colorMode, "color", "", "color mode (auto, always, never)")
	pf.IntVar(&flags.maxDepth, "max-depth", 0, "maximum payload recursion depth")
	pf.BoolVarP(&flags.caseInsensitive, "ignore-case", "i", false, "match rule patterns case-insensitively")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(transformCmd(flags))
	rootCmd.AddCommand(treeCmd(flags))
	rootCmd.AddCommand(rulesCmd(flags))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "retree %s (commit: %s, built: %s)\n", Version, Commit, Date)
		},
	}
}
