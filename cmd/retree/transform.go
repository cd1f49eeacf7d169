// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retree

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/woozymasta/retree"
	"github.com/woozymasta/retree/internal/config"
	"github.com/woozymasta/retree/render"
)

func transformCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transform [file|-]",
		Short: "Transform text with rule sets",
		Long: `Transform text read from a file or stdin with the selected rule sets.

Examples:
  echo '## Title' | retree transform             # markdown to HTML
  retree transform -r textfmt notes.txt          # format numbers and links
  retree transform -r markdown,custom --rules-dir ./rules doc.md
  retree transform -f diff -r textfmt notes.txt  # show what changed
  retree transform -f json doc.md                # dump match tree as JSON`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd, flags, args)
		},
	}

	cmd.Flags().StringP("format", "f", "", "output format (text, tree, json, diff)")

	return cmd
}

func treeCmd(flags *globalFlags) *cobra.Command {
	var offsets bool

	cmd := &cobra.Command{
		Use:   "tree [file|-]",
		Short: "Print match tree without folding it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadSettings(cmd, flags)
			if err != nil {
				return err
			}

			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			root, err := buildTree(st, input)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, render.Tree(root, render.TreeOptions{
				Color:   useColor(st.cfg.Output.Color, out),
				Offsets: offsets,
			}))

			return nil
		},
	}

	cmd.Flags().BoolVar(&offsets, "offsets", false, "show byte offsets")

	return cmd
}

// runTransform builds, folds and writes output in configured format.
func runTransform(cmd *cobra.Command, flags *globalFlags, args []string) error {
	st, err := loadSettings(cmd, flags)
	if err != nil {
		return err
	}

	format := st.cfg.Output.Format

	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	root, err := buildTree(st, input)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	colored := useColor(st.cfg.Output.Color, out)

	switch format {
	case config.FormatTree:
		fmt.Fprintln(out, render.Tree(root, render.TreeOptions{Color: colored}))
		return nil
	case config.FormatJSON:
		return render.JSON(out, root)
	}

	result, err := retree.Evaluate(root, retree.Concat)
	if err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}

	if format == config.FormatDiff {
		fmt.Fprintln(out, render.Diff(input, result, colored))
		return nil
	}

	_, err = io.WriteString(out, result)
	return err
}

// buildTree resolves configured rule sets and builds match tree for input.
func buildTree(st *settings, input string) (*retree.Node[string], error) {
	rules, err := st.registry.Resolve(st.cfg.Rules.Sets...)
	if err != nil {
		return nil, fmt.Errorf("resolve rules: %w", err)
	}

	st.logger.Debug("rules resolved",
		"sets", strings.Join(st.cfg.Rules.Sets, ","),
		"rules", len(rules),
		"input_bytes", len(input),
	)

	m, err := retree.NewMatcher(rules, st.cfg.Transform.MatcherOptions(st.logger))
	if err != nil {
		return nil, fmt.Errorf("compile rules: %w", err)
	}

	root, err := m.Build(input)
	if err != nil {
		return nil, fmt.Errorf("build tree: %w", err)
	}

	return root, nil
}

// readInput reads file argument, or stdin when argument is absent or "-".
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}

		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}

	return string(data), nil
}
