// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retree

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/woozymasta/retree/render"
)

func rulesCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "rules [set...]",
		Short: "List rule sets or show rules of given sets",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadSettings(cmd, flags)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				names, err := st.registry.Names()
				if err != nil {
					return err
				}

				for _, name := range names {
					fmt.Fprintln(out, name)
				}

				return nil
			}

			for _, name := range args {
				rules, err := st.registry.Lookup(name)
				if err != nil {
					return err
				}

				fmt.Fprintln(out, render.RuleTable(name, rules))
			}

			return nil
		},
	}
}
