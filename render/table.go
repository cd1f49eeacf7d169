// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retree

package render

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/woozymasta/retree"
)

// RuleTable renders ordered rule set as a table.
func RuleTable[T any](title string, rules []retree.Rule[T]) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	if title != "" {
		tbl.SetTitle(title)
	}

	tbl.AppendHeader(table.Row{"#", "Name", "Pattern", "Group", "Terminal", "Reducer"})
	for i := range rules {
		pattern := ""
		if rules[i].Pattern != nil {
			pattern = rules[i].Pattern.String()
		}

		tbl.AppendRow(table.Row{
			i,
			rules[i].Name,
			pattern,
			rules[i].Group,
			yesNo(rules[i].Terminal),
			yesNo(rules[i].Reduce != nil),
		})
	}

	tbl.AppendFooter(table.Row{"", fmt.Sprintf("Total: %d rules", len(rules))})

	return tbl.Render()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}

	return "no"
}
