// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retree

package render

import (
	"strconv"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/list"

	"github.com/woozymasta/retree"
)

// TreeOptions controls text tree rendering.
type TreeOptions struct {
	// Color enables ANSI colors per node kind.
	Color bool
	// Offsets appends byte offsets to node labels.
	Offsets bool
}

// Tree renders match tree as an indented connected list.
func Tree[T any](root *retree.Node[T], opts TreeOptions) string {
	if root == nil {
		return ""
	}

	l := list.NewWriter()
	l.SetStyle(list.StyleConnectedRounded)

	p := newPalette(opts.Color)
	appendNode(l, root, p, opts)

	return l.Render()
}

// appendNode appends node label and nests its children below it.
func appendNode[T any](l list.Writer, n *retree.Node[T], p palette, opts TreeOptions) {
	l.AppendItem(nodeLabel(n, p, opts))
	if len(n.Children) == 0 {
		return
	}

	l.Indent()
	for _, child := range n.Children {
		appendNode(l, child, p, opts)
	}
	l.UnIndent()
}

// nodeLabel formats one node line.
func nodeLabel[T any](n *retree.Node[T], p palette, opts TreeOptions) string {
	var label string
	switch n.Kind {
	case retree.KindRoot:
		label = p.root.Sprint("root")
	case retree.KindPattern:
		name := "?"
		if n.Rule != nil {
			name = n.Rule.Label()
		}

		label = p.pattern.Sprintf("pattern[%s]", name) + " " + p.text.Sprint(strconv.Quote(n.Raw))
		if n.Match != n.Raw {
			label += " " + p.dim.Sprintf("of %s", strconv.Quote(n.Match))
		}
	case retree.KindLiteral:
		label = p.literal.Sprint("literal") + " " + p.text.Sprint(strconv.Quote(n.Raw))
	default:
		label = n.Kind.String()
	}

	if opts.Offsets {
		label += " " + p.dim.Sprintf("@%d", n.Offset)
	}

	return label
}

// palette holds per-kind colors.
type palette struct {
	root    *color.Color
	pattern *color.Color
	literal *color.Color
	text    *color.Color
	dim     *color.Color
}

// newPalette creates palette with colors forced on or off regardless of terminal detection.
func newPalette(enabled bool) palette {
	p := palette{
		root:    color.New(color.FgCyan, color.Bold),
		pattern: color.New(color.FgGreen),
		literal: color.New(color.FgYellow),
		text:    color.New(color.Reset),
		dim:     color.New(color.FgHiBlack),
	}

	for _, c := range []*color.Color{p.root, p.pattern, p.literal, p.text, p.dim} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}
