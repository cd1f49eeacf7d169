// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retree

package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/woozymasta/retree"
)

// Node is JSON view of one match tree node.
type Node struct {
	Kind      string `json:"kind"`
	Rule      string `json:"rule,omitempty"`
	Raw       string `json:"raw"`
	Match     string `json:"match,omitempty"`
	Children  []Node `json:"children,omitempty"`
	Offset    int    `json:"offset"`
	RuleIndex int    `json:"rule_index"`
}

// NewNode converts match tree into its JSON view.
func NewNode[T any](n *retree.Node[T]) Node {
	out := Node{
		Kind:      n.Kind.String(),
		Raw:       n.Raw,
		Offset:    n.Offset,
		RuleIndex: n.RuleIndex,
	}

	if n.Kind == retree.KindPattern {
		out.Match = n.Match
		if n.Rule != nil {
			out.Rule = n.Rule.Label()
		}
	}

	if len(n.Children) > 0 {
		out.Children = make([]Node, 0, len(n.Children))
		for _, child := range n.Children {
			out.Children = append(out.Children, NewNode(child))
		}
	}

	return out
}

// JSON writes indented JSON view of the tree to w.
func JSON[T any](w io.Writer, root *retree.Node[T]) error {
	if root == nil {
		return fmt.Errorf("%w: nil tree", retree.ErrInvalidInput)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if err := enc.Encode(NewNode(root)); err != nil {
		return fmt.Errorf("encode tree: %w", err)
	}

	return nil
}
