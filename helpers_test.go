// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retree

package retree

import "testing"

// shape is comparable projection of a tree node.
type shape struct {
	Kind     Kind
	Raw      string
	Match    string
	Rule     string
	Children []shape
	Offset   int
}

// shapeOf projects tree into comparable form, leaving Children nil for leaves.
func shapeOf[T any](n *Node[T]) shape {
	s := shape{
		Kind:   n.Kind,
		Raw:    n.Raw,
		Match:  n.Match,
		Offset: n.Offset,
	}

	if n.Rule != nil {
		s.Rule = n.Rule.Label()
	}

	for _, child := range n.Children {
		s.Children = append(s.Children, shapeOf(child))
	}

	return s
}

func lit(text string, offset int) shape {
	return shape{Kind: KindLiteral, Raw: text, Match: text, Offset: offset}
}

func wrapTag(tag string) Reducer[string] {
	return func(parts []Part[string]) string {
		return "<" + tag + ">" + Concat(parts) + "</" + tag + ">"
	}
}

func mustBuild(t *testing.T, input string, rules []Rule[string]) *Node[string] {
	t.Helper()

	root, err := Build(input, rules)
	if err != nil {
		t.Fatalf("Build(%q): %v", input, err)
	}

	return root
}
