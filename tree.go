// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retree

package retree

import "strings"

// Kind is the node discriminant.
type Kind uint8

const (
	// KindUnknown is unset/invalid kind placeholder.
	KindUnknown Kind = iota
	// KindRoot is the single top node spanning the whole input.
	KindRoot
	// KindLiteral is plain unmatched text.
	KindLiteral
	// KindPattern is a span produced by a rule match.
	KindPattern
)

// String returns lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindLiteral:
		return "literal"
	case KindPattern:
		return "pattern"
	default:
		return "unknown"
	}
}

// Node is one element of the match tree.
//
// Literal nodes carry text only. Pattern nodes carry the winning rule and either one literal
// child holding the payload (terminal rule, or payload equal to full match) or the children
// produced by scanning the payload again.
type Node[T any] struct {
	// Rule is the originating rule, nil for root and literal nodes.
	Rule *Rule[T]
	// reduced is evaluation memo slot of pattern nodes.
	reduced T
	// Raw is payload text for pattern nodes, literal text, or whole input for root.
	Raw string
	// Match is full match text for pattern nodes, equal to Raw for other kinds.
	Match string
	// Children are ordered child nodes.
	Children []*Node[T]
	// Offset is byte offset of Match in the original input.
	Offset int
	// RuleIndex is Rule position in matcher input order, -1 when Rule is nil.
	RuleIndex int
	// Kind is node discriminant.
	Kind Kind
	// hasReduced reports whether reduced is populated.
	hasReduced bool
}

// newLiteral creates literal node at absolute offset.
func newLiteral[T any](text string, offset int) *Node[T] {
	return &Node[T]{
		Kind:      KindLiteral,
		Raw:       text,
		Match:     text,
		Offset:    offset,
		RuleIndex: -1,
	}
}

// Reduced returns memoized reduced value of a pattern node.
func (n *Node[T]) Reduced() (T, bool) {
	return n.reduced, n.hasReduced
}

// Source reconstructs input text spanned by node children.
//
// Literal children contribute their text and pattern children their full match, so for the
// root node the result equals the original input.
func (n *Node[T]) Source() string {
	if n.Kind == KindLiteral {
		return n.Raw
	}

	var b strings.Builder
	for _, child := range n.Children {
		if child.Kind == KindLiteral {
			b.WriteString(child.Raw)
			continue
		}

		b.WriteString(child.Match)
	}

	return b.String()
}

// Walk visits node and its descendants in pre-order with nesting depth.
// Returning false from fn skips the descendants of the visited node.
func (n *Node[T]) Walk(fn func(node *Node[T], depth int) bool) {
	n.walk(fn, 0)
}

// walk is recursive Walk helper.
func (n *Node[T]) walk(fn func(node *Node[T], depth int) bool, depth int) {
	if !fn(n, depth) {
		return
	}

	for _, child := range n.Children {
		child.walk(fn, depth+1)
	}
}

// Depth returns tree height, 0 for a node without children.
func (n *Node[T]) Depth() int {
	depth := 0
	n.Walk(func(_ *Node[T], d int) bool {
		if d > depth {
			depth = d
		}

		return true
	})

	return depth
}
