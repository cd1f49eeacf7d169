// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retree

package retree

import (
	"log/slog"
	"regexp"
	"strings"
)

// DefaultMaxDepth is the matching recursion bound used when Options.MaxDepth is not set.
const DefaultMaxDepth = 512

// Reducer folds resolved children of one node into a single value.
type Reducer[T any] func(parts []Part[T]) T

// Rule is one user-visible transformation rule.
type Rule[T any] struct {
	// Pattern is matched once (leftmost-first) against the remaining text.
	Pattern *regexp.Regexp
	// Reduce folds the node children. Required for every rule that ends up in a tree.
	Reduce Reducer[T]
	// Name is an optional label used in errors, logs and rendering.
	Name string
	// Group selects the capture group used as payload, 0 is the whole match.
	Group int
	// Terminal stores the payload as a single literal instead of scanning it again.
	Terminal bool
}

// Part is one resolved child handed to a reducer.
type Part[T any] struct {
	// Value is the reduced value of a nested pattern node, zero for literals.
	Value T
	// Text is literal text, or the payload of a nested pattern node.
	Text string
	// Literal reports whether the part is plain unmatched text.
	Literal bool
}

// Options controls matcher behavior.
type Options struct {
	// Logger receives debug records for every selected rule. Nil discards.
	Logger *slog.Logger `json:"-" yaml:"-"`
	// MaxDepth bounds payload recursion, zero means DefaultMaxDepth.
	MaxDepth int `json:"max_depth,omitempty" yaml:"max_depth,omitempty"`
	// CaseInsensitive recompiles every rule pattern with the (?i) flag.
	CaseInsensitive bool `json:"case_insensitive,omitempty" yaml:"case_insensitive,omitempty"`
}

// applyDefaults fills zero-valued options with defaults.
func (opts *Options) applyDefaults() {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}

	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
}

// String returns text form of the part: literal text or reduced string value.
func (p Part[T]) String() string {
	if p.Literal {
		return p.Text
	}

	if s, ok := any(p.Value).(string); ok {
		return s
	}

	return p.Text
}

// Concat joins literal text and reduced values in order.
// It is the usual root reducer for string results.
func Concat(parts []Part[string]) string {
	var b strings.Builder
	for i := range parts {
		if parts[i].Literal {
			b.WriteString(parts[i].Text)
			continue
		}

		b.WriteString(parts[i].Value)
	}

	return b.String()
}

// Label returns rule name, or pattern source when name is empty.
func (r *Rule[T]) Label() string {
	if r.Name != "" {
		return r.Name
	}

	if r.Pattern != nil {
		return r.Pattern.String()
	}

	return "<nil pattern>"
}
