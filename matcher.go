// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retree

package retree

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"
)

// Matcher builds match trees against compiled ordered rules.
//
// Matcher is read-only after construction and safe for concurrent use.
type Matcher[T any] struct {
	logger   *slog.Logger
	compiled []*compiledRule[T]
	maxDepth int
	debug    bool
}

// candidate is the currently best rule match inside one scan window.
type candidate[T any] struct {
	rule         *compiledRule[T]
	matchStart   int
	matchEnd     int
	payloadStart int
	payloadEnd   int
	payloadLen   int
}

// NewMatcher validates and compiles ordered rules into matcher.
//
// Rules are referenced, not copied: produced nodes point back at the caller rules,
// so rules must stay unchanged while the matcher and its trees are in use.
func NewMatcher[T any](rules []Rule[T], opts Options) (*Matcher[T], error) {
	opts.applyDefaults()

	compiled := make([]*compiledRule[T], 0, len(rules))
	for i := range rules {
		cr, err := compileRule(&rules[i], i, opts.CaseInsensitive)
		if err != nil {
			return nil, err
		}

		compiled = append(compiled, cr)
	}

	return &Matcher[T]{
		compiled: compiled,
		maxDepth: opts.MaxDepth,
		logger:   opts.Logger,
		debug:    opts.Logger.Enabled(context.Background(), slog.LevelDebug),
	}, nil
}

// Len returns number of compiled rules.
func (m *Matcher[T]) Len() int {
	return len(m.compiled)
}

// Build scans input and returns root node of the match tree.
func (m *Matcher[T]) Build(input string) (*Node[T], error) {
	if !utf8.ValidString(input) {
		return nil, fmt.Errorf("%w: not valid UTF-8 text", ErrInvalidInput)
	}

	root := &Node[T]{
		Kind:      KindRoot,
		Raw:       input,
		Match:     input,
		RuleIndex: -1,
	}

	if err := m.scan(input, 0, root, 0); err != nil {
		return nil, err
	}

	return root, nil
}

// Transform builds the match tree for input and folds it with rootReducer.
func (m *Matcher[T]) Transform(input string, rootReducer Reducer[T]) (T, error) {
	root, err := m.Build(input)
	if err != nil {
		var zero T
		return zero, err
	}

	return Evaluate(root, rootReducer)
}

// scan appends children for text to parent.
//
// Scan policy:
// - longest payload wins, equal payload lengths keep rule order
// - split point is the first occurrence of the winning full match in text
// - payload is scanned again unless rule is terminal or payload equals full match
func (m *Matcher[T]) scan(text string, offset int, parent *Node[T], depth int) error {
	if depth > m.maxDepth {
		return fmt.Errorf("%w: depth %d exceeds %d", ErrRecursionLimit, depth, m.maxDepth)
	}

	for text != "" {
		best, ok := m.selectCandidate(text)
		if !ok {
			parent.Children = append(parent.Children, newLiteral[T](text, offset))
			break
		}

		full := text[best.matchStart:best.matchEnd]
		// split at the first textual occurrence, which may precede the reported match
		at := strings.Index(text, full)
		if at > 0 {
			parent.Children = append(parent.Children, newLiteral[T](text[:at], offset))
		}

		rel := best.payloadStart - best.matchStart
		payload := full[rel : rel+best.payloadEnd-best.payloadStart]
		payloadOffset := offset + at + rel

		node := &Node[T]{
			Kind:      KindPattern,
			Rule:      best.rule.source,
			RuleIndex: best.rule.index,
			Raw:       payload,
			Match:     full,
			Offset:    offset + at,
		}

		if m.debug {
			m.logger.Debug("rule selected",
				slog.String("rule", best.rule.source.Label()),
				slog.Int("index", best.rule.index),
				slog.Int("offset", node.Offset),
				slog.Int("payload_len", best.payloadLen),
				slog.Int("depth", depth),
			)
		}

		if payload == full || best.rule.source.Terminal {
			node.Children = []*Node[T]{newLiteral[T](payload, payloadOffset)}
		} else if err := m.scan(payload, payloadOffset, node, depth+1); err != nil {
			return err
		}

		parent.Children = append(parent.Children, node)

		advance := at + len(full)
		text = text[advance:]
		offset += advance
	}

	return nil
}

// selectCandidate returns rule match with the longest payload in characters.
func (m *Matcher[T]) selectCandidate(text string) (candidate[T], bool) {
	var best candidate[T]
	found := false

	for _, cr := range m.compiled {
		matchStart, matchEnd, payloadStart, payloadEnd, ok := cr.find(text)
		if !ok {
			continue
		}

		payloadLen := utf8.RuneCountInString(text[payloadStart:payloadEnd])
		// Strictly greater: on equal length the earlier rule stays selected.
		if found && payloadLen <= best.payloadLen {
			continue
		}

		best = candidate[T]{
			rule:         cr,
			matchStart:   matchStart,
			matchEnd:     matchEnd,
			payloadStart: payloadStart,
			payloadEnd:   payloadEnd,
			payloadLen:   payloadLen,
		}
		found = true
	}

	return best, found
}

// Build compiles rules with default options and builds the match tree for input.
func Build[T any](input string, rules []Rule[T]) (*Node[T], error) {
	return BuildWithOptions(input, rules, Options{})
}

// BuildWithOptions compiles rules with opts and builds the match tree for input.
func BuildWithOptions[T any](input string, rules []Rule[T], opts Options) (*Node[T], error) {
	m, err := NewMatcher(rules, opts)
	if err != nil {
		return nil, err
	}

	return m.Build(input)
}

// Transform builds the match tree for input and folds it with rootReducer.
func Transform[T any](input string, rules []Rule[T], rootReducer Reducer[T]) (T, error) {
	m, err := NewMatcher(rules, Options{})
	if err != nil {
		var zero T
		return zero, err
	}

	return m.Transform(input, rootReducer)
}
