// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retree

package retree

import (
	"fmt"
	"regexp"
	"strings"
)

// compiledRule is matcher-internal validated representation of one rule.
type compiledRule[T any] struct {
	// re is pattern used for matching, recompiled when case folding is requested.
	re *regexp.Regexp
	// source is original caller rule, referenced by produced nodes.
	source *Rule[T]
	// index is rule position in matcher input order.
	index int
	// group is validated payload capture group.
	group int
}

// NewRule compiles pattern source into a rule.
func NewRule[T any](name, pattern string, group int, reduce Reducer[T], terminal bool) (Rule[T], error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Rule[T]{}, fmt.Errorf("%w: compile %q: %v", ErrInvalidPattern, pattern, err)
	}

	rule := Rule[T]{
		Name:     name,
		Pattern:  re,
		Group:    group,
		Reduce:   reduce,
		Terminal: terminal,
	}

	if err := validateGroup(re, group); err != nil {
		return Rule[T]{}, fmt.Errorf("%w: rule %q: %v", ErrInvalidRule, rule.Label(), err)
	}

	return rule, nil
}

// MustRule is like NewRule but panics when pattern or group is invalid.
// It simplifies safe initialization of package-level rule sets.
func MustRule[T any](name, pattern string, group int, reduce Reducer[T], terminal bool) Rule[T] {
	rule, err := NewRule(name, pattern, group, reduce, terminal)
	if err != nil {
		panic(err)
	}

	return rule
}

// compileRule validates one source rule and prepares its matching regexp.
func compileRule[T any](rule *Rule[T], index int, caseInsensitive bool) (*compiledRule[T], error) {
	if rule.Pattern == nil {
		return nil, fmt.Errorf("%w: rule %d (%s): nil pattern", ErrInvalidRule, index, rule.Label())
	}

	if err := validateGroup(rule.Pattern, rule.Group); err != nil {
		return nil, fmt.Errorf("%w: rule %d (%s): %v", ErrInvalidRule, index, rule.Label(), err)
	}

	re := rule.Pattern
	if caseInsensitive && !strings.HasPrefix(re.String(), "(?i)") {
		folded, err := regexp.Compile("(?i)" + re.String())
		if err != nil {
			return nil, fmt.Errorf("%w: rule %d (%s): fold case: %v", ErrInvalidPattern, index, rule.Label(), err)
		}

		re = folded
	}

	return &compiledRule[T]{
		re:     re,
		source: rule,
		index:  index,
		group:  rule.Group,
	}, nil
}

// validateGroup checks that group addresses an existing capture group.
func validateGroup(re *regexp.Regexp, group int) error {
	if group < 0 || group > re.NumSubexp() {
		return fmt.Errorf("capture group %d out of range [0, %d]", group, re.NumSubexp())
	}

	return nil
}

// find matches rule once against text and returns byte bounds of full match and payload.
// ok is false when rule does not match or payload is empty.
func (r *compiledRule[T]) find(text string) (matchStart, matchEnd, payloadStart, payloadEnd int, ok bool) {
	loc := r.re.FindStringSubmatchIndex(text)
	if loc == nil {
		return 0, 0, 0, 0, false
	}

	payloadStart, payloadEnd = loc[2*r.group], loc[2*r.group+1]
	// Non-participating group reports -1 bounds; empty payload is not a candidate either.
	if payloadStart < 0 || payloadEnd <= payloadStart {
		return 0, 0, 0, 0, false
	}

	return loc[0], loc[1], payloadStart, payloadEnd, true
}
