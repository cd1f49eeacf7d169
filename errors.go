// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retree

package retree

import "errors"

// Sentinel errors for retree operations.
var (
	// ErrInvalidInput indicates input that is not valid UTF-8 text.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidRule indicates malformed rule: missing pattern or out of range capture group.
	ErrInvalidRule = errors.New("invalid rule")
	// ErrInvalidPattern indicates a rule pattern that does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrMissingReducer indicates evaluation reached a pattern node whose rule has no reducer.
	ErrMissingReducer = errors.New("missing reducer")
	// ErrRecursionLimit indicates matching recursion exceeded configured maximum depth.
	ErrRecursionLimit = errors.New("recursion limit exceeded")
	// ErrInvalidRuleSetName indicates a rule set name unusable as registry key or file name.
	ErrInvalidRuleSetName = errors.New("invalid rule set name")
	// ErrUnknownRuleSet indicates a rule set that is neither registered nor present on disk.
	ErrUnknownRuleSet = errors.New("unknown rule set")
	// ErrNilRegistry indicates a nil Registry receiver.
	ErrNilRegistry = errors.New("registry is nil")
)
