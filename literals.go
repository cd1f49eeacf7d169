// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retree

package retree

import (
	"regexp"
	"strings"
)

// LiteralRules converts word list to terminal rules matching each word literally.
//
// Words are trimmed and quoted. Words starting and ending with word characters are bounded
// by `\b`, which only decides whether a rule matches at all: the split point is the first
// occurrence of the word in the scanned text, so once "go" appears standalone, an earlier
// "go" inside "gopher" is the one that gets split out. Empty and duplicate values are
// skipped. Returned rules preserve input order and are named after their word.
func LiteralRules[T any](words []string, reduce Reducer[T]) []Rule[T] {
	rules := make([]Rule[T], 0, len(words))
	seen := make(map[string]struct{}, len(words))

	for _, word := range words {
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}

		if _, dup := seen[word]; dup {
			continue
		}

		seen[word] = struct{}{}

		pattern := regexp.QuoteMeta(word)
		if isWordByte(word[0]) && isWordByte(word[len(word)-1]) {
			pattern = `\b` + pattern + `\b`
		}

		rules = append(rules, Rule[T]{
			Name:     word,
			Pattern:  regexp.MustCompile(pattern),
			Reduce:   reduce,
			Terminal: true,
		})
	}

	return rules
}

// isWordByte reports whether b is an ASCII word character as understood by `\b`.
func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z')
}
