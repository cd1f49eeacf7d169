// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retree

/*
Package retree builds a tree out of flat text by recursively matching an ordered set of
regular-expression rules, then folds the tree into one value with per-rule reducers.

The package is intentionally generic: the same engine drives markdown-to-HTML conversion,
number and identifier formatting, keyword highlighting and any other pipeline that can be
described as "find spans, rewrite spans, keep the rest".

Basic flow:
  - describe rules in code (`Rule`, `NewRule`, `LiteralRules`)
  - optionally parse rules from YAML (`ParseRules`) or load them from files (`LoadRulesFile`)
  - compile matcher (`NewMatcher`)
  - build the tree (`Build`) and fold it (`Evaluate`), or do both at once (`Transform`)

Matching policy, applied at every step of the scan:
  - every rule is matched once against the remaining text
  - a rule is a candidate only when its capture group is non-empty
  - the candidate with the longest payload (in characters) wins, ties keep rule order
  - the text is split at the first occurrence of the winning full match
  - the payload is scanned again unless the rule is terminal or the payload is the full match

For named rule sets shared between callers, use `Registry`:
  - register in-memory sets with `Register`
  - point it at a directory of `<name>.yaml` rule files
  - registry caches parsed sets, including load errors
*/
package retree
