// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retree

package retree

// MergeRules merges rule slices preserving input order.
//
// Order matters: on equal payload lengths the earlier rule wins.
func MergeRules[T any](ruleSets ...[]Rule[T]) []Rule[T] {
	total := 0
	for _, set := range ruleSets {
		total += len(set)
	}

	out := make([]Rule[T], 0, total)
	for _, set := range ruleSets {
		out = append(out, set...)
	}

	return out
}
