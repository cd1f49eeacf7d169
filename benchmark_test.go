// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retree

package retree

import (
	"fmt"
	"strings"
	"testing"
)

const (
	benchRuleCount = 32
	benchLines     = 256
)

var (
	benchTreeSink   *Node[string]
	benchStringSink string
)

func BenchmarkNewMatcher(b *testing.B) {
	rules := buildBenchmarkRules(benchRuleCount)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, err := NewMatcher(rules, Options{})
		if err != nil {
			b.Fatal(err)
		}

		if m.Len() == 0 {
			b.Fatal("empty matcher")
		}
	}
}

func BenchmarkBuild(b *testing.B) {
	m, err := NewMatcher(buildBenchmarkRules(benchRuleCount), Options{})
	if err != nil {
		b.Fatal(err)
	}

	input := buildBenchmarkInput(benchLines)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		root, err := m.Build(input)
		if err != nil {
			b.Fatal(err)
		}

		benchTreeSink = root
	}
}

func BenchmarkEvaluate(b *testing.B) {
	m, err := NewMatcher(buildBenchmarkRules(benchRuleCount), Options{})
	if err != nil {
		b.Fatal(err)
	}

	input := buildBenchmarkInput(benchLines)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// fresh tree per iteration, memoized values would skip reducers
		root, err := m.Build(input)
		if err != nil {
			b.Fatal(err)
		}

		out, err := Evaluate(root, Concat)
		if err != nil {
			b.Fatal(err)
		}

		benchStringSink = out
	}
}

func buildBenchmarkRules(n int) []Rule[string] {
	rules := []Rule[string]{
		MustRule("bold", `\*\*(.*?)\*\*`, 1, wrapTag("strong"), false),
		MustRule("italic", `_(.*?)_`, 1, wrapTag("em"), false),
		MustRule("code", "`(.*?)`", 1, wrapTag("code"), true),
	}

	for i := len(rules); i < n; i++ {
		rules = append(rules, MustRule(fmt.Sprintf("tag-%d", i), fmt.Sprintf(`<t%d>(.*?)</t%d>`, i, i), 1, wrapTag("span"), false))
	}

	return rules
}

func buildBenchmarkInput(lines int) string {
	var b strings.Builder
	for i := 0; i < lines; i++ {
		fmt.Fprintf(&b, "line %d **bold _nested %d_ text** and `code %d` <t%d>tag</t%d>\n", i, i, i, 3+i%29, 3+i%29)
	}

	return b.String()
}
