// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retree

package markdown

import (
	"testing"

	"github.com/woozymasta/retree"
)

func TestRules(t *testing.T) {
	t.Parallel()

	rules := Rules()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "h1", in: "# Title", want: "<h1>Title</h1>"},
		{name: "h2", in: "## Sub", want: "<h2>Sub</h2>"},
		{name: "h4", in: "#### Deep", want: "<h4>Deep</h4>"},
		{name: "bold", in: "**bold** text", want: "<strong>bold</strong> text"},
		{name: "italic", in: "*it*", want: "<em>it</em>"},
		{name: "nested emphasis", in: "**a *b* c**", want: "<strong>a <em>b</em> c</strong>"},
		{name: "inline code escaped", in: "x `<b>`", want: "x <code>&lt;b&gt;</code>"},
		{name: "inline code verbatim", in: "`a*b*c`", want: "<code>a*b*c</code>"},
		{name: "code block", in: "```\nx **y**\n```", want: "<pre><code>\nx **y**\n</code></pre>"},
		{name: "link", in: "see [Go](https://go.dev)", want: `see <a href="https://go.dev">Go</a>`},
		{name: "link text escaped", in: "[a<b](x?y&z)", want: `<a href="x?y&amp;z">a&lt;b</a>`},
		{name: "image", in: "![alt](a.png)", want: `<img src="a.png" alt="alt">`},
		{name: "heading then text", in: "# A\ntext **b**", want: "<h1>A</h1>\ntext <strong>b</strong>"},
		{name: "plain", in: "nothing here", want: "nothing here"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := retree.Transform(tt.in, rules, retree.Concat)
			if err != nil {
				t.Fatalf("Transform(%q): %v", tt.in, err)
			}

			if got != tt.want {
				t.Fatalf("Transform(%q)=%q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRulesAdditional(t *testing.T) {
	t.Parallel()

	extra := retree.MustRule("mark", `==(.*?)==`, 1, wrap("mark"), false)
	rules := Rules(extra)

	if len(rules) != 11 {
		t.Fatalf("len(rules)=%d, want 11", len(rules))
	}

	if rules[len(rules)-1].Name != "mark" {
		t.Fatalf("additional rule must be appended last, got %q", rules[len(rules)-1].Name)
	}

	got, err := retree.Transform("==hi==", rules, retree.Concat)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}

	if got != "<mark>hi</mark>" {
		t.Fatalf("Transform=%q", got)
	}
}
