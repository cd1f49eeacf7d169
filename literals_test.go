// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retree

package retree

import "testing"

func TestLiteralRules(t *testing.T) {
	t.Parallel()

	rules := LiteralRules([]string{"go", " go ", "", "c++"}, wrapTag("kw"))
	if len(rules) != 2 {
		t.Fatalf("len(rules)=%d, want 2", len(rules))
	}

	if rules[0].Name != "go" || rules[0].Pattern.String() != `\bgo\b` || !rules[0].Terminal {
		t.Fatalf("rule[0]=%q %q terminal=%v", rules[0].Name, rules[0].Pattern, rules[0].Terminal)
	}

	if rules[1].Pattern.String() != `c\+\+` {
		t.Fatalf("rule[1] pattern=%q", rules[1].Pattern)
	}

	tests := []struct {
		in   string
		want string
	}{
		{in: "go gopher", want: "<kw>go</kw> gopher"},
		{in: "x c++", want: "x <kw>c++</kw>"},
		{in: "gopher", want: "gopher"},
		// split lands on the first textual "go", inside "gopher"
		{in: "gopher go", want: "<kw>go</kw>pher <kw>go</kw>"},
	}

	for _, tt := range tests {
		got, err := Transform(tt.in, rules, Concat)
		if err != nil {
			t.Fatalf("Transform(%q): %v", tt.in, err)
		}

		if got != tt.want {
			t.Fatalf("Transform(%q)=%q, want %q", tt.in, got, tt.want)
		}
	}
}
