// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retree

package retree

import (
	"errors"
	"testing"
)

const testRulesYAML = `
# markdown-ish subset with formatters
rules:
  - name: bold
    pattern: '\*\*(.*?)\*\*'
    group: 1
    reduce: '"<b>" + text + "</b>"'
  - name: iban
    pattern: '[A-Z]{2}\d{2}[A-Z0-9]{1,30}'
    terminal: true
    reduce: 'chunk(text, 4, " ")'
  - name: phone
    pattern: '\+48\d{9}'
    terminal: true
    reduce: 'reReplace(text, "^(\\+48)(\\d{3})(\\d{3})(\\d{3})$", "$1 $2 $3 $4")'
  - name: shout
    pattern: '!(\w+)!'
    group: 1
    reduce: 'upper(text)'
  - name: tel
    pattern: 'tel: ([\d-]+)'
    group: 1
    reduce: 'digits(text)'
  - name: broken-index
    pattern: '<(\w+)>'
    group: 1
    reduce: 'parts[5]'
  - name: no-reduce
    pattern: '~(\w+)~'
    group: 1
`

func TestParseRules(t *testing.T) {
	t.Parallel()

	rules, err := ParseRulesString(testRulesYAML)
	if err != nil {
		t.Fatalf("ParseRulesString: %v", err)
	}

	if len(rules) != 7 {
		t.Fatalf("len(rules)=%d, want 7", len(rules))
	}

	if rules[0].Name != "bold" || rules[0].Group != 1 || rules[0].Terminal {
		t.Fatalf("rule[0]=%+v", rules[0])
	}

	if !rules[1].Terminal || rules[1].Group != 0 {
		t.Fatalf("rule[1]=%+v", rules[1])
	}

	if rules[6].Reduce != nil {
		t.Fatalf("rule without reduce must keep nil reducer")
	}

	tests := []struct {
		in   string
		want string
	}{
		{in: "**hi** there", want: "<b>hi</b> there"},
		{in: "GB29NWBK60161331926819", want: "GB29 NWBK 6016 1331 9268 19"},
		{in: "call +48999999999", want: "call +48 999 999 999"},
		{in: "so !loud!", want: "so LOUD"},
		{in: "tel: 12-34", want: "1234"},
		{in: "<ab>", want: "ab"},
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

	if _, err := Transform("~x~", rules, Concat); !errors.Is(err, ErrMissingReducer) {
		t.Fatalf("err=%v, want ErrMissingReducer", err)
	}
}

func TestParseRulesEmpty(t *testing.T) {
	t.Parallel()

	rules, err := ParseRulesString("  \n")
	if err != nil || len(rules) != 0 {
		t.Fatalf("rules=%v err=%v, want empty", rules, err)
	}
}

func TestParseRulesErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want error
	}{
		{name: "bad pattern", src: "rules:\n  - pattern: '('\n", want: ErrInvalidPattern},
		{name: "empty pattern", src: "rules:\n  - name: x\n", want: ErrInvalidPattern},
		{name: "group out of range", src: "rules:\n  - pattern: 'a'\n    group: 1\n", want: ErrInvalidRule},
		{name: "bad expression", src: "rules:\n  - pattern: 'a'\n    reduce: 'text +'\n", want: ErrInvalidRule},
		{name: "non string expression", src: "rules:\n  - pattern: 'a'\n    reduce: '1 + 2'\n", want: ErrInvalidRule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseRulesString(tt.src)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err=%v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseRulesRejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	if _, err := ParseRulesString("rules:\n  - pattern: 'a'\n    stop: true\n"); err == nil {
		t.Fatalf("unknown key must be rejected")
	}
}

func TestChunkAndDigits(t *testing.T) {
	t.Parallel()

	if got := Chunk("1234567812345678", 4, " "); got != "1234 5678 1234 5678" {
		t.Fatalf("Chunk=%q", got)
	}

	if got := Chunk("żółćab", 4, "-"); got != "żółć-ab" {
		t.Fatalf("Chunk=%q", got)
	}

	if got := Chunk("abc", 0, "-"); got != "abc" {
		t.Fatalf("Chunk=%q", got)
	}

	if got := Digits("+48 (999) 99-9"); got != "48999999" {
		t.Fatalf("Digits=%q", got)
	}
}
