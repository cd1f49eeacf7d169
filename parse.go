// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retree

package retree

import (
	"fmt"
	"io"
	"reflect"
	"regexp"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/goccy/go-yaml"
)

// RuleDefinition is one declarative rule as stored in YAML rule files.
type RuleDefinition struct {
	// Name is optional rule label.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// Pattern is RE2 regular expression source.
	Pattern string `json:"pattern" yaml:"pattern"`
	// Reduce is an expr expression producing the node string.
	// Environment: text (children joined), parts (children as list).
	Reduce string `json:"reduce,omitempty" yaml:"reduce,omitempty"`
	// Group selects payload capture group.
	Group int `json:"group,omitempty" yaml:"group,omitempty"`
	// Terminal disables payload re-scanning.
	Terminal bool `json:"terminal,omitempty" yaml:"terminal,omitempty"`
}

// RuleFile is YAML rule file document.
type RuleFile struct {
	Rules []RuleDefinition `json:"rules" yaml:"rules"`
}

// ParseRules parses YAML rule definitions from reader and compiles them.
//
// Semantics:
// - empty document yields no rules
// - unknown keys are rejected
// - empty reduce leaves Rule.Reduce nil, evaluation then fails with ErrMissingReducer
// - reduce runtime failures return the joined children text unchanged
func ParseRules(r io.Reader) ([]Rule[string], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read rules: %w", err)
	}

	if strings.TrimSpace(string(data)) == "" {
		return nil, nil
	}

	var doc RuleFile
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("decode rules: %w", err)
	}

	return CompileDefinitions(doc.Rules)
}

// ParseRulesString parses rules from string input.
func ParseRulesString(src string) ([]Rule[string], error) {
	return ParseRules(strings.NewReader(src))
}

// CompileDefinitions compiles declarative definitions into rules preserving order.
func CompileDefinitions(defs []RuleDefinition) ([]Rule[string], error) {
	rules := make([]Rule[string], 0, len(defs))
	for i, def := range defs {
		if strings.TrimSpace(def.Pattern) == "" {
			return nil, fmt.Errorf("rule %d: %w: empty", i, ErrInvalidPattern)
		}

		rule, err := NewRule[string](def.Name, def.Pattern, def.Group, nil, def.Terminal)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}

		if strings.TrimSpace(def.Reduce) != "" {
			reduce, err := compileReducer(def.Reduce)
			if err != nil {
				return nil, fmt.Errorf("%w: rule %d (%s): reduce: %v", ErrInvalidRule, i, rule.Label(), err)
			}

			rule.Reduce = reduce
		}

		rules = append(rules, rule)
	}

	return rules, nil
}

// compileReducer compiles reduce expression into string reducer.
func compileReducer(src string) (Reducer[string], error) {
	opts := append([]expr.Option{
		expr.Env(reduceEnv("", nil)),
		expr.AsKind(reflect.String),
	}, reduceFunctions()...)

	program, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, err
	}

	return func(parts []Part[string]) string {
		return runReducer(program, parts)
	}, nil
}

// runReducer evaluates compiled reduce program for one node.
func runReducer(program *vm.Program, parts []Part[string]) string {
	texts := make([]string, len(parts))
	for i := range parts {
		texts[i] = parts[i].String()
	}

	text := strings.Join(texts, "")

	out, err := expr.Run(program, reduceEnv(text, texts))
	if err != nil {
		return text
	}

	s, ok := out.(string)
	if !ok {
		return text
	}

	return s
}

// reduceEnv builds expression environment of one node.
func reduceEnv(text string, parts []string) map[string]any {
	if parts == nil {
		parts = []string{}
	}

	return map[string]any{
		"text":  text,
		"parts": parts,
	}
}

// reduceFunctions returns helper functions available to reduce expressions.
func reduceFunctions() []expr.Option {
	return []expr.Option{
		expr.Function("chunk", func(params ...any) (any, error) {
			return Chunk(params[0].(string), params[1].(int), params[2].(string)), nil
		},
			new(func(string, int, string) string)),
		expr.Function("reReplace", func(params ...any) (any, error) {
			re, err := regexp.Compile(params[1].(string))
			if err != nil {
				return nil, err
			}

			return re.ReplaceAllString(params[0].(string), params[2].(string)), nil
		},
			new(func(string, string, string) string)),
		expr.Function("digits", func(params ...any) (any, error) {
			return Digits(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

// Chunk splits s into n-character groups joined by sep.
func Chunk(s string, n int, sep string) string {
	if n <= 0 || s == "" {
		return s
	}

	runes := []rune(s)
	var b strings.Builder
	for i := 0; i < len(runes); i += n {
		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(string(runes[i:min(i+n, len(runes))]))
	}

	return b.String()
}

// Digits returns only ASCII digits of s.
func Digits(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}

	return b.String()
}
