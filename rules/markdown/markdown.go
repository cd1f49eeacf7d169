// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retree

// Package markdown provides a small markdown-to-HTML rule set for retree.
package markdown

import (
	"html"
	"regexp"

	"github.com/woozymasta/retree"
)

var (
	linkRE  = regexp.MustCompile(`^\[(.*?)\]\((.*?)\)$`)
	imageRE = regexp.MustCompile(`^!\[(.*?)\]\((.*?)\)$`)
)

// Rules returns base markdown rules followed by additional rules.
//
// Code rules are terminal and declared before emphasis rules, so markup inside code is kept
// verbatim (HTML-escaped).
func Rules(additional ...retree.Rule[string]) []retree.Rule[string] {
	base := []retree.Rule[string]{
		retree.MustRule("h1", `(?m)^# (.*)$`, 1, wrap("h1"), false),
		retree.MustRule("h2", `(?m)^## (.*)$`, 1, wrap("h2"), false),
		retree.MustRule("h3", `(?m)^### (.*)$`, 1, wrap("h3"), false),
		retree.MustRule("h4", `(?m)^#### (.*)$`, 1, wrap("h4"), false),
		retree.MustRule("code-block", "```([\\s\\S]*?)```", 1, code("<pre><code>", "</code></pre>"), true),
		retree.MustRule("code", "`([^`]+)`", 1, code("<code>", "</code>"), true),
		retree.MustRule("bold", `\*\*(.*?)\*\*`, 1, wrap("strong"), false),
		retree.MustRule("italic", `\*(.*?)\*`, 1, wrap("em"), false),
		retree.MustRule("image", `!\[(.*?)\]\((.*?)\)`, 0, image, false),
		retree.MustRule("link", `\[(.*?)\]\((.*?)\)`, 0, link, false),
	}

	return retree.MergeRules(base, additional)
}

// wrap returns reducer enclosing joined children into tag.
func wrap(tag string) retree.Reducer[string] {
	open, closing := "<"+tag+">", "</"+tag+">"
	return func(parts []retree.Part[string]) string {
		return open + retree.Concat(parts) + closing
	}
}

// code returns reducer escaping verbatim payload between prefix and suffix.
func code(prefix, suffix string) retree.Reducer[string] {
	return func(parts []retree.Part[string]) string {
		return prefix + html.EscapeString(retree.Concat(parts)) + suffix
	}
}

// link renders "[text](url)".
func link(parts []retree.Part[string]) string {
	src := retree.Concat(parts)
	m := linkRE.FindStringSubmatch(src)
	if m == nil {
		return src
	}

	return `<a href="` + html.EscapeString(m[2]) + `">` + html.EscapeString(m[1]) + `</a>`
}

// image renders "![alt](url)".
func image(parts []retree.Part[string]) string {
	src := retree.Concat(parts)
	m := imageRE.FindStringSubmatch(src)
	if m == nil {
		return src
	}

	return `<img src="` + html.EscapeString(m[2]) + `" alt="` + html.EscapeString(m[1]) + `">`
}
