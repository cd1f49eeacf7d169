// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retree

/*
Package textfmt provides terminal retree rules that normalize numbers, identifiers and
addresses found in free text.

Every rule matches the whole span (group 0) and is terminal, so formatters never see
nested markup. Rules are returned by constructors and can be combined freely with other
rule sets; on overlapping spans the longest match wins.
*/
package textfmt

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/woozymasta/retree"
)

var (
	phoneSeparatorRE = regexp.MustCompile(`[-.\s]`)
	phoneParensRE    = regexp.MustCompile(`\((.*?)\)`)
	phoneGroupsRE    = regexp.MustCompile(`(\+?\d{1,3})(\d{3})(\d{3})(\d{3})`)
	peselRE          = regexp.MustCompile(`(\d{3})(\d{3})(\d{3})(\d{2})`)
	nipRE            = regexp.MustCompile(`(\d{3})(\d{3})(\d{2})(\d{2})`)
	postalRE         = regexp.MustCompile(`(\d{2})(\d{3})`)
)

const emailPattern = `\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`

// Phone formats international phone numbers.
//
// "+48999999999" -> "+48 999 999 999", "+1 (123) 456-7890" -> "+1 123 456 7890".
func Phone() retree.Rule[string] {
	return retree.MustRule("phone", `\+?\d{1,3}[-.\s]?\(?\d{1,4}\)?[-.\s]?\d{1,4}[-.\s]?\d{1,4}[-.\s]?\d{1,9}`, 0,
		func(parts []retree.Part[string]) string {
			cleaned := phoneSeparatorRE.ReplaceAllString(retree.Concat(parts), " ")
			cleaned = phoneParensRE.ReplaceAllString(cleaned, "$1")
			return replaceFirst(phoneGroupsRE, cleaned, "$1 $2 $3 $4")
		}, true)
}

// IBAN groups IBAN numbers by four characters.
//
// "GB29NWBK60161331926819" -> "GB29 NWBK 6016 1331 9268 19".
func IBAN() retree.Rule[string] {
	return retree.MustRule("iban", `[A-Z]{2}\d{2}[A-Z0-9]{1,30}`, 0, chunk(4, " "), true)
}

// CreditCard groups 16-digit card numbers by four digits.
func CreditCard() retree.Rule[string] {
	return retree.MustRule("credit-card", `\d{16}`, 0, chunk(4, " "), true)
}

// IPAddress converts 12-digit zero padded IPv4 addresses to dotted form.
//
// "192168001001" -> "192.168.1.1".
func IPAddress() retree.Rule[string] {
	return retree.MustRule("ip-address", `\d{12}`, 0, func(parts []retree.Part[string]) string {
		raw := retree.Concat(parts)
		octets := make([]string, 0, 4)
		for i := 0; i+3 <= len(raw); i += 3 {
			n, err := strconv.Atoi(raw[i : i+3])
			if err != nil {
				return raw
			}

			octets = append(octets, strconv.Itoa(n))
		}

		return strings.Join(octets, ".")
	}, true)
}

// PESEL formats Polish PESEL numbers: "12345678901" -> "123-456-789-01".
func PESEL() retree.Rule[string] {
	return retree.MustRule("pesel", `\d{11}`, 0, replace(peselRE, "$1-$2-$3-$4"), true)
}

// NIP formats Polish NIP numbers: "1234567890" -> "123-456-78-90".
func NIP() retree.Rule[string] {
	return retree.MustRule("nip", `\d{10}`, 0, replace(nipRE, "$1-$2-$3-$4"), true)
}

// PostalCode formats Polish postal codes: "12345" -> "12-345".
func PostalCode() retree.Rule[string] {
	return retree.MustRule("postal-code", `\d{5}`, 0, replace(postalRE, "$1-$2"), true)
}

// GPS annotates "lat,lon" pairs: "52.2296756,21.0122287" -> "52.2296756° N, 21.0122287° E".
func GPS() retree.Rule[string] {
	return retree.MustRule("gps", `\b-?\d+\.\d+,-?\d+\.\d+\b`, 0, func(parts []retree.Part[string]) string {
		lat, lon, _ := strings.Cut(retree.Concat(parts), ",")
		return lat + "° N, " + lon + "° E"
	}, true)
}

// EmailLower lower-cases email addresses.
func EmailLower() retree.Rule[string] {
	return retree.MustRule("email-lower", emailPattern, 0, func(parts []retree.Part[string]) string {
		return strings.ToLower(strings.TrimSpace(retree.Concat(parts)))
	}, true)
}

// URLLink wraps URLs into anchors, adding "https://" when scheme is missing.
func URLLink() retree.Rule[string] {
	return retree.MustRule("url-link", `\b(?:https?://)?[A-Za-z0-9.-]+\.[A-Za-z]{2,}(/[^\s]*)?\b`, 0,
		func(parts []retree.Part[string]) string {
			url := retree.Concat(parts)
			if !strings.HasPrefix(url, "http") {
				url = "https://" + url
			}

			return `<a href="` + url + `">` + url + `</a>`
		}, true)
}

// EmailLink wraps lower-cased email addresses into mailto anchors.
func EmailLink() retree.Rule[string] {
	return retree.MustRule("email-link", emailPattern, 0, func(parts []retree.Part[string]) string {
		email := strings.ToLower(strings.TrimSpace(retree.Concat(parts)))
		return `<a href="mailto:` + email + `">` + email + `</a>`
	}, true)
}

// All returns every formatter except EmailLower, which competes with EmailLink for the same
// spans. Fixed-width numeric formats precede Phone, whose loose pattern also spans plain
// digit runs, so equal-length ties resolve to them.
func All() []retree.Rule[string] {
	return []retree.Rule[string]{
		EmailLink(),
		URLLink(),
		GPS(),
		IBAN(),
		CreditCard(),
		IPAddress(),
		PESEL(),
		NIP(),
		PostalCode(),
		Phone(),
	}
}

// chunk returns reducer grouping text by n characters.
func chunk(n int, sep string) retree.Reducer[string] {
	return func(parts []retree.Part[string]) string {
		return retree.Chunk(retree.Concat(parts), n, sep)
	}
}

// replace returns reducer applying first-match template replacement.
func replace(re *regexp.Regexp, template string) retree.Reducer[string] {
	return func(parts []retree.Part[string]) string {
		return replaceFirst(re, retree.Concat(parts), template)
	}
}

// replaceFirst expands template for the first match of re and keeps the rest of s.
func replaceFirst(re *regexp.Regexp, s, template string) string {
	loc := re.FindStringSubmatchIndex(s)
	if loc == nil {
		return s
	}

	expanded := re.ExpandString(nil, template, s, loc)
	return s[:loc[0]] + string(expanded) + s[loc[1]:]
}
