// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package textnorm folds strings into the lookup form used for titles and
// people: canonical decomposition, nonspacing marks removed, lower-cased.
//
//	textnorm.Normalize("Amélie")  // "amelie"
//	textnorm.Normalize("AMELIE")  // "amelie"
package textnorm

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize returns the folded form of s. It is idempotent:
// Normalize(Normalize(s)) == Normalize(s).
//
// Lower-casing can reintroduce combining marks (U+0130 lowers to "i" plus
// U+0307), so the decompose and strip steps run after it as well.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		cases.Lower(language.Und),
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
