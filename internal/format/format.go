// Package format holds the string and date helpers shared by the pipeline:
// slugs for tags and ids, reading time estimates and display dates.
package format

import (
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const wordsPerMinute = 200

var (
	whitespaceRe = regexp.MustCompile(`[\s\p{Zs}\x{FEFF}]+`)
	nonWordRe    = regexp.MustCompile(`[^\w-]+`)
	tagRe        = regexp.MustCompile(`<[^>]+>`)
)

// combiningMarks matches the Combining Diacritical Marks block only, so
// "é" folds to "e" while other marks are left to the non-word filter.
var combiningMarks = runes.Predicate(func(r rune) bool {
	return r >= 0x0300 && r <= 0x036F
})

// Slugify turns free text into a URL-safe identifier: accents folded,
// lower case, whitespace runs joined with '-', anything outside
// [A-Za-z0-9_-] removed. Slugify(Slugify(s)) == Slugify(s).
func Slugify(s string) string {
	folded := whitespaceRe.ReplaceAllString(fold(s), "-")
	return nonWordRe.ReplaceAllString(folded, "")
}

// Fold folds accents and case and collapses whitespace runs into a single
// space, so "  Árbol   B " matches "arbol b".
func Fold(s string) string {
	return whitespaceRe.ReplaceAllString(fold(s), " ")
}

func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(combiningMarks))
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.TrimSpace(strings.ToLower(folded))
}

// Capitalize upper-cases the first character of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// ReadingTime estimates the minutes needed to read an HTML document at 200
// words per minute, rounded to the nearest minute.
func ReadingTime(html string) int {
	text := strings.TrimSpace(tagRe.ReplaceAllString(html, ""))
	words := len(strings.Fields(text))
	return int(math.Round(float64(words) / wordsPerMinute))
}
