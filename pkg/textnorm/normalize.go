// Package textnorm converts free-text names into filesystem-safe tokens.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// decompose splits accented characters into their base letter plus combining
// marks and removes the marks, so "é" folds to "e" before ASCII filtering.
var decompose = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// Normalize reduces raw input to a token containing only ASCII letters,
// digits, spaces, and hyphens. Accented letters fold to their base letter,
// characters with no ASCII base (e.g. ideographs) are dropped, punctuation
// such as apostrophes and periods is removed, and whitespace runs collapse
// to a single space. The worst case is an empty token, never an error.
func Normalize(input string) string {
	if input == "" {
		return ""
	}

	folded, _, err := transform.String(decompose, input)
	if err != nil {
		// The chain never fails on valid UTF-8; fall back to filtering
		// the raw input so the function stays total.
		folded = input
	}

	var b strings.Builder
	pendingSpace := false
	for _, r := range folded {
		switch {
		case r > unicode.MaxASCII:
			// No ASCII base form, drop entirely.
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			if pendingSpace {
				b.WriteByte(' ')
				pendingSpace = false
			}
			b.WriteRune(r)
		case unicode.IsSpace(r):
			if b.Len() > 0 {
				pendingSpace = true
			}
		default:
			// Remaining ASCII punctuation is stripped.
		}
	}
	return b.String()
}

// CapitalizeName applies the person-name capitalization policy: the token is
// treated as a single unit, except hyphenated compounds where each segment
// is capitalized separately ("garcia-lopez" -> "Garcia-Lopez").
func CapitalizeName(token string) string {
	if token == "" {
		return ""
	}
	if strings.Contains(token, "-") {
		parts := strings.Split(token, "-")
		for i, part := range parts {
			parts[i] = capitalizeSegment(part)
		}
		return strings.Join(parts, "-")
	}
	return capitalizeSegment(token)
}

// CapitalizeWords applies the course-name policy: every space-separated word
// is capitalized independently ("data science" -> "Data Science"). This is
// deliberately distinct from CapitalizeName, which treats the whole token
// (or its hyphen segments) as one unit.
func CapitalizeWords(token string) string {
	if token == "" {
		return ""
	}
	words := strings.Split(token, " ")
	for i, word := range words {
		words[i] = capitalizeSegment(word)
	}
	return strings.Join(words, " ")
}

// capitalizeSegment uppercases the first rune and lowercases the rest.
func capitalizeSegment(segment string) string {
	if segment == "" {
		return ""
	}
	rs := []rune(strings.ToLower(segment))
	rs[0] = unicode.ToUpper(rs[0])
	return string(rs)
}
