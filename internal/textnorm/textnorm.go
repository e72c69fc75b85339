// ABOUTME: Text normalization and tokenization shared by all matchers
// ABOUTME: Lowercases, folds diacritics, strips punctuation, collapses whitespace

package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldMarks decomposes to NFKD and drops combining marks, so accented
// characters compare equal to their base form ("café" == "cafe").
var foldMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases the input, folds diacritics, replaces every
// non-alphanumeric rune with a space, and collapses runs of whitespace.
// It never fails; empty input normalizes to the empty string.
func Normalize(s string) string {
	s = strings.ToLower(s)
	if folded, _, err := transform.String(foldMarks, s); err == nil {
		s = folded
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokens returns the normalized token sequence of s.
func Tokens(s string) []string {
	normalized := Normalize(s)
	if normalized == "" {
		return nil
	}
	return strings.Split(normalized, " ")
}

// TokenSet returns the set of distinct normalized tokens in s.
func TokenSet(s string) map[string]struct{} {
	tokens := Tokens(s)
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}
