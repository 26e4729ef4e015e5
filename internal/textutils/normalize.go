// Package textutils provides text normalization utilities shared by the keyword matcher.
package textutils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize folds text into the canonical form used for keyword matching:
// diacritics removed, lowercased, every non letter/digit rune turned into a
// space and runs of spaces collapsed. "Honorários, CUSTAS!" becomes
// "honorarios custas".
func Normalize(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, text)
	if err != nil {
		// transform only fails on invalid UTF-8 state; fall back to the raw text
		stripped = text
	}

	var b strings.Builder
	b.Grow(len(stripped))
	space := true
	for _, r := range stripped {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
			space = false
			continue
		}
		if !space {
			b.WriteByte(' ')
			space = true
		}
	}
	return strings.TrimSpace(b.String())
}

// ContainsPhrase reports whether the normalized phrase occurs in the normalized
// text on word boundaries. Both arguments must already be normalized.
func ContainsPhrase(normalizedText, normalizedPhrase string) bool {
	if normalizedPhrase == "" {
		return false
	}
	return strings.Contains(" "+normalizedText+" ", " "+normalizedPhrase+" ")
}

// IsBlank reports whether s has no visible content.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
