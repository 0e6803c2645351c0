package domain

import (
	"strings"
	"unicode"
)

// NormalizeText prepares a crime-type value for case-insensitive comparison:
// it trims surrounding whitespace, lowercases, and collapses inner runs of
// whitespace into a single space. Punctuation such as '&' and '-' is kept.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteByte(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
