// Package slug turns free-form labels into URL-safe identifiers.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fallback is returned when a label contains nothing usable.
const Fallback = "untitled"

// Make converts text into a lowercase slug of ASCII letters, digits and single
// dashes. "Ethics Essay #1" becomes "ethics-essay-1".
func Make(text string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	folded, _, err := transform.String(t, text)
	if err != nil {
		folded = text
	}

	var b strings.Builder
	dash := false
	for _, r := range folded {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(unicode.ToLower(r))
		case r >= unicode.MaxASCII:
			// non-ASCII runes left after folding are dropped
		default:
			dash = true
		}
	}

	if b.Len() == 0 {
		return Fallback
	}
	return b.String()
}
