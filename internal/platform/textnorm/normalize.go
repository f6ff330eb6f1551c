package textnorm

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD and removes combining marks, so "Ødegaard"
// and "Saka" end up on the same ASCII footing before comparison.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// Normalize lowercases, trims and ASCII-folds a name for matching. It is
// idempotent and locale-independent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(value string) string {
	folded, _, err := transform.String(stripMarks, value)
	if err != nil {
		folded = value
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
		}
	}

	return strings.ToLower(strings.TrimSpace(b.String()))
}
