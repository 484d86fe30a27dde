package score

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripper decomposes the text, then drops combining marks (diacritics) and
// punctuation before recomposing. Speech-to-text output and typed answers
// must land on the same canonical form.
var stripper = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	runes.Remove(runes.In(unicode.Punct)),
	norm.NFC,
)

var folder = cases.Fold()

// Normalize canonicalizes text for fuzzy comparison: case folded,
// punctuation and diacritics stripped, whitespace collapsed.
func Normalize(s string) string {
	out, _, err := transform.String(stripper, s)
	if err != nil {
		// Transform only fails on malformed input; fall back to the raw text
		// so grading stays total.
		out = s
	}
	out = folder.String(out)
	return strings.Join(strings.Fields(out), " ")
}

// normalizeWord canonicalizes a single token for order comparison.
func normalizeWord(s string) string {
	return Normalize(s)
}
