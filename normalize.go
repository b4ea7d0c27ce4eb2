package pangasinan

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// nyReplacer rewrites ñ before the generic diacritic strip, because the
// orthographic convention maps ñ to "ny" rather than bare "n".
var nyReplacer = strings.NewReplacer("ñ", "ny", "Ñ", "ny")

// stripMarks decomposes to NFD, drops combining marks, and recomposes.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lower-cases s and removes diacritics, yielding the matching
// form used for every dictionary and rule-table lookup. The original
// surface form is kept by callers for display. Total function: input that
// carries no letters passes through unchanged.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = nyReplacer.Replace(s)
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		// transform only fails on malformed UTF-8; fall back to the
		// lower-cased input rather than dropping the token.
		return s
	}
	return out
}

// NormalizeKey returns the canonical lookup key for a headword or root.
// Currently identical to Normalize; kept as a separate name so index
// keys and display normalization can diverge without touching callers.
func NormalizeKey(s string) string {
	return Normalize(strings.TrimSpace(s))
}
