package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lower-cases s and strips combining accents, so "Pantalón" and
// "pantalon" compare equal.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// MatchProduct reports whether the folded query is a substring of the
// product's name or type.
func MatchProduct(p Product, foldedQuery string) bool {
	return strings.Contains(Fold(p.Name), foldedQuery) || strings.Contains(Fold(p.Type), foldedQuery)
}
