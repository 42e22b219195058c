package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FoldText lower-cases text and strips combining marks, so "Paracétamol"
// and "paracetamol" compare equal.
func FoldText(text string) string {
	lower := strings.ToLower(text)
	// transformers carry state; build one per call
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, lower)
	if err != nil {
		return lower
	}
	return folded
}

// Tokenize splits text into folded words made of letters and digits.
func Tokenize(text string) []string {
	return strings.FieldsFunc(FoldText(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
