package models

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var descriptionReplacer = strings.NewReplacer(" ", "_", "-", "_")

// NormalizeDescription lowercases s, strips diacritics and replaces spaces
// and hyphens with underscores so "Pão de Açúcar" becomes "pao_de_acucar".
// Rule keywords and transaction descriptions both go through it.
func NormalizeDescription(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return descriptionReplacer.Replace(strings.ToLower(stripped))
}
