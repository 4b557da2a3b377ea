// Package textfold normaliza texto para búsquedas sin distinguir mayúsculas ni acentos.
package textfold

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold descompone (NFD), elimina las marcas diacríticas y pasa a minúsculas.
// "João" -> "joao", "Hôpital" -> "hopital".
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Contains indica si needle aparece en haystack tras normalizar ambos.
func Contains(haystack, needle string) bool {
	return strings.Contains(Fold(haystack), Fold(needle))
}
