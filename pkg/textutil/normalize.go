package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold normaliza texto para búsqueda: recorta espacios, pasa a minúsculas y
// elimina marcas diacríticas (NFD -> quitar Mn -> NFC). "Limón" y "limon"
// quedan iguales, lo que hace la búsqueda de productos insensible a acentos.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
