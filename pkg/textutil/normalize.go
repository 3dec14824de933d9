// Package textutil normaliza texto para buscas sem distinção de acentos
// ou caixa ("Armário" casa com "armario").
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)), // remove marcas combinantes (acentos)
	norm.NFC,
)

// Fold devolve s em minúsculas e sem acentos. Se a transformação falhar
// (entrada não-UTF-8), devolve apenas o lowercase.
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}
