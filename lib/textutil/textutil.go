package textutil

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// FoldAccents strips combining marks, ex. "São Paulo" -> "Sao Paulo".
func FoldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

// NormalizeName lowercases `name`, folds accents and removes all whitespace
// so that loosely typed names compare equal.
func NormalizeName(name string) string {
	name = strings.ToLower(FoldAccents(name))
	return whitespaceRegex.ReplaceAllString(name, "")
}
