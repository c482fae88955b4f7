package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases text and strips combining marks so accented and plain
// spellings compare equal ("María" and "maria" fold to the same string).
func Fold(value string) string {
	folded, _, err := transform.String(foldTransformer, value)
	if err != nil {
		folded = value
	}
	return strings.ToLower(strings.TrimSpace(folded))
}
