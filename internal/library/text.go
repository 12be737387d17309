package library

import (
	"strings"
	"unicode"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// collator orders strings the way a French reader expects: diacritics
// sort with their base letter ("É" next to "E"), case ignored.
var collator = collate.New(language.French, collate.Loose)

func compareStrings(a, b string) int {
	return collator.CompareString(a, b)
}

// fold lowercases and strips diacritics so search treats "Poésie" and
// "poesie" as the same word.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}
