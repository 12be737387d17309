// Package util provides small shared helpers.
package util

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const maxSlugLen = 60

// Slug turns a book title into a share-link slug: lowercase, accents
// stripped, apostrophes removed, anything else collapsed to dashes.
//
//	"L'Étranger"      → "letranger"
//	"Dune, Tome 2"    → "dune-tome-2"
func Slug(title string) string {
	if title == "" {
		return ""
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, err := transform.String(t, strings.ToLower(title))
	if err != nil {
		s = strings.ToLower(title)
	}
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, "’", "")

	var b strings.Builder
	lastDash := true // suppress a leading dash
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	out := strings.Trim(b.String(), "-")
	if len(out) > maxSlugLen {
		out = strings.Trim(out[:maxSlugLen], "-")
	}
	return out
}

// BookPath returns the share path for a book, mirroring the site's
// /book/<id>/<slug> URLs.
func BookPath(id int, title string) string {
	slug := Slug(title)
	if slug == "" {
		return "/book/" + strconv.Itoa(id)
	}
	return "/book/" + strconv.Itoa(id) + "/" + slug
}
