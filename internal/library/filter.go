// Package library implements the filtering, sorting and pagination
// pipeline behind the library screen: independent facet predicates
// AND-composed over the book repository, facet availability recomputed
// from the already-filtered results, and page state that resets whenever
// a filter changes.
package library

import (
	"strconv"
	"strings"

	"github.com/songeyume/bibli/internal/book"
	"github.com/songeyume/bibli/internal/category"
)

// Filter holds the active facet selections. Zero values mean "facet
// inactive", except SpicyLevel: level 0 is a real selection and nil
// marks the facet off.
type Filter struct {
	Category   category.Key
	Search     string
	Tags       []string
	Publisher  string
	Rating     float64
	SpicyLevel *int
}

// HasTag reports whether the tag is already selected.
func (f Filter) HasTag(tag string) bool {
	for _, t := range f.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Active reports whether any facet is selected.
func (f Filter) Active() bool {
	return f.Category != "" || f.Search != "" || len(f.Tags) > 0 ||
		f.Publisher != "" || f.Rating > 0 || f.SpicyLevel != nil
}

// Apply returns the books matching every active predicate. Predicates
// run in a fixed order (category, search, tags, publisher, rating,
// spicy); AND is commutative but the facet recalculation stages depend
// on this order staying put.
func (f Filter) Apply(books []book.Book) []book.Book {
	out := make([]book.Book, 0, len(books))
	for _, b := range books {
		if !f.Matches(b) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// Matches reports whether a single book passes every active predicate.
func (f Filter) Matches(b book.Book) bool {
	if f.Category != "" && !category.Matches(b, f.Category) {
		return false
	}
	if f.Search != "" && !matchesSearch(b, f.Search) {
		return false
	}
	if len(f.Tags) > 0 && !hasAllTags(b, f.Tags) {
		return false
	}
	if f.Publisher != "" && b.Publisher != f.Publisher {
		return false
	}
	if f.Rating > 0 && !matchesRating(b, f.Rating) {
		return false
	}
	if f.SpicyLevel != nil && !matchesSpicy(b, *f.SpicyLevel) {
		return false
	}
	return true
}

// WithSpicyLevel returns a copy of the filter with the spicy facet set.
func (f Filter) WithSpicyLevel(level int) Filter {
	l := level
	f.SpicyLevel = &l
	return f
}

// matchesSearch is the free-text predicate: case- and accent-insensitive
// substring match against title, author, tags, summary, publisher,
// series name and the stringified rating, OR across fields.
func matchesSearch(b book.Book, q string) bool {
	q = fold(q)
	for _, field := range []string{
		b.Title,
		b.Author,
		b.Summary,
		b.Publisher,
		b.Series,
		strconv.FormatFloat(b.Rating, 'f', -1, 64),
	} {
		if field != "" && strings.Contains(fold(field), q) {
			return true
		}
	}
	for _, t := range b.Tags {
		if strings.Contains(fold(t), q) {
			return true
		}
	}
	return false
}

// hasAllTags is the tag predicate: AND across selections. A book
// missing any one selected tag is out.
func hasAllTags(b book.Book, tags []string) bool {
	for _, want := range tags {
		if !b.HasTag(want) {
			return false
		}
	}
	return true
}

// matchesRating is the band-match variant: a selection of r keeps books
// rated exactly r or r+0.5 ("around this rating"). The upper-bound
// variant ("at most r") is deliberately not offered.
func matchesRating(b book.Book, r float64) bool {
	return b.Rating == r || b.Rating == r+0.5
}

// matchesSpicy requires an exact level. A book with no spicy level never
// matches a concrete selection; absence is "not applicable", not zero.
func matchesSpicy(b book.Book, level int) bool {
	return b.SpicyLevel != nil && *b.SpicyLevel == level
}
