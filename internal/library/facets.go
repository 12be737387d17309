package library

import (
	"sort"

	"github.com/songeyume/bibli/internal/book"
	"github.com/songeyume/bibli/internal/category"
)

// TagCount is one entry of the tag facet.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// PublisherCount is one entry of the publisher facet.
type PublisherCount struct {
	Publisher string `json:"publisher"`
	Count     int    `json:"count"`
}

// CategoryCount is one entry of the category facet.
type CategoryCount struct {
	Key   category.Key `json:"key"`
	Name  string       `json:"name"`
	Count int          `json:"count"`
}

// Facets lists, for every facet, the option values still worth offering
// and how many books each would match.
type Facets struct {
	Tags       []TagCount
	Publishers []PublisherCount
	Categories []CategoryCount
}

// HasPublisher reports whether the publisher facet still offers name.
func (f Facets) HasPublisher(name string) bool {
	for _, p := range f.Publishers {
		if p.Publisher == name {
			return true
		}
	}
	return false
}

// Recalculate recomputes facet availability against the full dataset
// and the active filter. Each facet sees every *other* active filter
// but not its own pending dimension, so the user can always see what
// they could switch to:
//
//   - tags count books passing category+search+tags+publisher
//   - publishers count books passing category+search+tags
//   - category counts are global (full shelf sizes stay visible)
func Recalculate(books []book.Book, f Filter) Facets {
	// Rating and spicy never narrow facet availability.
	base := f
	base.Rating = 0
	base.SpicyLevel = nil

	return Facets{
		Tags:       tagFacet(base.Apply(books)),
		Publishers: publisherFacet(withoutPublisher(base).Apply(books)),
		Categories: categoryFacet(books),
	}
}

func withoutPublisher(f Filter) Filter {
	f.Publisher = ""
	return f
}

// tagFacet counts tag frequency, dropping tags that are exact category
// names (those belong to the category facet, not the tag list). Sorted
// by descending frequency, ties broken alphabetically, locale-aware.
func tagFacet(books []book.Book) []TagCount {
	names := make(map[string]bool)
	for _, n := range category.Names() {
		names[n] = true
	}
	counts := make(map[string]int)
	for _, b := range books {
		for _, t := range b.Tags {
			if names[t] {
				continue
			}
			counts[t]++
		}
	}
	out := make([]TagCount, 0, len(counts))
	for t, n := range counts {
		out = append(out, TagCount{Tag: t, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return compareStrings(out[i].Tag, out[j].Tag) < 0
	})
	return out
}

// publisherFacet counts books per non-empty publisher, most common
// first.
func publisherFacet(books []book.Book) []PublisherCount {
	counts := make(map[string]int)
	for _, b := range books {
		if !b.HasPublisher() {
			continue
		}
		counts[b.Publisher]++
	}
	out := make([]PublisherCount, 0, len(counts))
	for p, n := range counts {
		out = append(out, PublisherCount{Publisher: p, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return compareStrings(out[i].Publisher, out[j].Publisher) < 0
	})
	return out
}

// categoryFacet counts every category over the whole dataset, no other
// filters applied, in table priority order.
func categoryFacet(books []book.Book) []CategoryCount {
	out := make([]CategoryCount, 0, len(category.All()))
	for _, r := range category.All() {
		n := 0
		for _, b := range books {
			if category.Matches(b, r.Key) {
				n++
			}
		}
		out = append(out, CategoryCount{Key: r.Key, Name: r.Name, Count: n})
	}
	return out
}
