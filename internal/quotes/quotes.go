// Package quotes flattens the dataset's per-book quotes into a wall
// that can be filtered, paginated and sampled.
package quotes

import (
	"math/rand"
	"sort"
	"time"

	"github.com/songeyume/bibli/internal/book"
)

// DefaultPageSize matches the quote wall grid.
const DefaultPageSize = 18

// Quote is one quote with the metadata of the book it came from.
type Quote struct {
	Text      string   `json:"text"`
	BookID    int      `json:"bookId"`
	BookTitle string   `json:"bookTitle"`
	Author    string   `json:"author"`
	Cover     string   `json:"cover,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Rating    float64  `json:"rating,omitempty"`
}

// Filter narrows the wall. Empty fields are inactive; active fields
// AND together.
type Filter struct {
	BookTitle string
	Author    string
	Tag       string
}

// Collect flattens every book's quotes in dataset order.
func Collect(repo *book.Repository) []Quote {
	var out []Quote
	for _, b := range repo.All() {
		for _, q := range b.Quotes {
			out = append(out, Quote{
				Text:      q,
				BookID:    b.ID,
				BookTitle: b.Title,
				Author:    b.Author,
				Cover:     b.Cover,
				Tags:      b.Tags,
				Rating:    b.Rating,
			})
		}
	}
	return out
}

// Apply returns the quotes matching the filter.
func (f Filter) Apply(all []Quote) []Quote {
	var out []Quote
	for _, q := range all {
		if f.BookTitle != "" && q.BookTitle != f.BookTitle {
			continue
		}
		if f.Author != "" && q.Author != f.Author {
			continue
		}
		if f.Tag != "" && !hasTag(q.Tags, f.Tag) {
			continue
		}
		out = append(out, q)
	}
	return out
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}

// Books returns the distinct book titles quoted, sorted.
func Books(all []Quote) []string { return distinct(all, func(q Quote) string { return q.BookTitle }) }

// Authors returns the distinct quoted authors, sorted.
func Authors(all []Quote) []string { return distinct(all, func(q Quote) string { return q.Author }) }

func distinct(all []Quote, key func(Quote) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, q := range all {
		k := key(q)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// OfTheDay returns the day's quote: the same one all day, a different
// one tomorrow. The day string is hashed (djb2-style, matching the
// site this catalog came from) and indexes the wall.
func OfTheDay(all []Quote, day time.Time) (Quote, bool) {
	if len(all) == 0 {
		return Quote{}, false
	}
	key := day.Format("2006-1-2")
	var hash int32
	for _, c := range []byte(key) {
		hash = (hash << 5) - hash + int32(c)
	}
	if hash < 0 {
		hash = -hash
	}
	return all[int(hash)%len(all)], true
}

// Random draws one quote from the injected random source. An empty wall
// yields no selection.
func Random(all []Quote, rng *rand.Rand) (Quote, bool) {
	if len(all) == 0 {
		return Quote{}, false
	}
	return all[rng.Intn(len(all))], true
}
