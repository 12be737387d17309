package library

import (
	"math/rand"

	"github.com/songeyume/bibli/internal/book"
)

// PickFilter narrows the candidate pool for the random pick ("which
// book next?" wheel).
type PickFilter struct {
	MinRating  float64
	Genre      string
	UnreadOnly bool
}

// Candidates returns the books eligible for a pick. Normal mode draws
// from read books; unread-only mode draws from books with no rating or
// no review yet.
func Candidates(books []book.Book, pf PickFilter) []book.Book {
	var out []book.Book
	for _, b := range books {
		if pf.UnreadOnly {
			if b.IsRead() && b.PersonalReview != "" {
				continue
			}
		} else if !b.IsRead() {
			continue
		}
		if pf.MinRating > 0 && b.Rating < pf.MinRating {
			continue
		}
		if pf.Genre != "" && !b.HasTag(pf.Genre) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// Pick draws one candidate, weighted by rating so better books come up
// more often (weight = max(1, ⌊rating⌋)). The random source is injected;
// a seeded rand.Rand makes the draw reproducible. Zero candidates means
// no selection, not a panic.
func Pick(books []book.Book, pf PickFilter, rng *rand.Rand) (book.Book, bool) {
	candidates := Candidates(books, pf)
	if len(candidates) == 0 {
		return book.Book{}, false
	}
	total := 0
	weights := make([]int, len(candidates))
	for i, b := range candidates {
		w := int(b.Rating)
		if w < 1 {
			w = 1
		}
		weights[i] = w
		total += w
	}
	n := rng.Intn(total)
	for i, w := range weights {
		if n < w {
			return candidates[i], true
		}
		n -= w
	}
	return candidates[len(candidates)-1], true
}
