package library

import (
	"fmt"
	"sort"

	"github.com/songeyume/bibli/internal/book"
)

// SortKey selects the ordering of the filtered list.
type SortKey string

// Supported sort keys. Values double as the CLI flag spelling.
const (
	SortRecency SortKey = "readDate"
	SortRating  SortKey = "rating"
	SortTitle   SortKey = "title"
	SortAuthor  SortKey = "author"
)

// ParseSortKey validates a user-supplied sort key.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case SortRecency, SortRating, SortTitle, SortAuthor:
		return SortKey(s), nil
	}
	return "", fmt.Errorf("unknown sort key %q (readDate, rating, title, author)", s)
}

// Sort orders books in place: recency and rating descending, title and
// author ascending with locale-aware comparison. Stable, so books equal
// under the key keep repository order.
func Sort(books []book.Book, key SortKey) {
	sort.SliceStable(books, func(i, j int) bool {
		a, b := books[i], books[j]
		switch key {
		case SortRating:
			return a.Rating > b.Rating
		case SortTitle:
			return compareStrings(a.Title, b.Title) < 0
		case SortAuthor:
			return compareStrings(a.Author, b.Author) < 0
		default: // SortRecency
			return b.ReadDate.Before(a.ReadDate)
		}
	})
}

// Sorted returns a sorted copy, leaving the input untouched.
func Sorted(books []book.Book, key SortKey) []book.Book {
	out := make([]book.Book, len(books))
	copy(out, books)
	Sort(out, key)
	return out
}
