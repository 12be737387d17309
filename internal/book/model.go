// Package book defines the book record and the immutable dataset
// repository everything else reads from.
package book

import "strings"

// DefaultMaxRating is the rating ceiling used when a record does not
// carry its own maxRating field.
const DefaultMaxRating = 5.0

// Book is one entry in the dataset. Records are read-only after load.
type Book struct {
	ID                   int      `json:"id"`
	Title                string   `json:"title"`
	Author               string   `json:"author"`
	Cover                string   `json:"cover,omitempty"`
	Summary              string   `json:"summary,omitempty"`
	PersonalReview       string   `json:"personalReview,omitempty"`
	Rating               float64  `json:"rating"`
	MaxRating            float64  `json:"maxRating,omitempty"`
	Tags                 []string `json:"tags"`
	Publisher            string   `json:"publisher,omitempty"`
	SpicyLevel           *int     `json:"spicyLevel,omitempty"`
	ReadDate             Date     `json:"readDate,omitempty"`
	Series               string   `json:"series,omitempty"`
	SeriesOrder          int      `json:"seriesOrder,omitempty"`
	PublishedOnInstagram bool     `json:"publishedOnInstagram,omitempty"`
	InstagramLink        string   `json:"instagramLink,omitempty"`
	PublishedOnBabelio   bool     `json:"publishedOnBabelio,omitempty"`
	BabelioLink          string   `json:"babelioLink,omitempty"`
	Quotes               []string `json:"quotes,omitempty"`
}

// IsRead reports whether the book has been read. A zero rating marks an
// unread (wishlist) entry.
func (b Book) IsRead() bool {
	return b.Rating > 0
}

// HasPublisher reports whether the record carries a usable publisher.
// Whitespace-only publishers count as absent.
func (b Book) HasPublisher() bool {
	return strings.TrimSpace(b.Publisher) != ""
}

// HasSpicyLevel reports whether a spicy level applies to this book.
// Level 0 is a real value; only a missing field means "not applicable".
func (b Book) HasSpicyLevel() bool {
	return b.SpicyLevel != nil
}

// HasTag reports whether the book carries the exact tag.
func (b Book) HasTag(tag string) bool {
	for _, t := range b.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// RatingScale returns the rating ceiling for display (stars).
func (b Book) RatingScale() float64 {
	if b.MaxRating > 0 {
		return b.MaxRating
	}
	return DefaultMaxRating
}
