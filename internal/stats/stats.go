// Package stats computes the dashboard aggregations.
package stats

import (
	"sort"
	"time"

	"github.com/songeyume/bibli/internal/book"
)

// RatingBucket is one slice of the rating distribution.
type RatingBucket struct {
	Label string  `json:"label"`
	Min   float64 `json:"min"`           // inclusive
	Max   float64 `json:"max,omitempty"` // exclusive; 0 means unbounded
	Count int     `json:"count"`
}

// AuthorCount pairs an author with how many of their books were read.
type AuthorCount struct {
	Author string `json:"author"`
	Count  int    `json:"count"`
}

// TagCount pairs a tag with its frequency.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// MonthCount is the number of books read in one calendar month.
type MonthCount struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Count int        `json:"count"`
}

// Summary is everything the statistics dashboard shows.
type Summary struct {
	TotalBooks         int            `json:"totalBooks"`
	AverageRating      float64        `json:"averageRating"`
	RatingDistribution []RatingBucket `json:"ratingDistribution"`
	TopAuthors         []AuthorCount  `json:"topAuthors"`
	TopTags            []TagCount     `json:"topTags"`
	OnInstagram        int            `json:"onInstagram"`
	OnBabelio          int            `json:"onBabelio"`
	DistinctAuthors    int            `json:"distinctAuthors"`
}

// Compute aggregates the read part of the repository. Wishlist entries
// (rating zero) would drag every figure down, so they stay out.
func Compute(repo *book.Repository) Summary {
	var books []book.Book
	for _, b := range repo.All() {
		if b.IsRead() {
			books = append(books, b)
		}
	}
	s := Summary{
		TotalBooks: len(books),
		RatingDistribution: []RatingBucket{
			{Label: "Excellent (4.5-5)", Min: 4.5},
			{Label: "Très bon (3.5-4.4)", Min: 3.5, Max: 4.5},
			{Label: "Bon (2.5-3.4)", Min: 2.5, Max: 3.5},
			{Label: "Moyen (0-2.4)", Max: 2.5},
		},
	}

	var total float64
	authorCounts := make(map[string]int)
	tagCounts := make(map[string]int)
	for _, b := range books {
		total += b.Rating
		for i := range s.RatingDistribution {
			bk := &s.RatingDistribution[i]
			if b.Rating >= bk.Min && (bk.Max == 0 || b.Rating < bk.Max) {
				bk.Count++
			}
		}
		if b.Author != "" {
			authorCounts[b.Author]++
		}
		for _, t := range b.Tags {
			tagCounts[t]++
		}
		if b.PublishedOnInstagram {
			s.OnInstagram++
		}
		if b.PublishedOnBabelio {
			s.OnBabelio++
		}
	}
	if len(books) > 0 {
		s.AverageRating = roundTenth(total / float64(len(books)))
	}
	s.DistinctAuthors = len(authorCounts)

	for a, n := range authorCounts {
		s.TopAuthors = append(s.TopAuthors, AuthorCount{Author: a, Count: n})
	}
	sort.Slice(s.TopAuthors, func(i, j int) bool {
		if s.TopAuthors[i].Count != s.TopAuthors[j].Count {
			return s.TopAuthors[i].Count > s.TopAuthors[j].Count
		}
		return s.TopAuthors[i].Author < s.TopAuthors[j].Author
	})
	if len(s.TopAuthors) > 5 {
		s.TopAuthors = s.TopAuthors[:5]
	}

	for t, n := range tagCounts {
		s.TopTags = append(s.TopTags, TagCount{Tag: t, Count: n})
	}
	sort.Slice(s.TopTags, func(i, j int) bool {
		if s.TopTags[i].Count != s.TopTags[j].Count {
			return s.TopTags[i].Count > s.TopTags[j].Count
		}
		return s.TopTags[i].Tag < s.TopTags[j].Tag
	})
	if len(s.TopTags) > 8 {
		s.TopTags = s.TopTags[:8]
	}

	return s
}

// Monthly counts books read per calendar month over the monthsBack
// months ending at now, oldest first.
func Monthly(repo *book.Repository, now time.Time, monthsBack int) []MonthCount {
	if monthsBack <= 0 {
		monthsBack = 6
	}
	books := repo.All()
	out := make([]MonthCount, 0, monthsBack)
	for i := monthsBack - 1; i >= 0; i-- {
		ref := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		mc := MonthCount{Year: ref.Year(), Month: ref.Month()}
		for _, b := range books {
			if !b.ReadDate.IsZero() && b.ReadDate.SameMonth(ref.Year(), ref.Month()) {
				mc.Count++
			}
		}
		out = append(out, mc)
	}
	return out
}

func roundTenth(f float64) float64 {
	return float64(int(f*10+0.5)) / 10
}
