// Package similar recommends books close to a given one.
package similar

import (
	"math"
	"sort"

	"github.com/songeyume/bibli/internal/book"
)

// Scoring weights. Shared tags dominate; author beats any single tag.
const (
	perCommonTag  = 3
	sameAuthor    = 5
	closeRating   = 2
	samePublisher = 1
)

// Match is a recommended book with its score breakdown.
type Match struct {
	Book       book.Book
	Score      int
	CommonTags []string
}

// Find scores every other read book against the current one and returns
// the best max results. Books sharing nothing score zero and are never
// recommended.
func Find(repo *book.Repository, current book.Book, max int) []Match {
	var matches []Match
	for _, b := range repo.All() {
		if b.ID == current.ID || !b.IsRead() {
			continue
		}
		m := score(current, b)
		if m.Score <= 0 {
			continue
		}
		matches = append(matches, m)
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if max > 0 && len(matches) > max {
		matches = matches[:max]
	}
	return matches
}

func score(current, b book.Book) Match {
	m := Match{Book: b}
	for _, t := range b.Tags {
		if current.HasTag(t) {
			m.CommonTags = append(m.CommonTags, t)
		}
	}
	m.Score += len(m.CommonTags) * perCommonTag
	if b.Author != "" && b.Author == current.Author {
		m.Score += sameAuthor
	}
	if math.Abs(b.Rating-current.Rating) <= 1 {
		m.Score += closeRating
	}
	if b.HasPublisher() && current.HasPublisher() && b.Publisher == current.Publisher {
		m.Score += samePublisher
	}
	return m
}
