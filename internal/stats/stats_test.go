package stats_test

import (
	"testing"
	"time"

	"github.com/songeyume/bibli/internal/book"
	"github.com/songeyume/bibli/internal/stats"
)

func fixture() *book.Repository {
	return book.NewRepository([]book.Book{
		{ID: 1, Author: "Camus", Rating: 5, Tags: []string{"Classique"},
			PublishedOnInstagram: true, PublishedOnBabelio: true,
			ReadDate: book.NewDate(2026, time.August, 10)},
		{ID: 2, Author: "Camus", Rating: 4, Tags: []string{"Classique", "Philosophie"},
			PublishedOnInstagram: true,
			ReadDate:             book.NewDate(2026, time.July, 1)},
		{ID: 3, Author: "Herbert", Rating: 3, Tags: []string{"Fantasy"},
			ReadDate: book.NewDate(2026, time.July, 20)},
		{ID: 4, Author: "King", Rating: 2,
			ReadDate: book.NewDate(2026, time.March, 5)},
		{ID: 5, Author: "Inconnu", Rating: 0}, // wishlist, excluded
	})
}

func TestCompute_ExcludesUnread(t *testing.T) {
	s := stats.Compute(fixture())
	if s.TotalBooks != 4 {
		t.Errorf("TotalBooks = %d, want 4 read books", s.TotalBooks)
	}
	if s.DistinctAuthors != 3 {
		t.Errorf("DistinctAuthors = %d", s.DistinctAuthors)
	}
}

func TestCompute_AverageRoundedToTenth(t *testing.T) {
	s := stats.Compute(fixture())
	// (5+4+3+2)/4 = 3.5
	if s.AverageRating != 3.5 {
		t.Errorf("AverageRating = %v", s.AverageRating)
	}
}

func TestCompute_RatingBuckets(t *testing.T) {
	s := stats.Compute(fixture())
	if len(s.RatingDistribution) != 4 {
		t.Fatalf("buckets = %d", len(s.RatingDistribution))
	}
	want := []int{1, 1, 1, 1} // 5 / 4 / 3 / 2
	for i, bucket := range s.RatingDistribution {
		if bucket.Count != want[i] {
			t.Errorf("bucket %q = %d, want %d", bucket.Label, bucket.Count, want[i])
		}
	}
}

func TestCompute_BucketBoundaries(t *testing.T) {
	repo := book.NewRepository([]book.Book{
		{ID: 1, Rating: 4.5}, // excellent, inclusive lower bound
		{ID: 2, Rating: 4.4}, // très bon, exclusive upper bound
		{ID: 3, Rating: 2.5}, // bon
		{ID: 4, Rating: 2.4}, // moyen
	})
	s := stats.Compute(repo)
	for i, want := range []int{1, 1, 1, 1} {
		if s.RatingDistribution[i].Count != want {
			t.Errorf("bucket %d = %d, want %d", i, s.RatingDistribution[i].Count, want)
		}
	}
}

func TestCompute_TopAuthorsAndTags(t *testing.T) {
	s := stats.Compute(fixture())
	if len(s.TopAuthors) == 0 || s.TopAuthors[0].Author != "Camus" || s.TopAuthors[0].Count != 2 {
		t.Errorf("TopAuthors = %+v", s.TopAuthors)
	}
	if len(s.TopTags) == 0 || s.TopTags[0].Tag != "Classique" || s.TopTags[0].Count != 2 {
		t.Errorf("TopTags = %+v", s.TopTags)
	}
}

func TestCompute_SocialCounts(t *testing.T) {
	s := stats.Compute(fixture())
	if s.OnInstagram != 2 || s.OnBabelio != 1 {
		t.Errorf("Instagram/Babelio = %d/%d", s.OnInstagram, s.OnBabelio)
	}
}

func TestCompute_EmptyRepository(t *testing.T) {
	s := stats.Compute(book.NewRepository(nil))
	if s.TotalBooks != 0 || s.AverageRating != 0 {
		t.Errorf("empty summary = %+v", s)
	}
}

func TestMonthly_WindowOldestFirst(t *testing.T) {
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	months := stats.Monthly(fixture(), now, 6)

	if len(months) != 6 {
		t.Fatalf("months = %d", len(months))
	}
	if months[0].Month != time.March || months[len(months)-1].Month != time.August {
		t.Errorf("window = %v … %v", months[0].Month, months[len(months)-1].Month)
	}

	counts := make(map[time.Month]int)
	for _, m := range months {
		counts[m.Month] = m.Count
	}
	if counts[time.July] != 2 || counts[time.August] != 1 || counts[time.March] != 1 {
		t.Errorf("monthly counts = %v", counts)
	}
	if counts[time.April] != 0 {
		t.Errorf("empty month should count zero, got %d", counts[time.April])
	}
}
