package quotes_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/songeyume/bibli/internal/book"
	"github.com/songeyume/bibli/internal/quotes"
)

func repoWithQuotes() *book.Repository {
	return book.NewRepository([]book.Book{
		{ID: 1, Title: "L'Étranger", Author: "Camus", Rating: 4.5,
			Tags:   []string{"Classique"},
			Quotes: []string{"Première citation.", "Deuxième citation."}},
		{ID: 2, Title: "Dune", Author: "Herbert", Rating: 4,
			Tags:   []string{"Fantasy"},
			Quotes: []string{"La peur tue l'esprit."}},
		{ID: 3, Title: "Sans citation", Author: "Personne", Rating: 3},
	})
}

func TestCollect_FlattensInDatasetOrder(t *testing.T) {
	all := quotes.Collect(repoWithQuotes())
	if len(all) != 3 {
		t.Fatalf("Collect = %d quotes", len(all))
	}
	if all[0].Text != "Première citation." || all[0].BookID != 1 {
		t.Errorf("first quote = %+v", all[0])
	}
	if all[2].BookTitle != "Dune" || all[2].Author != "Herbert" {
		t.Errorf("third quote = %+v", all[2])
	}
}

func TestFilter_ByBookAuthorTag(t *testing.T) {
	all := quotes.Collect(repoWithQuotes())

	byBook := quotes.Filter{BookTitle: "Dune"}.Apply(all)
	if len(byBook) != 1 || byBook[0].Text != "La peur tue l'esprit." {
		t.Errorf("by book = %+v", byBook)
	}

	byAuthor := quotes.Filter{Author: "Camus"}.Apply(all)
	if len(byAuthor) != 2 {
		t.Errorf("by author = %d quotes", len(byAuthor))
	}

	byTag := quotes.Filter{Tag: "Fantasy"}.Apply(all)
	if len(byTag) != 1 || byTag[0].BookID != 2 {
		t.Errorf("by tag = %+v", byTag)
	}

	combined := quotes.Filter{Author: "Camus", Tag: "Fantasy"}.Apply(all)
	if len(combined) != 0 {
		t.Errorf("conflicting filters = %d quotes", len(combined))
	}
}

func TestBooksAndAuthors_DistinctSorted(t *testing.T) {
	all := quotes.Collect(repoWithQuotes())

	books := quotes.Books(all)
	if len(books) != 2 || books[0] != "Dune" {
		t.Errorf("Books = %v", books)
	}
	authors := quotes.Authors(all)
	if len(authors) != 2 || authors[0] != "Camus" {
		t.Errorf("Authors = %v", authors)
	}
}

func TestOfTheDay_StableWithinADay(t *testing.T) {
	all := quotes.Collect(repoWithQuotes())
	day := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

	first, found := quotes.OfTheDay(all, day)
	if !found {
		t.Fatal("expected a quote")
	}
	evening := time.Date(2026, 8, 31, 23, 59, 0, 0, time.UTC)
	again, _ := quotes.OfTheDay(all, evening)
	if again.Text != first.Text {
		t.Errorf("quote changed within the day: %q then %q", first.Text, again.Text)
	}
}

func TestOfTheDay_VariesAcrossDays(t *testing.T) {
	all := quotes.Collect(repoWithQuotes())

	seen := make(map[string]bool)
	day := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 30; i++ {
		q, _ := quotes.OfTheDay(all, day.AddDate(0, 0, i))
		seen[q.Text] = true
	}
	if len(seen) < 2 {
		t.Error("a month of days should hit more than one quote")
	}
}

func TestOfTheDay_Empty(t *testing.T) {
	if _, found := quotes.OfTheDay(nil, time.Now()); found {
		t.Error("empty wall should yield no quote")
	}
}

func TestRandom_SeededAndEmpty(t *testing.T) {
	all := quotes.Collect(repoWithQuotes())

	first, found := quotes.Random(all, rand.New(rand.NewSource(9)))
	if !found {
		t.Fatal("expected a quote")
	}
	again, _ := quotes.Random(all, rand.New(rand.NewSource(9)))
	if first.Text != again.Text {
		t.Error("seeded draw should be reproducible")
	}

	if _, found := quotes.Random(nil, rand.New(rand.NewSource(9))); found {
		t.Error("empty wall should yield no quote")
	}
}
