package library_test

import (
	"testing"

	"github.com/songeyume/bibli/internal/book"
	"github.com/songeyume/bibli/internal/category"
	"github.com/songeyume/bibli/internal/library"
)

func level(n int) *int { return &n }

// testBooks is the shared fixture: five books spanning the categories,
// ratings and facets the pipeline filters on.
func testBooks() []book.Book {
	return []book.Book{
		{ID: 1, Title: "L'Étranger", Author: "Albert Camus", Rating: 5,
			Tags: []string{"Classique", "Philosophie"}, Publisher: "Gallimard",
			ReadDate: book.NewDate(2025, 3, 14)},
		{ID: 2, Title: "Dune", Author: "Frank Herbert", Rating: 4.5,
			Tags: []string{"Fantasy", "Science-Fiction"}, Publisher: "Robert Laffont",
			ReadDate: book.NewDate(2025, 1, 2)},
		{ID: 3, Title: "Fourth Wing", Author: "Rebecca Yarros", Rating: 3,
			Tags: []string{"Fantasy", "Romance"}, Publisher: "Hugo", SpicyLevel: level(2),
			ReadDate: book.NewDate(2024, 11, 20)},
		{ID: 4, Title: "Pas encore lu", Author: "Inconnu", Rating: 0,
			Tags: []string{"Fantasy"}},
		{ID: 5, Title: "Le Crime de l'Orient-Express", Author: "Agatha Christie", Rating: 2,
			Tags: []string{"Policier"}, Publisher: "Gallimard", SpicyLevel: level(0),
			ReadDate: book.NewDate(2024, 6, 1)},
	}
}

// --- Search predicate ---

func TestFilter_SearchAccentAndCaseInsensitive(t *testing.T) {
	books := testBooks()
	cases := []struct {
		query string
		want  []int
	}{
		{"etranger", []int{1}},  // accent on É folded
		{"ÉTRANGER", []int{1}},  // case folded
		{"camus", []int{1}},     // author
		{"romance", []int{3}},   // tag
		{"gallimard", []int{1, 5}},
		{"4.5", []int{2}},       // stringified rating
	}
	for _, tc := range cases {
		got := library.Filter{Search: tc.query}.Apply(books)
		if !sameIDs(got, tc.want) {
			t.Errorf("Search %q = %v, want %v", tc.query, ids(got), tc.want)
		}
	}
}

// --- Tag predicate (AND) ---

func TestFilter_TagsAreANDed(t *testing.T) {
	books := testBooks()

	one := library.Filter{Tags: []string{"Fantasy"}}.Apply(books)
	if !sameIDs(one, []int{2, 3, 4}) {
		t.Errorf("single tag = %v", ids(one))
	}

	both := library.Filter{Tags: []string{"Fantasy", "Romance"}}.Apply(books)
	if !sameIDs(both, []int{3}) {
		t.Errorf("two tags should AND, got %v", ids(both))
	}

	none := library.Filter{Tags: []string{"Fantasy", "Policier"}}.Apply(books)
	if len(none) != 0 {
		t.Errorf("disjoint tags should match nothing, got %v", ids(none))
	}
}

// --- Rating band ---

func TestFilter_RatingBand(t *testing.T) {
	books := testBooks()

	got := library.Filter{Rating: 4.5}.Apply(books)
	if !sameIDs(got, []int{1, 2}) {
		t.Errorf("rating 4.5 should match 4.5 and 5, got %v", ids(got))
	}

	got = library.Filter{Rating: 3}.Apply(books)
	if !sameIDs(got, []int{3}) {
		t.Errorf("rating 3 = %v", ids(got))
	}
}

// --- Spicy level ---

func TestFilter_SpicyZeroIsReal(t *testing.T) {
	books := testBooks()

	got := library.Filter{}.WithSpicyLevel(0).Apply(books)
	if !sameIDs(got, []int{5}) {
		t.Errorf("spicy 0 = %v, want only the book with explicit level 0", ids(got))
	}

	got = library.Filter{}.WithSpicyLevel(2).Apply(books)
	if !sameIDs(got, []int{3}) {
		t.Errorf("spicy 2 = %v", ids(got))
	}

	// Books without the field never match any concrete level.
	got = library.Filter{}.WithSpicyLevel(1).Apply(books)
	if len(got) != 0 {
		t.Errorf("spicy 1 = %v, want none", ids(got))
	}
}

// --- Category and composition ---

func TestFilter_CategoryFavorite(t *testing.T) {
	got := library.Filter{Category: category.Favorite}.Apply(testBooks())
	if !sameIDs(got, []int{1, 2}) {
		t.Errorf("favorites = %v, want ratings >= 4.5", ids(got))
	}
}

func TestFilter_PredicatesCompose(t *testing.T) {
	f := library.Filter{Category: category.Fantasy, Tags: []string{"Romance"}, Publisher: "Hugo"}
	got := f.Apply(testBooks())
	if !sameIDs(got, []int{3}) {
		t.Errorf("composed filter = %v", ids(got))
	}
}

func TestFilter_Active(t *testing.T) {
	if (library.Filter{}).Active() {
		t.Error("zero filter should be inactive")
	}
	if !(library.Filter{}).WithSpicyLevel(0).Active() {
		t.Error("spicy 0 selection should count as active")
	}
	if !(library.Filter{Search: "x"}).Active() {
		t.Error("search should count as active")
	}
}

// --- helpers ---

func ids(books []book.Book) []int {
	out := make([]int, len(books))
	for i, b := range books {
		out[i] = b.ID
	}
	return out
}

func sameIDs(books []book.Book, want []int) bool {
	if len(books) != len(want) {
		return false
	}
	for i, b := range books {
		if b.ID != want[i] {
			return false
		}
	}
	return true
}
