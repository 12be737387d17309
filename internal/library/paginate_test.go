package library_test

import (
	"testing"

	"github.com/songeyume/bibli/internal/book"
	"github.com/songeyume/bibli/internal/library"
)

func numbered(n int) []book.Book {
	out := make([]book.Book, n)
	for i := range out {
		out[i] = book.Book{ID: i + 1}
	}
	return out
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		n, pageSize, want int
	}{
		{0, 48, 1}, // empty list still renders one page
		{1, 48, 1},
		{48, 48, 1},
		{49, 48, 2},
		{5, 2, 3},
		{96, 48, 2},
	}
	for _, tc := range cases {
		if got := library.TotalPages(tc.n, tc.pageSize); got != tc.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tc.n, tc.pageSize, got, tc.want)
		}
	}
}

func TestClampPage(t *testing.T) {
	cases := []struct {
		page, n, pageSize, want int
	}{
		{0, 10, 48, 1},
		{-3, 10, 48, 1},
		{1, 10, 48, 1},
		{7, 10, 48, 1},  // beyond the end clamps silently
		{2, 49, 48, 2},
		{9, 49, 48, 2},
		{1, 0, 48, 1},   // empty list pins to page 1
	}
	for _, tc := range cases {
		if got := library.ClampPage(tc.page, tc.n, tc.pageSize); got != tc.want {
			t.Errorf("ClampPage(%d, %d, %d) = %d, want %d", tc.page, tc.n, tc.pageSize, got, tc.want)
		}
	}
}

func TestPaginate_FiveBooksPageSizeTwo(t *testing.T) {
	books := numbered(5)

	p1 := library.Paginate(books, 2, 1)
	if p1.TotalPages != 3 || !sameIDs(p1.Items, []int{1, 2}) {
		t.Errorf("page 1 = %v (%d pages)", ids(p1.Items), p1.TotalPages)
	}
	p3 := library.Paginate(books, 2, 3)
	if !sameIDs(p3.Items, []int{5}) {
		t.Errorf("last page = %v, want the single leftover", ids(p3.Items))
	}
	if p3.Start() != 5 || p3.End() != 5 {
		t.Errorf("last page Start/End = %d/%d", p3.Start(), p3.End())
	}
}

func TestPaginate_RoundTrip(t *testing.T) {
	books := numbered(11)

	var all []book.Book
	total := library.TotalPages(len(books), 4)
	for page := 1; page <= total; page++ {
		all = append(all, library.Paginate(books, 4, page).Items...)
	}
	if !sameIDs(all, ids(books)) {
		t.Errorf("concatenated pages = %v", ids(all))
	}
}

func TestPaginate_EmptyList(t *testing.T) {
	p := library.Paginate(nil, 48, 3)
	if p.Number != 1 || p.TotalPages != 1 || len(p.Items) != 0 {
		t.Errorf("empty page = %+v", p)
	}
	if p.Start() != 0 || p.End() != 0 {
		t.Errorf("empty Start/End = %d/%d", p.Start(), p.End())
	}
}

func TestPaginate_ClampsOutOfRange(t *testing.T) {
	books := numbered(5)
	p := library.Paginate(books, 2, 99)
	if p.Number != 3 {
		t.Errorf("out-of-range page landed on %d, want last page", p.Number)
	}
}

func TestPaginate_ItemsAreACopy(t *testing.T) {
	books := numbered(3)
	p := library.Paginate(books, 48, 1)
	p.Items[0].ID = 999
	if books[0].ID != 1 {
		t.Error("Paginate must copy the slice")
	}
}
