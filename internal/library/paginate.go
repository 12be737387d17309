package library

import "github.com/songeyume/bibli/internal/book"

// DefaultPageSize matches the library grid: 4 rows of 12.
const DefaultPageSize = 48

// Page is one slice of a filtered, sorted list.
type Page struct {
	Items      []book.Book
	Number     int
	PageSize   int
	TotalPages int
	TotalItems int
}

// Start returns the 1-based index of the first item on the page, 0 for
// an empty list.
func (p Page) Start() int {
	if p.TotalItems == 0 {
		return 0
	}
	return (p.Number-1)*p.PageSize + 1
}

// End returns the 1-based index of the last item on the page.
func (p Page) End() int {
	if p.TotalItems == 0 {
		return 0
	}
	return p.Start() + len(p.Items) - 1
}

// TotalPages computes ceil(n/pageSize) with a floor of one page: an
// empty result still renders as a single empty page, never zero pages.
func TotalPages(n, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	pages := (n + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// ClampPage forces page into [1, TotalPages(n, pageSize)]. Out-of-range
// requests are a UI event, not an error.
func ClampPage(page, n, pageSize int) int {
	total := TotalPages(n, pageSize)
	if page < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}

// Paginate slices the list into the requested fixed-size page, silently
// clamping the page number.
func Paginate(books []book.Book, pageSize, page int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	page = ClampPage(page, len(books), pageSize)
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(books) {
		start = len(books)
	}
	if end > len(books) {
		end = len(books)
	}
	items := make([]book.Book, end-start)
	copy(items, books[start:end])
	return Page{
		Items:      items,
		Number:     page,
		PageSize:   pageSize,
		TotalPages: TotalPages(len(books), pageSize),
		TotalItems: len(books),
	}
}
