package book

// Repository is the in-memory dataset: loaded once, read-only for the
// life of the process. It is passed by reference into the view layer so
// the filtering pipeline stays testable without any UI attached.
type Repository struct {
	books []Book
	byID  map[int]int
}

// NewRepository builds a repository from a book list. The slice is
// copied; callers keep no handle into the repository's storage.
func NewRepository(books []Book) *Repository {
	r := &Repository{
		books: make([]Book, len(books)),
		byID:  make(map[int]int, len(books)),
	}
	copy(r.books, books)
	for i, b := range r.books {
		if _, dup := r.byID[b.ID]; !dup {
			r.byID[b.ID] = i
		}
	}
	return r
}

// Len returns the number of books.
func (r *Repository) Len() int {
	return len(r.books)
}

// All returns a copy of the full book list in dataset order.
func (r *Repository) All() []Book {
	out := make([]Book, len(r.books))
	copy(out, r.books)
	return out
}

// ByID returns the book with the given id, or nil.
func (r *Repository) ByID(id int) *Book {
	i, ok := r.byID[id]
	if !ok {
		return nil
	}
	b := r.books[i]
	return &b
}

// ByAuthor returns the other books by the same author, in dataset
// order. Blank authors are never grouped: a record without an author has
// no "other books".
func (r *Repository) ByAuthor(author string, excludeID int) []Book {
	if author == "" {
		return nil
	}
	var out []Book
	for _, b := range r.books {
		if b.Author == author && b.ID != excludeID {
			out = append(out, b)
		}
	}
	return out
}
