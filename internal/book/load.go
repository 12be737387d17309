package book

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads and parses the dataset file.
func Load(path string) (*Repository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}
	return Parse(data)
}

// Parse decodes a JSON array of books into a repository. Missing
// collections come back empty rather than nil so downstream predicates
// never have to nil-check.
func Parse(data []byte) (*Repository, error) {
	if len(data) == 0 {
		return NewRepository(nil), nil
	}
	var books []Book
	if err := json.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("parsing dataset JSON: %w", err)
	}
	for i := range books {
		if books[i].Tags == nil {
			books[i].Tags = []string{}
		}
		if books[i].Quotes == nil {
			books[i].Quotes = []string{}
		}
	}
	return NewRepository(books), nil
}

// Export writes the repository back out as indented JSON. This backs the
// export command only; the source dataset is never rewritten in place.
func Export(path string, repo *Repository) error {
	data, err := json.MarshalIndent(repo.All(), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding dataset: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0600)
}
