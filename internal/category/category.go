// Package category maps a book's tags to exactly one shelf category.
//
// Categories are static configuration, not derived from the data. A rule
// is either a tag-set rule (the book carries one of the rule's tags) or
// a predicate rule (favorites: rating at or above the threshold).
// Classification walks the general tag rules in table order, then the
// favorites predicate, then falls back to "autre". That priority is
// fixed; changing it silently re-shelves books.
package category

import (
	"github.com/songeyume/bibli/internal/book"
)

// Key identifies a category.
type Key string

// The configured categories, in classification priority order.
const (
	Fantasy   Key = "fantasy"
	Classique Key = "classique"
	Drame     Key = "drame"
	Jeunesse  Key = "jeunesse"
	Policier  Key = "policier"
	Factuel   Key = "factuel"
	Voyage    Key = "voyage"
	Favorite  Key = "favorite"
	Autre     Key = "autre"
)

// FavoriteThreshold is the rating at which a book counts as a favorite.
const FavoriteThreshold = 4.5

// Rule defines one category: a tag-set rule when Tags is non-empty, a
// predicate rule when Predicate is set. Exactly one of the two drives
// matching; Tags stays populated on the favorites rule for display only.
type Rule struct {
	Key       Key
	Name      string
	Icon      string
	Tags      []string
	Predicate func(book.Book) bool
}

// Match reports whether the book belongs to this category.
func (r Rule) Match(b book.Book) bool {
	if r.Predicate != nil {
		return r.Predicate(b)
	}
	for _, want := range r.Tags {
		if b.HasTag(want) {
			return true
		}
	}
	return false
}

// rules holds the category table. Category display names appear inside
// their own tag sets on purpose: the dataset tags books with literal
// category names ("Fantasy", "Jeunesse") and excluding them would break
// matching for exactly those books.
var rules = []Rule{
	{Key: Fantasy, Name: "Fantasy", Icon: "🐉",
		Tags: []string{"Fantasy", "Fantastique", "Science-Fiction"}},
	{Key: Classique, Name: "Classique", Icon: "🏛",
		Tags: []string{"Classique", "Philosophie", "Existentialisme", "Poésie"}},
	{Key: Drame, Name: "Drame", Icon: "🎭",
		Tags: []string{"Drame", "Famille", "Social", "Romance", "Historique", "Roman-fleuve"}},
	{Key: Jeunesse, Name: "Jeunesse", Icon: "🧸",
		Tags: []string{"Jeunesse"}},
	{Key: Policier, Name: "Policier", Icon: "🕵",
		Tags: []string{"Policier", "Thriller", "Mystère", "Suspense", "Crime"}},
	{Key: Factuel, Name: "Factuel", Icon: "📜",
		Tags: []string{"Biographie", "Histoire", "Essai", "Documentaire", "Science", "Géographie"}},
	{Key: Voyage, Name: "Voyage", Icon: "🧭",
		Tags: []string{"Voyage", "Exploration", "Carnet de voyage", "Guide de voyage"}},
	{Key: Favorite, Name: "Favoris", Icon: "⭐",
		Tags: []string{"Favoris"},
		Predicate: func(b book.Book) bool {
			return b.Rating >= FavoriteThreshold
		}},
	{Key: Autre, Name: "Autre", Icon: "📖",
		Tags: []string{"Autre", "Divers", "Politique", "Écologie"}},
}

// All returns the category table in priority order.
func All() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// ByKey returns the rule for a key, or nil for an unknown key.
func ByKey(k Key) *Rule {
	for i := range rules {
		if rules[i].Key == k {
			r := rules[i]
			return &r
		}
	}
	return nil
}

// Valid reports whether k names a configured category.
func Valid(k Key) bool {
	return ByKey(k) != nil
}

// Names returns the display names of every category. The tag facet uses
// this to drop tags that are exact category names. Only the names, not
// the categories' full tag sets.
func Names() []string {
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = r.Name
	}
	return out
}

// Classify returns the single category for a book: first general tag
// rule that intersects the book's tags, else favorite when the rating
// predicate holds, else autre. Total and deterministic; never fails on
// a book with no tags.
func Classify(b book.Book) Key {
	for _, r := range rules {
		if r.Key == Favorite || r.Key == Autre {
			continue
		}
		if r.Match(b) {
			return r.Key
		}
	}
	if f := ByKey(Favorite); f.Match(b) {
		return Favorite
	}
	return Autre
}

// Matches reports whether the book belongs under the given category for
// filtering purposes. Favorites bypass classification entirely (rating
// threshold only); every other key compares against Classify so filter
// results always agree with the shelf a book is classified onto.
func Matches(b book.Book, k Key) bool {
	if k == Favorite {
		return b.Rating >= FavoriteThreshold
	}
	return Classify(b) == k
}
