package library

import (
	"github.com/songeyume/bibli/internal/book"
	"github.com/songeyume/bibli/internal/category"
)

// View owns the library screen's state: the active filter, sort key and
// page number, plus the derived filtered list and facet availability.
// Invariants it maintains:
//
//   - any filter change resets the page to 1
//   - a selected publisher whose books were all filtered away is
//     cleared instead of lingering invisibly
//   - selecting a category clears the tag selection
type View struct {
	repo     *book.Repository
	filter   Filter
	sortKey  SortKey
	page     int
	pageSize int

	filtered []book.Book
	facets   Facets
}

// NewView wires a view to a repository. Default order is most recent
// read first.
func NewView(repo *book.Repository, pageSize int) *View {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	v := &View{
		repo:     repo,
		sortKey:  SortRecency,
		page:     1,
		pageSize: pageSize,
	}
	v.recompute(false)
	return v
}

// Filter returns the active filter.
func (v *View) Filter() Filter { return v.filter }

// SortKey returns the active sort key.
func (v *View) SortKey() SortKey { return v.sortKey }

// Facets returns the current facet availability.
func (v *View) Facets() Facets { return v.facets }

// ResultCount returns the size of the filtered set.
func (v *View) ResultCount() int { return len(v.filtered) }

// Empty reports whether the active filter matched nothing, a valid
// terminal state rendered as "no results, reset filters".
func (v *View) Empty() bool { return len(v.filtered) == 0 }

// Results returns a copy of the whole filtered, sorted list.
func (v *View) Results() []book.Book {
	out := make([]book.Book, len(v.filtered))
	copy(out, v.filtered)
	return out
}

// Page returns the current page of the filtered, sorted list.
func (v *View) Page() Page {
	return Paginate(v.filtered, v.pageSize, v.page)
}

// SetSearch replaces the free-text term.
func (v *View) SetSearch(term string) {
	if v.filter.Search == term {
		return
	}
	v.filter.Search = term
	v.recompute(true)
}

// ToggleTag adds the tag to the selection, or removes it when already
// selected.
func (v *View) ToggleTag(tag string) {
	for i, t := range v.filter.Tags {
		if t == tag {
			v.filter.Tags = append(v.filter.Tags[:i], v.filter.Tags[i+1:]...)
			v.recompute(true)
			return
		}
	}
	v.filter.Tags = append(v.filter.Tags, tag)
	v.recompute(true)
}

// ClearTags drops the whole tag selection.
func (v *View) ClearTags() {
	if len(v.filter.Tags) == 0 {
		return
	}
	v.filter.Tags = nil
	v.recompute(true)
}

// SelectCategory picks a category, or clears it when re-selected. A
// category switch also clears the tags: the tag list changes under the
// new category and stale picks would just empty the grid.
func (v *View) SelectCategory(k category.Key) {
	if v.filter.Category == k {
		v.filter.Category = ""
	} else {
		v.filter.Category = k
		v.filter.Tags = nil
	}
	v.recompute(true)
}

// SelectPublisher picks a publisher, or clears it when re-selected.
func (v *View) SelectPublisher(name string) {
	if v.filter.Publisher == name {
		v.filter.Publisher = ""
	} else {
		v.filter.Publisher = name
	}
	v.recompute(true)
}

// SelectRating picks a rating band (r and r+0.5), or clears it when
// re-selected.
func (v *View) SelectRating(r float64) {
	if v.filter.Rating == r {
		v.filter.Rating = 0
	} else {
		v.filter.Rating = r
	}
	v.recompute(true)
}

// SelectSpicyLevel picks a spicy level, or clears it when re-selected.
// Level 0 is a real selection.
func (v *View) SelectSpicyLevel(level int) {
	if v.filter.SpicyLevel != nil && *v.filter.SpicyLevel == level {
		v.filter.SpicyLevel = nil
	} else {
		v.filter = v.filter.WithSpicyLevel(level)
	}
	v.recompute(true)
}

// ClearSpicyLevel switches the spicy facet off.
func (v *View) ClearSpicyLevel() {
	if v.filter.SpicyLevel == nil {
		return
	}
	v.filter.SpicyLevel = nil
	v.recompute(true)
}

// SetSort reorders the filtered list. Sorting is not a filter: the page
// resets anyway because the grid contents shift under the reader.
func (v *View) SetSort(key SortKey) {
	if v.sortKey == key {
		return
	}
	v.sortKey = key
	v.recompute(true)
}

// SetPage moves to the requested page, clamped to the valid range.
func (v *View) SetPage(page int) {
	v.page = ClampPage(page, len(v.filtered), v.pageSize)
}

// NextPage and PrevPage step one page, clamped at the ends.
func (v *View) NextPage() { v.SetPage(v.page + 1) }
func (v *View) PrevPage() { v.SetPage(v.page - 1) }

// Reset drops every filter, the sort override and the page position.
func (v *View) Reset() {
	v.filter = Filter{}
	v.sortKey = SortRecency
	v.recompute(true)
}

// recompute reruns the pipeline: filter, sort, facets, and the stale
// publisher check. The second pass after clearing a vanished publisher
// cannot recurse again; the publisher facet is empty-selection by then.
func (v *View) recompute(resetPage bool) {
	all := v.repo.All()
	v.filtered = v.filter.Apply(all)
	Sort(v.filtered, v.sortKey)
	v.facets = Recalculate(all, v.filter)

	if v.filter.Publisher != "" && !v.facets.HasPublisher(v.filter.Publisher) {
		v.filter.Publisher = ""
		v.recompute(resetPage)
		return
	}

	if resetPage {
		v.page = 1
	} else {
		v.page = ClampPage(v.page, len(v.filtered), v.pageSize)
	}
}
