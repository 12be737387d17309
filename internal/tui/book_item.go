package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"github.com/songeyume/bibli/internal/book"
	"github.com/songeyume/bibli/internal/category"
)

// BookItem wraps a book with its classified category for list rendering.
type BookItem struct {
	Book     book.Book
	Category category.Key
}

// NewBookItem classifies the book and builds its list item.
func NewBookItem(b book.Book) BookItem {
	return BookItem{Book: b, Category: category.Classify(b)}
}

// FilterValue returns the string the list matches against when filtering.
func (b BookItem) FilterValue() string {
	return b.Book.Title + " " + b.Book.Author + " " + strings.Join(b.Book.Tags, " ")
}

// categoryLabel returns the icon and display name for the item's category.
func (b BookItem) categoryLabel() string {
	r := category.ByKey(b.Category)
	if r == nil {
		return string(b.Category)
	}
	return r.Icon + " " + r.Name
}

// Column width constraints
const (
	minTitleWidth    = 12
	maxTitleWidth    = 44
	minAuthorWidth   = 8
	maxAuthorWidth   = 24
	minCategoryWidth = 10
	maxCategoryWidth = 14
	minStarsWidth    = 6
	maxStarsWidth    = 7
	minTagWidth      = 6
	columnGap        = 1
)

// computeColumnWidths distributes available width proportionally across columns.
func computeColumnWidths(totalWidth int) (titleW, authorW, catW, starsW, tagW int) {
	prefix := 2
	gaps := columnGap * 4
	usable := totalWidth - prefix - gaps
	if usable < minTitleWidth+minAuthorWidth+minCategoryWidth+minStarsWidth+minTagWidth {
		return minTitleWidth, minAuthorWidth, minCategoryWidth, minStarsWidth, minTagWidth
	}
	titleW = usable * 40 / 100
	if titleW > maxTitleWidth {
		titleW = maxTitleWidth
	}
	remaining := usable - titleW
	authorW = remaining * 35 / 100
	if authorW > maxAuthorWidth {
		authorW = maxAuthorWidth
	}
	catW = remaining * 25 / 100
	if catW > maxCategoryWidth {
		catW = maxCategoryWidth
	}
	starsW = maxStarsWidth
	tagW = remaining - authorW - catW - starsW

	if titleW < minTitleWidth {
		titleW = minTitleWidth
	}
	if authorW < minAuthorWidth {
		authorW = minAuthorWidth
	}
	if catW < minCategoryWidth {
		catW = minCategoryWidth
	}
	if tagW < minTagWidth {
		tagW = minTagWidth
	}
	return
}

// padOrTruncate pads s to exactly width display cells, truncating with "…"
// if necessary. Widths are terminal cells, not runes, so emoji and other
// wide glyphs keep the columns aligned.
func padOrTruncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = xansi.Truncate(s, width, "…")
	if w := xansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// truncateText truncates a string to maxWidth display cells with ellipsis.
func truncateText(s string, maxWidth int) string {
	return xansi.Truncate(s, maxWidth, "…")
}

// bookDelegate renders books as fixed-width columns, one per row.
type bookDelegate struct{}

func (d bookDelegate) Height() int  { return 1 }
func (d bookDelegate) Spacing() int { return 0 }
func (d bookDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

func (d bookDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	bookItem, ok := item.(BookItem)
	if !ok {
		return
	}

	listWidth := m.Width()
	if listWidth <= 0 {
		listWidth = 80
	}
	titleW, authorW, catW, starsW, tagW := computeColumnWidths(listWidth)

	gap := strings.Repeat(" ", columnGap)

	isCursor := index == m.Index()
	prefix := "  "
	if isCursor {
		prefix = StyleAccent.Render("›") + " "
	}

	titleCol := padOrTruncate(bookItem.Book.Title, titleW)
	authorCol := padOrTruncate(bookItem.Book.Author, authorW)
	catCol := padOrTruncate(bookItem.categoryLabel(), catW)

	starsStr := ""
	if bookItem.Book.IsRead() {
		starsStr = RenderStars(bookItem.Book.Rating, bookItem.Book.RatingScale())
	}
	starsCol := padOrTruncate(starsStr, starsW)

	tagCol := padOrTruncate(strings.Join(bookItem.Book.Tags, " · "), tagW)

	var line string
	if isCursor {
		line = prefix +
			StyleHighlight.Render(titleCol) + gap +
			lipgloss.NewStyle().Foreground(ColorAccent).Faint(true).Render(authorCol) + gap +
			StyleAccent.Render(catCol) + gap +
			StyleHighlight.Render(starsCol) + gap +
			StyleTag.Render(tagCol)
	} else {
		line = prefix +
			StyleNormal.Render(titleCol) + gap +
			StyleHelp.Render(authorCol) + gap +
			StyleHelp.Render(catCol) + gap +
			StyleAccent.Render(starsCol) + gap +
			StyleTag.Render(tagCol)
	}
	_, _ = fmt.Fprint(w, line)
}
