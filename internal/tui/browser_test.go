package tui_test

import (
	"math/rand"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/songeyume/bibli/internal/book"
	"github.com/songeyume/bibli/internal/library"
	"github.com/songeyume/bibli/internal/tui"
)

var browserJSON = []byte(`[
  {"id": 1, "title": "Brume", "author": "A. Premier", "rating": 5, "tags": ["Fantasy"], "readDate": "2026-05-05"},
  {"id": 2, "title": "Cendres", "author": "B. Deuxième", "rating": 4.5, "tags": ["Fantasy"], "readDate": "2026-05-04"},
  {"id": 3, "title": "Dunes", "author": "C. Troisième", "rating": 4, "tags": ["Drame"], "readDate": "2026-05-03"},
  {"id": 4, "title": "Écume", "author": "D. Quatrième", "rating": 3.5, "tags": ["Drame"], "readDate": "2026-05-02"},
  {"id": 5, "title": "Falaises", "author": "E. Cinquième", "rating": 3, "tags": ["Voyage"], "readDate": "2026-05-01"}
]`)

func newTestBrowser(t *testing.T, pageSize int) tui.BrowserModel {
	t.Helper()
	repo, err := book.Parse(browserJSON)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	view := library.NewView(repo, pageSize)
	m := tui.NewBrowser(repo, view, rand.New(rand.NewSource(1)))

	sized, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return sized.(tui.BrowserModel)
}

func press(t *testing.T, m tui.BrowserModel, key string) tui.BrowserModel {
	t.Helper()
	next, _ := m.Update(keyMsg(key))
	return next.(tui.BrowserModel)
}

func assertShows(t *testing.T, view string, want ...string) {
	t.Helper()
	for _, s := range want {
		if !strings.Contains(view, s) {
			t.Errorf("view missing %q", s)
		}
	}
}

func assertHides(t *testing.T, view string, banned ...string) {
	t.Helper()
	for _, s := range banned {
		if strings.Contains(view, s) {
			t.Errorf("view should not contain %q", s)
		}
	}
}

func TestBrowser_GridShowsOnlyCurrentPage(t *testing.T) {
	m := newTestBrowser(t, 2)

	view := m.View()
	assertShows(t, view, "page 1/3", "Brume", "Cendres")
	assertHides(t, view, "Dunes", "Écume", "Falaises")
}

func TestBrowser_NextPageAdvancesGridWithHeader(t *testing.T) {
	m := newTestBrowser(t, 2)

	m = press(t, m, "n")
	view := m.View()
	assertShows(t, view, "page 2/3", "Dunes", "Écume")
	assertHides(t, view, "Brume", "Cendres", "Falaises")

	m = press(t, m, "n")
	view = m.View()
	assertShows(t, view, "page 3/3", "Falaises")
	assertHides(t, view, "Dunes", "Écume")
}

func TestBrowser_PageNavigationClampsAtEdges(t *testing.T) {
	m := newTestBrowser(t, 2)

	// Already on the first page: b stays put.
	m = press(t, m, "b")
	assertShows(t, m.View(), "page 1/3", "Brume")

	// Past the last page: n stays on it.
	m = press(t, m, "n")
	m = press(t, m, "n")
	m = press(t, m, "n")
	assertShows(t, m.View(), "page 3/3", "Falaises")
}

func TestBrowser_FilterChangeResetsGridToFirstPage(t *testing.T) {
	m := newTestBrowser(t, 2)

	m = press(t, m, "n")
	assertShows(t, m.View(), "page 2/3")

	// Entering a search term snaps back to page 1 of the narrowed set.
	m = press(t, m, "/")
	for _, r := range "drame" {
		m = press(t, m, string(r))
	}
	m = press(t, m, "enter")

	view := m.View()
	assertShows(t, view, "page 1/1", "Dunes", "Écume")
	assertHides(t, view, "Brume", "Falaises")
}

func TestBrowser_RatingOverlayStatesBandMatch(t *testing.T) {
	m := newTestBrowser(t, 2)

	// The overlay copy states the band semantics: 4 also matches 4.5.
	m = press(t, m, "r")
	assertShows(t, m.View(), "4 = 4 et 4.5")
}
