package tui

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/songeyume/bibli/internal/book"
	"github.com/songeyume/bibli/internal/category"
	"github.com/songeyume/bibli/internal/library"
)

// browserKeyMap defines keyboard shortcuts for the library browser.
type browserKeyMap struct {
	quit      key.Binding
	search    key.Binding
	category  key.Binding
	tag       key.Binding
	publisher key.Binding
	rating    key.Binding
	spicy     key.Binding
	sortBy    key.Binding
	nextPage  key.Binding
	prevPage  key.Binding
	reset     key.Binding
	wheel     key.Binding
	details   key.Binding
}

var browserKeys = browserKeyMap{
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quitter"),
	),
	search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "recherche"),
	),
	category: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "catégorie"),
	),
	tag: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "tags"),
	),
	publisher: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "éditeur"),
	),
	rating: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "note"),
	),
	spicy: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "spicy"),
	),
	sortBy: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "tri"),
	),
	nextPage: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "page suiv."),
	),
	prevPage: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "page préc."),
	),
	reset: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "réinitialiser"),
	),
	wheel: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "au hasard"),
	),
	details: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "fiche"),
	),
}

type browserMode int

const (
	modeBrowse browserMode = iota
	modeSearch
	modeFacet
	modeDetail
)

// Facet identifiers used between the browser and its overlays.
const (
	facetCategory  = "category"
	facetTag       = "tag"
	facetPublisher = "publisher"
	facetRating    = "rating"
	facetSpicy     = "spicy"
	facetSort      = "sort"
)

// BrowserModel is the interactive library browser. It owns a library.View
// and mirrors each page of results into a bubbles list.
type BrowserModel struct {
	view *library.View
	repo *book.Repository

	list   list.Model
	search textinput.Model
	picker FacetPicker
	mode   browserMode

	detail     *BookItem
	coverData  map[int][]byte
	coverState map[int]CoverState
	protocol   TerminalImageProtocol

	rng *rand.Rand

	width     int
	height    int
	activeCmd string
	quitting  bool
}

// NewBrowser builds the browser around a view, which may already carry
// filters seeded from command-line flags.
func NewBrowser(repo *book.Repository, view *library.View, rng *rand.Rand) BrowserModel {
	l := list.New(nil, bookDelegate{}, 0, 0)
	l.SetShowStatusBar(false)
	l.SetShowTitle(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.Styles.PaginationStyle = StyleHelp

	ti := textinput.New()
	ti.Placeholder = "titre, auteur, tag, résumé…"
	ti.Prompt = "🔍 "
	ti.CharLimit = 120

	m := BrowserModel{
		view:       view,
		repo:       repo,
		list:       l,
		search:     ti,
		coverData:  make(map[int][]byte),
		coverState: make(map[int]CoverState),
		protocol:   DetectImageProtocol(),
		rng:        rng,
	}
	m.refreshList()
	return m
}

// refreshList mirrors the view's current page into the list widget, so the
// grid always agrees with the page counter in the header.
func (m *BrowserModel) refreshList() {
	page := m.view.Page()
	items := make([]list.Item, len(page.Items))
	for i, b := range page.Items {
		items[i] = NewBookItem(b)
	}
	m.list.SetItems(items)
	if len(items) > 0 {
		m.list.ResetSelected()
	}
}

func (m BrowserModel) Init() tea.Cmd {
	return nil
}

func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := StyleBorder.GetFrameSize()
		// Header and footer take four rows outside the list
		m.list.SetSize(msg.Width-h, msg.Height-v-4)
		m.picker.SetHeight(msg.Height - v - 4)
		return m, nil

	case ClearActiveCmdMsg:
		m.activeCmd = ""
		return m, nil

	case FacetChosenMsg:
		m.mode = modeBrowse
		if !msg.Canceled {
			m.applyFacet(msg.Facet, msg.Value)
			m.refreshList()
		}
		return m, nil

	case coverLoadedMsg:
		m.coverData[msg.bookID] = msg.data
		m.coverState[msg.bookID] = CoverLoaded
		return m, nil

	case coverErroredMsg:
		m.coverState[msg.bookID] = CoverErrored
		return m, nil
	}

	switch m.mode {
	case modeSearch:
		return m.updateSearch(msg)
	case modeFacet:
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	case modeDetail:
		return m.updateDetail(msg)
	}
	return m.updateBrowse(msg)
}

func (m BrowserModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, browserKeys.quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, browserKeys.search):
		m.mode = modeSearch
		m.search.SetValue(m.view.Filter().Search)
		m.search.Focus()
		return m, textinput.Blink

	case key.Matches(keyMsg, browserKeys.category):
		m.openFacet(facetCategory)
		return m, nil

	case key.Matches(keyMsg, browserKeys.tag):
		m.openFacet(facetTag)
		return m, nil

	case key.Matches(keyMsg, browserKeys.publisher):
		m.openFacet(facetPublisher)
		return m, nil

	case key.Matches(keyMsg, browserKeys.rating):
		m.openFacet(facetRating)
		return m, nil

	case key.Matches(keyMsg, browserKeys.spicy):
		m.openFacet(facetSpicy)
		return m, nil

	case key.Matches(keyMsg, browserKeys.sortBy):
		m.openFacet(facetSort)
		return m, nil

	case key.Matches(keyMsg, browserKeys.nextPage):
		m.view.NextPage()
		m.refreshList()
		m.activeCmd = "n"
		return m, HighlightCmd()

	case key.Matches(keyMsg, browserKeys.prevPage):
		m.view.PrevPage()
		m.refreshList()
		m.activeCmd = "b"
		return m, HighlightCmd()

	case key.Matches(keyMsg, browserKeys.reset):
		m.view.Reset()
		m.refreshList()
		m.activeCmd = "x"
		return m, HighlightCmd()

	case key.Matches(keyMsg, browserKeys.wheel):
		return m.spinWheel()

	case key.Matches(keyMsg, browserKeys.details):
		if item, ok := m.list.SelectedItem().(BookItem); ok {
			return m.openDetail(item)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m BrowserModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			m.mode = modeBrowse
			m.search.Blur()
			m.view.SetSearch(m.search.Value())
			m.refreshList()
			return m, nil
		case "esc":
			m.mode = modeBrowse
			m.search.Blur()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m BrowserModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "esc", "backspace", "enter":
		m.mode = modeBrowse
		m.detail = nil
		return m, nil
	case "w":
		return m.spinWheel()
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// spinWheel draws a weighted random read book and opens its detail view.
func (m BrowserModel) spinWheel() (tea.Model, tea.Cmd) {
	picked, ok := library.Pick(m.repo.All(), library.PickFilter{}, m.rng)
	if !ok {
		return m, nil
	}
	return m.openDetail(NewBookItem(picked))
}

// openDetail switches to the detail view, starting a cover fetch the first
// time a book with a cover is shown.
func (m BrowserModel) openDetail(item BookItem) (tea.Model, tea.Cmd) {
	m.mode = modeDetail
	m.detail = &item

	id := item.Book.ID
	if m.protocol == ProtocolNone || item.Book.Cover == "" {
		return m, nil
	}
	if _, started := m.coverState[id]; started {
		return m, nil
	}
	m.coverState[id] = CoverLoading
	return m, fetchCover(id, item.Book.Cover)
}

// openFacet builds the overlay for the requested facet from the current
// view counts.
func (m *BrowserModel) openFacet(facet string) {
	f := m.view.Filter()
	facets := m.view.Facets()

	var title string
	var options []FacetOption

	switch facet {
	case facetCategory:
		title = "Catégories"
		for _, c := range facets.Categories {
			rule := category.ByKey(c.Key)
			label := string(c.Key)
			if rule != nil {
				label = rule.Icon + " " + rule.Name
			}
			options = append(options, FacetOption{
				Value:  string(c.Key),
				Label:  label,
				Count:  c.Count,
				Active: f.Category == c.Key,
			})
		}

	case facetTag:
		title = "Tags"
		for _, t := range facets.Tags {
			options = append(options, FacetOption{
				Value:  t.Tag,
				Count:  t.Count,
				Active: f.HasTag(t.Tag),
			})
		}

	case facetPublisher:
		title = "Éditeurs"
		for _, p := range facets.Publishers {
			options = append(options, FacetOption{
				Value:  p.Publisher,
				Count:  p.Count,
				Active: f.Publisher == p.Publisher,
			})
		}

	case facetRating:
		title = "Note (4 = 4 et 4.5)"
		for r := 5.0; r >= 1.0; r -= 0.5 {
			v := strconv.FormatFloat(r, 'f', -1, 64)
			options = append(options, FacetOption{
				Value:  v,
				Label:  RenderStars(r, 5),
				Active: f.Rating == r,
			})
		}

	case facetSpicy:
		title = "Niveau spicy"
		for _, lvl := range spicyLevels(m.repo.All()) {
			options = append(options, FacetOption{
				Value:  strconv.Itoa(lvl),
				Label:  RenderSpicy(lvl),
				Active: f.SpicyLevel != nil && *f.SpicyLevel == lvl,
			})
		}

	case facetSort:
		title = "Trier par"
		for _, s := range []struct {
			key   library.SortKey
			label string
		}{
			{library.SortRecency, "Lecture récente"},
			{library.SortRating, "Meilleures notes"},
			{library.SortTitle, "Titre"},
			{library.SortAuthor, "Auteur"},
		} {
			options = append(options, FacetOption{
				Value:  string(s.key),
				Label:  s.label,
				Active: m.view.SortKey() == s.key,
			})
		}
	}

	m.picker = NewFacetPicker(title, facet, options)
	if m.height > 0 {
		_, v := StyleBorder.GetFrameSize()
		m.picker.SetHeight(m.height - v - 4)
	}
	m.mode = modeFacet
}

// applyFacet feeds a chosen overlay value back into the view.
func (m *BrowserModel) applyFacet(facet, value string) {
	switch facet {
	case facetCategory:
		m.view.SelectCategory(category.Key(value))
	case facetTag:
		m.view.ToggleTag(value)
	case facetPublisher:
		m.view.SelectPublisher(value)
	case facetRating:
		if r, err := strconv.ParseFloat(value, 64); err == nil {
			m.view.SelectRating(r)
		}
	case facetSpicy:
		if lvl, err := strconv.Atoi(value); err == nil {
			m.view.SelectSpicyLevel(lvl)
		}
	case facetSort:
		if k, err := library.ParseSortKey(value); err == nil {
			m.view.SetSort(k)
		}
	}
}

// spicyLevels collects the distinct spicy levels present in the collection.
func spicyLevels(books []book.Book) []int {
	seen := make(map[int]bool)
	var levels []int
	for _, b := range books {
		if !b.HasSpicyLevel() {
			continue
		}
		if !seen[*b.SpicyLevel] {
			seen[*b.SpicyLevel] = true
			levels = append(levels, *b.SpicyLevel)
		}
	}
	for i := 0; i < len(levels); i++ {
		for j := i + 1; j < len(levels); j++ {
			if levels[j] < levels[i] {
				levels[i], levels[j] = levels[j], levels[i]
			}
		}
	}
	return levels
}

// RunBrowser launches the interactive library browser.
func RunBrowser(repo *book.Repository, view *library.View, rng *rand.Rand) error {
	if repo.Len() == 0 {
		return fmt.Errorf("aucun livre dans la bibliothèque")
	}

	m := NewBrowser(repo, view, rng)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
