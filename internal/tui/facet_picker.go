package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// FacetOption is one selectable entry in a facet overlay: a value plus the
// number of results selecting it would yield. Active marks the value already
// present in the filter, so selecting it again toggles it off.
type FacetOption struct {
	Value  string
	Label  string
	Count  int
	Active bool
}

// FacetPicker is an overlay for choosing one facet value. Unlike a full
// screen picker it renders inside the browser and hands the chosen value
// back through a message instead of quitting the program.
type FacetPicker struct {
	Title   string
	Facet   string
	options []FacetOption
	cursor  int
	offset  int
	height  int
}

// FacetChosenMsg reports the value picked in a facet overlay.
// Canceled is set when the overlay was dismissed without choosing.
type FacetChosenMsg struct {
	Facet    string
	Value    string
	Canceled bool
}

// NewFacetPicker builds an overlay; the cursor starts on the active option
// when there is one.
func NewFacetPicker(title, facet string, options []FacetOption) FacetPicker {
	p := FacetPicker{Title: title, Facet: facet, options: options, height: 12}
	for i, opt := range options {
		if opt.Active {
			p.cursor = i
			break
		}
	}
	p.scroll()
	return p
}

// SetHeight bounds the number of visible rows.
func (p *FacetPicker) SetHeight(h int) {
	if h < 3 {
		h = 3
	}
	p.height = h
	p.scroll()
}

func (p *FacetPicker) scroll() {
	visible := p.height - 2
	if visible < 1 {
		visible = 1
	}
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+visible {
		p.offset = p.cursor - visible + 1
	}
}

// Update handles navigation and selection keys.
func (p FacetPicker) Update(msg tea.Msg) (FacetPicker, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch key.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
		p.scroll()
	case "down", "j":
		if p.cursor < len(p.options)-1 {
			p.cursor++
		}
		p.scroll()
	case "enter":
		if len(p.options) == 0 {
			return p, cancelFacet(p.Facet)
		}
		value := p.options[p.cursor].Value
		facet := p.Facet
		return p, func() tea.Msg {
			return FacetChosenMsg{Facet: facet, Value: value}
		}
	case "esc", "q":
		return p, cancelFacet(p.Facet)
	}
	return p, nil
}

func cancelFacet(facet string) tea.Cmd {
	return func() tea.Msg {
		return FacetChosenMsg{Facet: facet, Canceled: true}
	}
}

// View renders the overlay box.
func (p FacetPicker) View() string {
	var s strings.Builder
	s.WriteString(StyleHeader.Render(p.Title))
	s.WriteString("\n")

	if len(p.options) == 0 {
		s.WriteString(StyleHelp.Render("  (aucune option)"))
		s.WriteString("\n")
		s.WriteString(StyleHelp.Render("esc retour"))
		return StyleBorder.Render(s.String())
	}

	visible := p.height - 2
	if visible < 1 {
		visible = 1
	}
	end := p.offset + visible
	if end > len(p.options) {
		end = len(p.options)
	}

	for i := p.offset; i < end; i++ {
		opt := p.options[i]
		label := opt.Label
		if label == "" {
			label = opt.Value
		}
		if opt.Count > 0 {
			label = fmt.Sprintf("%s (%d)", label, opt.Count)
		}
		mark := "  "
		if opt.Active {
			mark = StyleGood.Render("✓") + " "
		}
		if i == p.cursor {
			s.WriteString(StyleAccent.Render("› ") + mark + StyleHighlight.Render(label))
		} else {
			s.WriteString("  " + mark + StyleNormal.Render(label))
		}
		s.WriteString("\n")
	}

	s.WriteString(StyleHelp.Render("↑/↓ naviguer · enter choisir · esc retour"))
	return StyleBorder.Render(s.String())
}
