package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/songeyume/bibli/internal/category"
	"github.com/songeyume/bibli/internal/series"
	"github.com/songeyume/bibli/internal/similar"
)

func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case modeDetail:
		return m.renderDetail()
	case modeFacet:
		return m.renderHeader() + "\n" + m.picker.View()
	case modeSearch:
		return m.renderHeader() + "\n" + m.search.View() + "\n\n" +
			StyleHelp.Render("enter valider · esc annuler")
	}

	var s strings.Builder
	s.WriteString(m.renderHeader())
	s.WriteString("\n")
	if m.view.Empty() {
		s.WriteString("\n" + StyleHelp.Render("  Aucun livre ne correspond aux filtres.") + "\n")
	} else {
		s.WriteString(m.list.View())
	}
	s.WriteString("\n")
	s.WriteString(RenderFooterBar([]ShortcutEntry{
		{Key: "/", Label: "/ recherche"},
		{Key: "c", Label: "c catégorie"},
		{Key: "t", Label: "t tags"},
		{Key: "p", Label: "p éditeur"},
		{Key: "r", Label: "r note"},
		{Key: "s", Label: "s spicy"},
		{Key: "o", Label: "o tri"},
		{Key: "n", Label: "n/b pages"},
		{Key: "w", Label: "w hasard"},
		{Key: "x", Label: "x raz"},
		{Key: "q", Label: "q quitter"},
	}, m.activeCmd))
	return s.String()
}

// renderHeader shows the title line, the active filter chips and the
// page position.
func (m BrowserModel) renderHeader() string {
	page := m.view.Page()

	title := StyleHeader.Render("📚 Ma bibliothèque")
	status := fmt.Sprintf("%d livres · page %d/%d", page.TotalItems, page.Number, page.TotalPages)

	var s strings.Builder
	s.WriteString(title)
	s.WriteString("  ")
	s.WriteString(StyleHelp.Render(status))
	s.WriteString("\n")

	if chips := m.filterChips(); len(chips) > 0 {
		s.WriteString(StyleAccent.Render("⧩ "))
		s.WriteString(strings.Join(chips, StyleHelp.Render(" · ")))
	}
	return s.String()
}

// filterChips formats each active facet as a short chip.
func (m BrowserModel) filterChips() []string {
	f := m.view.Filter()
	var chips []string

	if f.Category != "" {
		label := string(f.Category)
		if r := category.ByKey(f.Category); r != nil {
			label = r.Icon + " " + r.Name
		}
		chips = append(chips, StyleAccent.Render(label))
	}
	if f.Search != "" {
		chips = append(chips, StyleTag.Render("🔍 "+f.Search))
	}
	for _, t := range f.Tags {
		chips = append(chips, StyleTag.Render("#"+t))
	}
	if f.Publisher != "" {
		chips = append(chips, StyleNormal.Render("🏷 "+f.Publisher))
	}
	if f.Rating > 0 {
		chips = append(chips, StyleAccent.Render(RenderStars(f.Rating, 5)))
	}
	if f.SpicyLevel != nil {
		chips = append(chips, StyleAccent.Render(RenderSpicy(*f.SpicyLevel)))
	}
	if m.view.SortKey() != "" {
		chips = append(chips, StyleHelp.Render("tri: "+string(m.view.SortKey())))
	}
	return chips
}

// renderDetail draws the full-screen book sheet: cover, metadata, review,
// series progress and similar reads.
func (m BrowserModel) renderDetail() string {
	if m.detail == nil {
		return ""
	}
	b := m.detail.Book

	width := m.width - 4
	if width < 40 {
		width = 40
	}
	body := lipgloss.NewStyle().Width(width)

	var s strings.Builder

	// Cover, when the terminal can draw it
	if m.protocol != ProtocolNone && b.Cover != "" {
		switch m.coverState[b.ID] {
		case CoverLoaded:
			if img := RenderInlineImageBytes(m.coverData[b.ID], m.protocol); img != "" {
				s.WriteString(img)
				s.WriteString("\n\n")
			}
		default:
			s.WriteString(CoverPlaceholder(m.coverState[b.ID]))
			s.WriteString("\n\n")
		}
	}

	s.WriteString(StyleHeader.Render(b.Title))
	s.WriteString("\n")
	s.WriteString(StyleHelp.Render("de ") + StyleNormal.Render(b.Author))
	s.WriteString("\n\n")

	if b.IsRead() {
		s.WriteString(StyleAccent.Render(RenderStars(b.Rating, b.RatingScale())))
		s.WriteString(StyleHelp.Render(fmt.Sprintf("  %s/%s",
			strconv.FormatFloat(b.Rating, 'f', -1, 64),
			strconv.FormatFloat(b.RatingScale(), 'f', -1, 64))))
		s.WriteString("\n")
	} else {
		s.WriteString(StyleHelp.Render("Pas encore lu"))
		s.WriteString("\n")
	}

	if r := category.ByKey(m.detail.Category); r != nil {
		s.WriteString(StyleAccent.Render(r.Icon + " " + r.Name))
		s.WriteString("\n")
	}
	if len(b.Tags) > 0 {
		s.WriteString(StyleTag.Render(strings.Join(b.Tags, " · ")))
		s.WriteString("\n")
	}
	if b.HasPublisher() {
		s.WriteString(StyleHelp.Render("Éditeur : ") + b.Publisher)
		s.WriteString("\n")
	}
	if b.HasSpicyLevel() {
		s.WriteString(StyleHelp.Render("Spicy : ") + RenderSpicy(*b.SpicyLevel))
		s.WriteString("\n")
	}
	if !b.ReadDate.IsZero() {
		s.WriteString(StyleHelp.Render("Lu le : ") + b.ReadDate.Format("02/01/2006"))
		s.WriteString("\n")
	}

	if info := series.Detect(m.repo, b); info != nil {
		s.WriteString("\n")
		s.WriteString(StyleHeader.Render("Série : " + info.Name))
		s.WriteString("\n")
		progress := fmt.Sprintf("tome %d · %d/%d lus", info.CurrentVolume, info.ReadCount, info.Total())
		if info.Complete() {
			s.WriteString(StyleGood.Render(progress + " ✓"))
		} else {
			s.WriteString(StyleNormal.Render(progress))
		}
		s.WriteString("\n")
	}

	if b.Summary != "" {
		s.WriteString("\n")
		s.WriteString(StyleHeader.Render("Résumé"))
		s.WriteString("\n")
		s.WriteString(body.Render(b.Summary))
		s.WriteString("\n")
	}
	if b.PersonalReview != "" {
		s.WriteString("\n")
		s.WriteString(StyleHeader.Render("Mon avis"))
		s.WriteString("\n")
		s.WriteString(body.Render(b.PersonalReview))
		s.WriteString("\n")
	}
	if n := len(b.Quotes); n > 0 {
		s.WriteString("\n")
		s.WriteString(StyleHelp.Render(fmt.Sprintf("%d citation(s) relevée(s)", n)))
		s.WriteString("\n")
	}

	if matches := similar.Find(m.repo, b, 4); len(matches) > 0 {
		s.WriteString("\n")
		s.WriteString(StyleHeader.Render("Dans la même veine"))
		s.WriteString("\n")
		for _, match := range matches {
			line := fmt.Sprintf("  • %s · %s", match.Book.Title, match.Book.Author)
			s.WriteString(StyleNormal.Render(truncateText(line, width)))
			s.WriteString("\n")
		}
	}

	s.WriteString("\n")
	s.WriteString(StyleHelp.Render("esc retour · w un autre au hasard · q quitter"))
	return StyleBorder.Render(s.String())
}
