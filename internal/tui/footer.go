package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// flashDuration is how long a pressed shortcut stays highlighted.
const flashDuration = 500 * time.Millisecond

// ClearActiveCmdMsg ends the shortcut flash in the footer.
type ClearActiveCmdMsg struct{}

// ShortcutEntry is one footer shortcut: the key that triggers it and the
// label shown in the bar.
type ShortcutEntry struct {
	Key   string
	Label string
}

// HighlightCmd schedules the end of a shortcut flash. The model sets its
// activeCmd field before returning this command; the flash clears when
// ClearActiveCmdMsg arrives.
func HighlightCmd() tea.Cmd {
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return ClearActiveCmdMsg{}
	})
}

// RenderFooterBar draws the shortcut bar. The entry whose key matches
// activeCmd flashes with the highlight style, everything else stays dim.
func RenderFooterBar(shortcuts []ShortcutEntry, activeCmd string) string {
	dim := lipgloss.NewStyle().Foreground(ColorDim)

	var b strings.Builder
	for i, sc := range shortcuts {
		if i > 0 {
			b.WriteString(dim.Render(" • "))
		}
		if activeCmd != "" && sc.Key == activeCmd {
			b.WriteString(StyleHighlight.Render("[ " + sc.Label + " ]"))
		} else {
			b.WriteString(dim.Render(sc.Label))
		}
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(b.String())
}
