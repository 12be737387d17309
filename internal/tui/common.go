package tui

import "github.com/charmbracelet/lipgloss"

// Color palette: the site's dark blue / gold theme, with light-terminal
// fallbacks.
var (
	// ColorAccent is the gold used for selections and ratings.
	ColorAccent = lipgloss.AdaptiveColor{Light: "#B07515", Dark: "#E09E29"}

	// ColorText for primary text
	ColorText = lipgloss.AdaptiveColor{Light: "#262626", Dark: "#DDE5F2"}

	// ColorDim for secondary text and help
	ColorDim = lipgloss.AdaptiveColor{Light: "#767676", Dark: "#808080"}

	// ColorTag for tags and metadata
	ColorTag = lipgloss.AdaptiveColor{Light: "#00AFAF", Dark: "#00D7D7"}

	// ColorGood for read indicators and completed series
	ColorGood = lipgloss.AdaptiveColor{Light: "#00AF00", Dark: "#00D700"}
)

// Reusable styles
var (
	StyleNormal = lipgloss.NewStyle().Foreground(ColorText)

	StyleAccent = lipgloss.NewStyle().Foreground(ColorAccent)

	StyleHighlight = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	StyleTag = lipgloss.NewStyle().Foreground(ColorTag)

	StyleHelp = lipgloss.NewStyle().Foreground(ColorDim)

	StyleGood = lipgloss.NewStyle().Foreground(ColorGood)

	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	StyleBorder = lipgloss.NewStyle().
			Foreground(ColorDim).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorDim)
)
