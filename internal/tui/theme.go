package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/wordsprint/internal/config"
)

type styles struct {
	name        string
	correct     lipgloss.Style
	incorrect   lipgloss.Style
	pending     lipgloss.Style
	currentWord lipgloss.Style
	cursor      lipgloss.Style
	title       lipgloss.Style
	banner      lipgloss.Style
	footer      lipgloss.Style
	inputBox    lipgloss.Style
}

func newStyles(name string, fg, good, bad, muted, accent, dim, border string) styles {
	pending := lipgloss.NewStyle().Foreground(lipgloss.Color(muted))
	return styles{
		name:        name,
		correct:     lipgloss.NewStyle().Foreground(lipgloss.Color(good)),
		incorrect:   lipgloss.NewStyle().Foreground(lipgloss.Color(bad)),
		pending:     pending,
		currentWord: lipgloss.NewStyle().Foreground(lipgloss.Color(accent)),
		cursor:      pending.Underline(true),
		title:       lipgloss.NewStyle().Foreground(lipgloss.Color(fg)).Bold(true),
		banner:      lipgloss.NewStyle().Foreground(lipgloss.Color(good)).Bold(true),
		footer:      lipgloss.NewStyle().Foreground(lipgloss.Color(dim)),
		inputBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color(border)).
			Padding(0, 1),
	}
}

var (
	darkStyles  = newStyles(config.ThemeDark, "#F0F0F0", "#52C41A", "#FF4D4F", "#8C8C8C", "#C89A3A", "#6E6E6E", "#4A4A4A")
	lightStyles = newStyles(config.ThemeLight, "#1F1F1F", "#389E0D", "#CF1322", "#8C8C8C", "#531DAB", "#595959", "#BFBFBF")
)

// stylesFor falls back to the light theme for unknown names.
func stylesFor(theme string) styles {
	if theme == config.ThemeDark {
		return darkStyles
	}
	return lightStyles
}

func (s styles) toggled() styles {
	if s.name == config.ThemeLight {
		return darkStyles
	}
	return lightStyles
}
