package tui

import (
	"github.com/tinytelemetry/boardroom/internal/theme"

	"github.com/charmbracelet/lipgloss"
)

// Styles are the lipgloss styles of one palette. They are rebuilt whenever
// the theme or the background transition changes.
type Styles struct {
	Base    lipgloss.Style
	Company lipgloss.Style
	Tagline lipgloss.Style
	Badge   lipgloss.Style
	Muted   lipgloss.Style

	Tile       lipgloss.Style
	TileTitle  lipgloss.Style
	TileValue  lipgloss.Style
	TileChange lipgloss.Style

	Card      lipgloss.Style
	CardTitle lipgloss.Style
	CardLabel lipgloss.Style
	CardValue lipgloss.Style

	Section        lipgloss.Style
	SectionFocused lipgloss.Style
	SectionTitle   lipgloss.Style

	Arrow         lipgloss.Style
	ArrowDisabled lipgloss.Style
	Dot           lipgloss.Style
	DotActive     lipgloss.Style

	Status      lipgloss.Style
	StatusKey   lipgloss.Style
	StatusError lipgloss.Style
}

// NewStyles derives styles from p, painted over background.
func NewStyles(p theme.Palette, background string) Styles {
	bg := lipgloss.Color(background)
	text := lipgloss.Color(p.Text)
	grid := lipgloss.Color(p.Grid)
	accent := lipgloss.Color(p.Financial.Primary)
	ops := lipgloss.Color(p.Operational.Primary)
	muted := lipgloss.Color(theme.Blend(p.Text, background, 0.45))

	base := lipgloss.NewStyle().Foreground(text).Background(bg)
	border := lipgloss.RoundedBorder()

	return Styles{
		Base:    base,
		Company: base.Bold(true).Foreground(accent),
		Tagline: base.Foreground(muted).Italic(true),
		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Background)).
			Background(ops).
			Bold(true).
			Padding(0, 1),
		Muted: base.Foreground(muted),

		Tile: base.Border(border).
			BorderForeground(grid).
			BorderBackground(bg).
			Padding(0, 1),
		TileTitle:  base.Foreground(muted),
		TileValue:  base.Bold(true).Foreground(accent),
		TileChange: base.Foreground(ops),

		Card: base.Border(border).
			BorderForeground(grid).
			BorderBackground(bg).
			Padding(0, 1),
		CardTitle: base.Bold(true),
		CardLabel: base.Foreground(muted),
		CardValue: base.Foreground(accent),

		Section: base.Border(border).
			BorderForeground(grid).
			BorderBackground(bg).
			Padding(0, 1),
		SectionFocused: base.Border(lipgloss.ThickBorder()).
			BorderForeground(accent).
			BorderBackground(bg).
			Padding(0, 1),
		SectionTitle: base.Bold(true),

		Arrow:         base.Bold(true).Foreground(accent),
		ArrowDisabled: base.Foreground(muted).Faint(true),
		Dot:           base.Foreground(muted),
		DotActive:     base.Foreground(ops),

		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Background)).
			Background(grid),
		StatusKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Background)).
			Background(grid).
			Bold(true),
		StatusError: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#B91C1C")).
			Bold(true),
	}
}

// clip truncates every line of s to width cells.
func clip(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}
