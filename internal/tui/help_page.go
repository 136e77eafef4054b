package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// stylesSource supplies the current styles to pages that do not own a model.
type stylesSource interface {
	Styles() Styles
}

// HelpPage shows every key binding.
type HelpPage struct {
	keys   KeyMap
	help   help.Model
	styles stylesSource
}

// NewHelpPage creates the help page.
func NewHelpPage(keys KeyMap, styles stylesSource) *HelpPage {
	h := help.New()
	h.ShowAll = true
	return &HelpPage{keys: keys, help: h, styles: styles}
}

func (p *HelpPage) ID() string { return PageHelp }

func (p *HelpPage) Init() tea.Cmd { return nil }

func (p *HelpPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, nil
	}
	switch {
	case key.Matches(km, p.keys.ForceQuit):
		return tea.Quit, nil
	case key.Matches(km, p.keys.Escape), key.Matches(km, p.keys.Help), key.Matches(km, p.keys.Quit):
		return nil, &PageNav{PageID: PageDashboard}
	}
	return nil, nil
}

func (p *HelpPage) View(width, height int) string {
	st := p.styles.Styles()

	p.help.Width = max(0, width-8)
	p.help.Styles.FullKey = st.CardValue
	p.help.Styles.FullDesc = st.CardLabel
	p.help.Styles.FullSeparator = st.Muted

	body := lipgloss.JoinVertical(lipgloss.Left,
		st.CardTitle.Render("Keys"),
		"",
		p.help.View(p.keys),
		"",
		st.Muted.Render("Mouse: click ◀ ▶ or a dot, drag a chart sideways to swipe."),
		st.Muted.Render("esc/?/q: back"),
	)
	box := st.Card.Render(body)

	return st.Base.Render(lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceBackground(st.Base.GetBackground())))
}
