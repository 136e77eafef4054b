package tui

import (
	"github.com/tinytelemetry/boardroom/internal/carousel"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyPress dispatches key events: quit first, then global dashboard
// shortcuts, then carousel keys scoped to the focused section.
func (m *DashboardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	if handled, cmd := m.handleGlobalKeys(msg); handled {
		return m, cmd
	}

	m.handleSectionKeys(msg)
	return m, nil
}

// handleGlobalKeys handles dashboard-level shortcuts.
func (m *DashboardModel) handleGlobalKeys(msg tea.KeyMsg) (bool, tea.Cmd) {
	k := m.keys

	switch {
	case key.Matches(msg, k.Quit):
		return true, tea.Quit

	case key.Matches(msg, k.Escape):
		m.lastError = ""
		return true, nil

	case key.Matches(msg, k.Theme):
		return true, m.toggleTheme()

	case key.Matches(msg, k.NextSection):
		m.cycleFocus(1)
		return true, nil

	case key.Matches(msg, k.PrevSection):
		m.cycleFocus(-1)
		return true, nil
	}

	return false, nil
}

// handleSectionKeys delivers arrow and digit keys to the focused section
// only, so sections never shadow each other's navigation.
func (m *DashboardModel) handleSectionKeys(msg tea.KeyMsg) bool {
	sec, ok := m.focused()
	if !ok {
		return false
	}
	k := m.keys

	switch {
	case key.Matches(msg, k.Left):
		return m.dispatch(carousel.Event{Kind: carousel.EventKeyLeft, Section: sec.Name()})

	case key.Matches(msg, k.Right):
		return m.dispatch(carousel.Event{Kind: carousel.EventKeyRight, Section: sec.Name()})

	case key.Matches(msg, k.Dot):
		s := msg.String()
		if len(s) != 1 {
			return false
		}
		idx := int(s[0] - '1')
		return m.dispatch(carousel.Event{Kind: carousel.EventDotClick, Section: sec.Name(), Index: idx})
	}

	return false
}
