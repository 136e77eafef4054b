package tui

import (
	"slices"

	"github.com/tinytelemetry/boardroom/internal/carousel"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Update handles messages
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeCharts()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouseEvent(msg)

	case ThemeChangedMsg:
		return m, m.applyExternalTheme(msg.State)

	case AnimationTickMsg:
		return m, m.handleAnimationTick()
	}

	return m, nil
}

// resizeCharts sizes every chart to the section chart area. Hidden charts
// are laid out too so they are ready when they become visible.
func (m *DashboardModel) resizeCharts() {
	l := m.computeLayout()
	if l.chartW <= 0 || l.chartH <= 0 {
		return
	}
	for _, err := range m.registry.Resize(l.chartW, l.chartH) {
		if slices.Contains(m.diagnostics, err.Error()) {
			continue
		}
		m.logger.Warn("chart render failed", zap.Error(err))
		m.diagnostics = append(m.diagnostics, err.Error())
	}
}

// handleMouseEvent processes mouse interactions. Clicks on the arrows and
// dots navigate; a press over a chart starts a swipe that the matching
// release completes.
func (m *DashboardModel) handleMouseEvent(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.handleMousePress(msg.X, msg.Y)

	case tea.MouseActionRelease:
		if !m.drag.active {
			return m, nil
		}
		m.drag.active = false
		m.dispatch(carousel.Event{
			Kind:    carousel.EventTouchEnd,
			Section: m.drag.section,
			X:       msg.X * m.cellWidthPx,
		})
	}

	return m, nil
}

func (m *DashboardModel) handleMousePress(x, y int) {
	h, ok := m.hitTest(x, y)
	if !ok {
		return
	}
	m.focusSection(h.section)

	switch h.zone {
	case zonePrev:
		m.dispatch(carousel.Event{Kind: carousel.EventPrevClick, Section: h.section})
	case zoneNext:
		m.dispatch(carousel.Event{Kind: carousel.EventNextClick, Section: h.section})
	case zoneDot:
		m.dispatch(carousel.Event{Kind: carousel.EventDotClick, Section: h.section, Index: h.dot})
	case zoneChart:
		m.drag = dragState{active: true, section: h.section}
		m.dispatch(carousel.Event{
			Kind:    carousel.EventTouchStart,
			Section: h.section,
			X:       x * m.cellWidthPx,
		})
	}
}
