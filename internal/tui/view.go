package tui

import (
	"fmt"
	"strings"

	"github.com/tinytelemetry/boardroom/internal/carousel"
	"github.com/tinytelemetry/boardroom/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// View renders the dashboard
func (m *DashboardModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Initializing dashboard..."
	}
	return m.renderDashboard()
}

// renderDashboard renders the main dashboard layout
func (m *DashboardModel) renderDashboard() string {
	if m.height < minHeight || m.width < minWidth {
		return "Terminal too small. Resize to at least 60x20."
	}

	l := m.computeLayout()
	parts := []string{m.renderHeader()}
	if len(m.dash.Metrics) > 0 {
		parts = append(parts, m.renderMetrics(l))
	}
	if l.cardsH > 0 {
		parts = append(parts, m.renderCards(l.cardsH))
	}
	parts = append(parts, m.renderSections(l), m.renderStatusLine())

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return m.styles.Base.
		Width(m.width).
		Height(m.height).
		MaxWidth(m.width).
		MaxHeight(m.height).
		Render(content)
}

// renderHeader renders the company name, tagline and badges.
func (m *DashboardModel) renderHeader() string {
	st := m.styles

	mode := "☀ light"
	if m.theme.Dark() {
		mode = "☾ dark"
	}
	right := st.Muted.Render(mode + " (t)")
	left := st.Company.Render(m.dash.Company)
	gap := max(1, m.width-lipgloss.Width(left)-lipgloss.Width(right))
	title := left + st.Base.Render(strings.Repeat(" ", gap)) + right

	badges := make([]string, 0, len(m.dash.Badges))
	for _, b := range m.dash.Badges {
		badges = append(badges, st.Badge.Render(b))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		clip(title, m.width),
		clip(st.Tagline.Render(m.dash.Tagline), m.width),
		clip(strings.Join(badges, st.Base.Render(" ")), m.width),
	)
}

// renderMetrics renders the metric tiles, one row of tiles per metric row.
func (m *DashboardModel) renderMetrics(l layout) string {
	progress := m.reveal.progress(m.now())
	rows := make([]string, 0, len(m.dash.Metrics))
	for _, row := range m.dash.Metrics {
		if len(row) == 0 {
			rows = append(rows, "")
			continue
		}
		if l.compactMetrics {
			rows = append(rows, m.renderCompactMetricRow(row, progress))
			continue
		}
		tileW := m.width / len(row)
		tiles := make([]string, 0, len(row))
		for _, mt := range row {
			tiles = append(tiles, m.renderTile(mt, tileW, progress))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *DashboardModel) renderTile(mt model.Metric, width int, progress float64) string {
	st := m.styles
	inner := width - 4
	body := lipgloss.JoinVertical(lipgloss.Left,
		clip(st.TileTitle.Render(mt.Title), inner),
		clip(st.TileValue.Render(formatMetric(mt, progress)), inner),
		clip(st.TileChange.Render(mt.Change), inner),
	)
	return st.Tile.Width(width - 2).Height(tileHeight - 2).Render(body)
}

func (m *DashboardModel) renderCompactMetricRow(row []model.Metric, progress float64) string {
	st := m.styles
	items := make([]string, 0, len(row))
	for _, mt := range row {
		items = append(items, st.TileTitle.Render(mt.Title+" ")+st.TileValue.Render(formatMetric(mt, progress)))
	}
	return clip(strings.Join(items, st.Muted.Render(" │ ")), m.width)
}

// renderCards renders the info cards side by side.
func (m *DashboardModel) renderCards(height int) string {
	st := m.styles
	cardW := m.width / len(m.dash.Cards)
	inner := cardW - 4

	cards := make([]string, 0, len(m.dash.Cards))
	for _, c := range m.dash.Cards {
		lines := []string{clip(st.CardTitle.Render(c.Title), inner)}
		for _, r := range c.Rows {
			gap := max(1, inner-lipgloss.Width(r.Label)-lipgloss.Width(r.Value))
			line := st.CardLabel.Render(r.Label) + st.Base.Render(strings.Repeat(" ", gap)) + st.CardValue.Render(r.Value)
			lines = append(lines, clip(line, inner))
		}
		cards = append(cards, st.Card.
			Width(cardW-2).
			Height(height-2).
			Render(strings.Join(lines, "\n")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// renderSections renders one carousel box per section.
func (m *DashboardModel) renderSections(l layout) string {
	secs := m.sections()
	if len(secs) == 0 || l.sectionsH <= 0 {
		return lipgloss.Place(m.width, max(0, l.sectionsH), lipgloss.Center, lipgloss.Center,
			m.styles.Muted.Render("No chart sections available"))
	}

	focused, _ := m.focused()
	boxes := make([]string, 0, len(secs))
	for _, sec := range secs {
		boxes = append(boxes, m.renderSection(sec, sec == focused, l))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func (m *DashboardModel) renderSection(sec *carousel.Section, focused bool, l layout) string {
	st := m.styles
	box := st.Section
	marker := "  "
	if focused {
		box = st.SectionFocused
		marker = "▸ "
	}

	title := clip(st.SectionTitle.Render(marker+m.sectionTitle(sec.Name())), l.chartW)

	var chart string
	if p := sec.Visible(); p != nil {
		if d, ok := m.registry.Get(p.ID); ok {
			chart = d.Instance.View()
		}
	}
	chart = lipgloss.NewStyle().
		Width(l.chartW).
		Height(l.chartH).
		MaxHeight(l.chartH).
		Render(chart)

	body := lipgloss.JoinVertical(lipgloss.Left, title, chart, clip(m.renderNav(sec), l.chartW))
	return box.Width(l.colW - 2).Height(l.sectionsH - 2).Render(body)
}

// renderNav renders the arrows and indicator dots; see navZone for the
// column positions it must keep.
func (m *DashboardModel) renderNav(sec *carousel.Section) string {
	st := m.styles
	aff := sec.Affordances()

	arrow := func(glyph string, disabled bool) string {
		if disabled {
			return st.ArrowDisabled.Render(glyph)
		}
		return st.Arrow.Render(glyph)
	}

	var b strings.Builder
	b.WriteString(arrow("◀", aff.PrevDisabled))
	b.WriteString(st.Base.Render(" "))
	for _, ind := range sec.Indicators() {
		if ind.Active {
			b.WriteString(st.DotActive.Render("●"))
		} else {
			b.WriteString(st.Dot.Render("○"))
		}
		b.WriteString(st.Base.Render(" "))
	}
	b.WriteString(arrow("▶", aff.NextDisabled))
	b.WriteString(st.Muted.Render("  " + position(sec)))
	return b.String()
}

// position renders the one-based "current/total" counter; an empty
// section reads 0/0.
func position(sec *carousel.Section) string {
	if sec.Len() == 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d", sec.Current()+1, sec.Len())
}

// renderStatusLine renders the status/help line at the bottom of the screen
func (m *DashboardModel) renderStatusLine() string {
	st := m.styles
	w := m.width

	left := st.StatusKey.Render(" BOARDROOM ")
	if sec, ok := m.focused(); ok {
		left += st.Status.Render(fmt.Sprintf(" %s %s ", m.sectionTitle(sec.Name()), position(sec)))
	}

	var middle string
	if msg := m.statusError(); msg != "" {
		extra := ""
		if n := len(m.diagnostics); n > 1 {
			extra = fmt.Sprintf(" (+%d more)", n-1)
		}
		middle = st.StatusError.Render(" ⚠ " + msg + extra + " ")
	}

	m.help.Styles.ShortKey = st.StatusKey
	m.help.Styles.ShortDesc = st.Status
	m.help.Styles.ShortSeparator = st.Status
	m.help.Width = max(0, w-lipgloss.Width(left)-lipgloss.Width(middle)-1)
	right := m.help.View(m.keys)

	used := lipgloss.Width(left) + lipgloss.Width(middle) + lipgloss.Width(right)
	if used > w {
		right = ""
		used = lipgloss.Width(left) + lipgloss.Width(middle)
	}
	fill := st.Status.Render(strings.Repeat(" ", max(0, w-used)))
	return clip(left+middle+fill+right, w)
}
