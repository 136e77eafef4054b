package tui

import "github.com/tinytelemetry/boardroom/internal/carousel"

const (
	minWidth         = 60
	minHeight        = 20
	headerHeight     = 3
	statusLineHeight = 1
	tileHeight       = 5 // border, title, value, change, border
	minSectionHeight = 10
)

// layout is the vertical split of the screen. Rendering and mouse hit
// testing both derive from it so they never disagree.
type layout struct {
	metricsH       int
	compactMetrics bool
	cardsH         int

	sectionsTop int
	sectionsH   int
	colW        int

	chartW int
	chartH int
}

// computeLayout gives the sections whatever height the header, metric
// tiles and cards leave. Cards go first, then tiles collapse to one line per
// row, when the sections would otherwise be too short.
func (m *DashboardModel) computeLayout() layout {
	var l layout
	if m.width < minWidth || m.height < minHeight {
		return l
	}

	rows := len(m.dash.Metrics)
	l.metricsH = rows * tileHeight
	l.cardsH = m.cardsHeight()

	avail := func() int {
		return m.height - headerHeight - l.metricsH - l.cardsH - statusLineHeight
	}
	if avail() < minSectionHeight {
		l.cardsH = 0
	}
	if avail() < minSectionHeight {
		l.compactMetrics = true
		l.metricsH = rows
	}

	l.sectionsTop = headerHeight + l.metricsH + l.cardsH
	l.sectionsH = max(0, avail())
	l.colW = m.width / max(1, len(m.sections()))
	l.chartW = l.colW - 4
	l.chartH = l.sectionsH - 4
	return l
}

func (m *DashboardModel) cardsHeight() int {
	rows := 0
	for _, c := range m.dash.Cards {
		rows = max(rows, len(c.Rows))
	}
	if len(m.dash.Cards) == 0 {
		return 0
	}
	return rows + 3 // border, title, rows, border
}

// zone is the part of a section box under the pointer.
type zone int

const (
	zoneBody zone = iota
	zoneChart
	zonePrev
	zoneNext
	zoneDot
)

type hit struct {
	section string
	zone    zone
	dot     int
}

// Section boxes are laid out as: border, title, chart rows, nav row, border.
// The nav row reads "◀ ● ○ ○ ▶" from the first content column, so the prev
// arrow is at 0, dot k at 2+2k and the next arrow at 2+2n.
func navZone(sec *carousel.Section, col int) (zone, int) {
	n := sec.Len()
	switch {
	case col == 0:
		return zonePrev, 0
	case col == 2+2*n:
		return zoneNext, 0
	case col >= 2 && col < 2+2*n:
		return zoneDot, (col - 2) / 2
	}
	return zoneBody, 0
}

// hitTest resolves a terminal cell to a section and zone.
func (m *DashboardModel) hitTest(x, y int) (hit, bool) {
	l := m.computeLayout()
	secs := m.sections()
	if len(secs) == 0 || l.sectionsH <= 0 || l.colW <= 0 || x < 0 {
		return hit{}, false
	}
	if y < l.sectionsTop || y >= l.sectionsTop+l.sectionsH {
		return hit{}, false
	}
	i := x / l.colW
	if i >= len(secs) {
		return hit{}, false
	}

	sec := secs[i]
	h := hit{section: sec.Name(), zone: zoneBody}
	row := y - l.sectionsTop
	col := x - i*l.colW - 2 // border and padding

	navRow := 2 + l.chartH
	switch {
	case row >= 2 && row < navRow:
		h.zone = zoneChart
	case row == navRow:
		h.zone, h.dot = navZone(sec, col)
	}
	return h, true
}
