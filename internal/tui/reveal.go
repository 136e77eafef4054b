package tui

import (
	"math"
	"strconv"
	"time"

	"github.com/tinytelemetry/boardroom/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
)

// frameInterval paces the count-up and theme transition animations.
const frameInterval = 33 * time.Millisecond

// AnimationTickMsg advances running animations.
type AnimationTickMsg time.Time

// reveal is the count-up animation of the metric tiles.
type reveal struct {
	start    time.Time
	duration time.Duration
}

func (r reveal) progress(now time.Time) float64 {
	if r.duration <= 0 {
		return 1
	}
	return max(0, min(1, float64(now.Sub(r.start))/float64(r.duration)))
}

func (r reveal) done(now time.Time) bool {
	return r.progress(now) >= 1
}

func easeOutCubic(t float64) float64 {
	t = max(0, min(1, t))
	return 1 - math.Pow(1-t, 3)
}

// formatMetric renders a tile's value at the given reveal progress.
func formatMetric(mt model.Metric, progress float64) string {
	if !mt.Numeric() {
		return mt.Text
	}
	v := mt.Value
	if progress < 1 {
		v *= easeOutCubic(progress)
	}

	var num string
	switch {
	case mt.Comma && mt.Decimals == 0:
		num = humanize.Comma(int64(math.Round(v)))
	case mt.Comma:
		num = humanize.CommafWithDigits(v, mt.Decimals)
	default:
		num = strconv.FormatFloat(v, 'f', mt.Decimals, 64)
	}
	return mt.Prefix + num + mt.Suffix
}

// animating reports whether any animation still needs frames.
func (m *DashboardModel) animating() bool {
	now := m.now()
	if !m.reveal.done(now) {
		return true
	}
	return m.theme != nil && !m.theme.Transition().Done(now)
}

// animationTick schedules the next frame.
func animationTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return AnimationTickMsg(t)
	})
}

// startAnimationIfNeeded schedules a frame unless one is already pending.
func (m *DashboardModel) startAnimationIfNeeded() tea.Cmd {
	if m.tickPending || !m.animating() {
		return nil
	}
	m.tickPending = true
	return animationTick()
}

// handleAnimationTick re-schedules frames while anything is animating.
func (m *DashboardModel) handleAnimationTick() tea.Cmd {
	m.tickPending = false
	m.refreshStyles()
	return m.startAnimationIfNeeded()
}
