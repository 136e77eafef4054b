package tui

import (
	"context"
	"testing"

	"github.com/tinytelemetry/boardroom/internal/carousel"
	"github.com/tinytelemetry/boardroom/internal/charts"
	"github.com/tinytelemetry/boardroom/internal/dashboard"
	"github.com/tinytelemetry/boardroom/internal/model"
	"github.com/tinytelemetry/boardroom/internal/theme"

	tea "github.com/charmbracelet/bubbletea"
)

type memStore struct {
	values map[string]string
	setErr error
}

func (s *memStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *memStore) Set(_ context.Context, key, value string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.values[key] = value
	return nil
}

// Layout of the default dashboard at 160x50: sections start at row 20 and
// are 29 rows tall, so charts are 25 rows and the nav row is 47. Each
// section column is 80 cells wide with content starting 2 cells in.
const (
	testWidth  = 160
	testHeight = 50
	testNavRow = 47
	testColW   = 80
)

func newTestModel(t *testing.T, store *memStore) *DashboardModel {
	t.Helper()

	d, err := dashboard.Default()
	if err != nil {
		t.Fatalf("load default dashboard: %v", err)
	}
	return newTestModelFor(t, d, store)
}

// newTestModelFor builds a sized model over d. Chart construction and
// section binding must succeed.
func newTestModelFor(t *testing.T, d *model.Dashboard, store *memStore) *DashboardModel {
	t.Helper()

	reg, errs := charts.Build(d.Charts, nil)
	if len(errs) > 0 {
		t.Fatalf("build charts: %v", errs)
	}
	if store == nil {
		store = &memStore{values: map[string]string{}}
	}
	sync := theme.NewSynchronizer(context.Background(), store, reg, theme.Dark, 0, nil)
	ctrl := carousel.NewController(carousel.Options{SwipeThreshold: model.DefaultSwipeThreshold}, nil)
	if errs := BindSections(ctrl, *d, reg); len(errs) > 0 {
		t.Fatalf("bind sections: %v", errs)
	}

	m := NewDashboardModel(Config{
		Dashboard:   *d,
		Registry:    reg,
		Carousel:    ctrl,
		Theme:       sync,
		CellWidthPx: 8,
		Mouse:       true,
	})
	m.Update(tea.WindowSizeMsg{Width: testWidth, Height: testHeight})
	return m
}

func current(t *testing.T, m *DashboardModel, name string) int {
	t.Helper()
	s, ok := m.carousel.Section(name)
	if !ok {
		t.Fatalf("section %q not initialized", name)
	}
	return s.Current()
}

func runeKey(r string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}
