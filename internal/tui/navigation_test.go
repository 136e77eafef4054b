package tui

import (
	"errors"
	"testing"

	"github.com/tinytelemetry/boardroom/internal/carousel"
	"github.com/tinytelemetry/boardroom/internal/charts"
	"github.com/tinytelemetry/boardroom/internal/dashboard"
	"github.com/tinytelemetry/boardroom/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

func TestBindSections_DefaultDashboard(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, nil)
	secs := m.sections()
	if got := len(secs); got != 2 {
		t.Fatalf("sections = %d, want 2", got)
	}
	for _, s := range secs {
		if s.Current() != 0 || !s.Panels()[0].Visible {
			t.Fatalf("section %q does not start on panel 0", s.Name())
		}
	}
}

func TestBindSections_MissingChartOnlyAbortsItsSection(t *testing.T) {
	t.Parallel()

	d, err := dashboard.Default()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	d.Sections = append(d.Sections, model.SectionDefinition{Name: "broken", Charts: []string{"revenue", "nope"}})
	reg, _ := charts.Build(d.Charts, nil)
	ctrl := carousel.NewController(carousel.Options{}, nil)

	errs := BindSections(ctrl, *d, reg)
	if len(errs) != 1 {
		t.Fatalf("errors = %v, want exactly one", errs)
	}
	if !errors.Is(errs[0], carousel.ErrMissingTarget) {
		t.Fatalf("error = %v, want ErrMissingTarget", errs[0])
	}
	if got := len(ctrl.Sections()); got != 2 {
		t.Fatalf("initialized sections = %d, want 2", got)
	}
}

func TestKeys_ScopedToFocusedSection(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, nil)

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := current(t, m, "financial"); got != 1 {
		t.Fatalf("financial index = %d, want 1", got)
	}
	if got := current(t, m, "operational"); got != 0 {
		t.Fatalf("operational index = %d, want 0 (keys must not leak)", got)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.Update(runeKey("l"))
	m.Update(runeKey("l"))
	if got := current(t, m, "operational"); got != 2 {
		t.Fatalf("operational index = %d, want 2", got)
	}
	if got := current(t, m, "financial"); got != 1 {
		t.Fatalf("financial index = %d, want 1 (unchanged)", got)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if got := current(t, m, "financial"); got != 0 {
		t.Fatalf("financial index = %d, want 0", got)
	}
}

func TestKeys_ClampAtEnds(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, nil)
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if got := current(t, m, "financial"); got != 0 {
		t.Fatalf("prev at start moved to %d", got)
	}
	for range 5 {
		m.Update(tea.KeyMsg{Type: tea.KeyRight})
	}
	if got := current(t, m, "financial"); got != 2 {
		t.Fatalf("index = %d, want clamped at 2", got)
	}
}

func TestKeys_DigitJumpsToDot(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, nil)
	m.Update(runeKey("3"))
	if got := current(t, m, "financial"); got != 2 {
		t.Fatalf("index = %d, want 2", got)
	}
	m.Update(runeKey("9"))
	if got := current(t, m, "financial"); got != 2 {
		t.Fatalf("out-of-range dot moved to %d", got)
	}
}

func TestKeys_Quit(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, nil)
	_, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q did not quit")
	}
}
