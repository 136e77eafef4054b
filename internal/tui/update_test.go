package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/tinytelemetry/boardroom/internal/model"
	"github.com/tinytelemetry/boardroom/internal/theme"

	tea "github.com/charmbracelet/bubbletea"
)

func TestMouse_ArrowAndDotClicks(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, nil)
	// financial has 3 panels: prev at x=2, dots at 4/6/8, next at 10.
	m.Update(press(10, testNavRow))
	if got := current(t, m, "financial"); got != 1 {
		t.Fatalf("after next click index = %d, want 1", got)
	}
	m.Update(press(8, testNavRow))
	if got := current(t, m, "financial"); got != 2 {
		t.Fatalf("after dot click index = %d, want 2", got)
	}
	m.Update(press(2, testNavRow))
	if got := current(t, m, "financial"); got != 1 {
		t.Fatalf("after prev click index = %d, want 1", got)
	}

	// Clicking in the second column focuses and drives that section.
	m.Update(press(testColW+2+2+2*4, testNavRow))
	if got := current(t, m, "operational"); got != 1 {
		t.Fatalf("operational index = %d, want 1", got)
	}
	if sec, _ := m.focused(); sec.Name() != "operational" {
		t.Fatalf("focused = %q, want operational", sec.Name())
	}
}

func TestMouse_SwipeThreshold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		startX     int
		endX       int
		wantIndex  int
		startIndex int
	}{
		{"leftward past threshold", 40, 33, 1, 0},   // 56px
		{"leftward within threshold", 40, 34, 0, 0}, // 48px
		{"rightward past threshold", 33, 40, 0, 1},
		{"tap", 40, 40, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, nil)
			m.carousel.GoTo("financial", tt.startIndex)

			m.Update(press(tt.startX, 30))
			m.Update(release(tt.endX, 30))

			if got := current(t, m, "financial"); got != tt.wantIndex {
				t.Fatalf("index = %d, want %d", got, tt.wantIndex)
			}
		})
	}
}

func TestMouse_ReleaseWithoutPressIgnored(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, nil)
	m.Update(release(0, 30))
	if got := current(t, m, "financial"); got != 0 {
		t.Fatalf("index = %d, want 0", got)
	}
}

func TestThemeKey_TogglesAndPersists(t *testing.T) {
	t.Parallel()

	store := &memStore{values: map[string]string{model.ThemeKey: "dark"}}
	m := newTestModel(t, store)
	if !m.theme.Dark() {
		t.Fatal("stored dark theme not restored at startup")
	}

	m.Update(runeKey("t"))
	if m.theme.Dark() {
		t.Fatal("theme still dark after toggle")
	}
	if got := store.values[model.ThemeKey]; got != "light" {
		t.Fatalf("stored theme = %q, want light", got)
	}
	d, _ := m.registry.Get("revenue")
	if got, want := d.Instance.Datasets[0].BorderColor, theme.PaletteFor(false).Financial.Primary; got != want {
		t.Fatalf("revenue border = %q, want %q", got, want)
	}

	m.Update(runeKey("t"))
	if got := store.values[model.ThemeKey]; got != "dark" {
		t.Fatalf("stored theme = %q, want dark", got)
	}
}

func TestThemeKey_PersistFailureShownInStatus(t *testing.T) {
	t.Parallel()

	store := &memStore{values: map[string]string{}, setErr: errors.New("read-only")}
	m := newTestModel(t, store)

	m.Update(runeKey("t"))
	if m.theme.Dark() {
		t.Fatal("toggle must still apply when persisting fails")
	}
	if !strings.Contains(m.View(), "read-only") {
		t.Fatal("persist error not shown in status line")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if strings.Contains(m.View(), "read-only") {
		t.Fatal("esc did not clear the error")
	}
}

func TestThemeChangedMsg_AppliesWithoutPersisting(t *testing.T) {
	t.Parallel()

	store := &memStore{values: map[string]string{model.ThemeKey: "dark"}}
	m := newTestModel(t, store)

	// Another process writes the flag, then the watcher reports it.
	store.values[model.ThemeKey] = "light"
	store.setErr = errors.New("must not write")
	m.Update(ThemeChangedMsg{State: theme.Light})
	if m.theme.Dark() {
		t.Fatal("external change not applied")
	}
	if got := store.values[model.ThemeKey]; got != "light" {
		t.Fatalf("stored theme = %q, want light", got)
	}
}

func TestThemeChangedMsg_IgnoresEchoOfOwnEarlierWrite(t *testing.T) {
	t.Parallel()

	store := &memStore{values: map[string]string{model.ThemeKey: "dark"}}
	m := newTestModel(t, store)

	m.Update(runeKey("t"))
	m.Update(runeKey("t"))
	if !m.theme.Dark() || store.values[model.ThemeKey] != "dark" {
		t.Fatalf("after two toggles: dark=%v stored=%q", m.theme.Dark(), store.values[model.ThemeKey])
	}
	before := m.theme.Transition()

	// The watcher delivers the first toggle's write after the second one.
	m.Update(ThemeChangedMsg{State: theme.Light})
	if !m.theme.Dark() {
		t.Fatal("stale notification flipped the theme back")
	}
	if m.theme.Transition() != before {
		t.Fatal("stale notification replayed a transition")
	}
}

func TestAnimationTick_StopsWhenIdle(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, nil)
	m.reveal = reveal{start: time.Now(), duration: time.Hour}
	if cmd := m.startAnimationIfNeeded(); cmd == nil {
		t.Fatal("running reveal did not schedule a frame")
	}
	if cmd := m.startAnimationIfNeeded(); cmd != nil {
		t.Fatal("second frame scheduled while one is pending")
	}

	m.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	if cmd := m.handleAnimationTick(); cmd != nil {
		t.Fatal("frame scheduled after every animation finished")
	}
}
