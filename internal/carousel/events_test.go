package carousel

import "testing"

func TestHandle_ClickAndKeyChannels(t *testing.T) {
	t.Parallel()

	c := NewController(Options{}, nil)
	panels, _ := newPanels(3)
	s, _ := c.InitSection("financial", panels)

	steps := []struct {
		ev   Event
		want int
	}{
		{Event{Kind: EventNextClick, Section: "financial"}, 1},
		{Event{Kind: EventKeyRight, Section: "financial"}, 2},
		{Event{Kind: EventKeyRight, Section: "financial"}, 2},
		{Event{Kind: EventPrevClick, Section: "financial"}, 1},
		{Event{Kind: EventKeyLeft, Section: "financial"}, 0},
		{Event{Kind: EventKeyLeft, Section: "financial"}, 0},
		{Event{Kind: EventDotClick, Section: "financial", Index: 2}, 2},
		{Event{Kind: EventDotClick, Section: "financial", Index: 7}, 2},
	}
	for i, st := range steps {
		c.Handle(st.ev)
		if s.Current() != st.want {
			t.Fatalf("step %d (%s): current = %d, want %d", i, st.ev.Kind, s.Current(), st.want)
		}
	}
}

func TestHandle_KeysAreScopedToTheirSection(t *testing.T) {
	t.Parallel()

	c := NewController(Options{}, nil)
	fin, _ := newPanels(3)
	ops, _ := newPanels(3)
	finSec, _ := c.InitSection("financial", fin)
	opsSec, _ := c.InitSection("operational", ops)

	c.Handle(Event{Kind: EventKeyRight, Section: "financial"})
	if finSec.Current() != 1 {
		t.Fatalf("financial = %d, want 1", finSec.Current())
	}
	if opsSec.Current() != 0 {
		t.Fatalf("operational = %d, want 0 (must not be shadowed)", opsSec.Current())
	}

	c.Handle(Event{Kind: EventKeyRight, Section: "operational"})
	if finSec.Current() != 1 || opsSec.Current() != 1 {
		t.Fatalf("financial=%d operational=%d, want 1/1", finSec.Current(), opsSec.Current())
	}
}

func TestHandle_Swipe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		start  int
		end    int
		before int
		want   int
	}{
		{"short leftward", 100, 70, 1, 1},
		{"exactly threshold", 100, 50, 1, 1},
		{"short rightward", 50, 100, 1, 1},
		{"leftward 51 moves next", 151, 100, 1, 2},
		{"rightward 51 moves prev", 100, 151, 1, 0},
		{"leftward at last clamps", 300, 100, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(Options{}, nil)
			panels, _ := newPanels(3)
			s, _ := c.InitSection("financial", panels)
			c.GoTo("financial", tt.before)

			c.Handle(Event{Kind: EventTouchStart, Section: "financial", X: tt.start})
			c.Handle(Event{Kind: EventTouchEnd, Section: "financial", X: tt.end})
			if s.Current() != tt.want {
				t.Fatalf("current = %d, want %d", s.Current(), tt.want)
			}
		})
	}
}

func TestHandle_SwipeOfExactly51TriggersOneNext(t *testing.T) {
	t.Parallel()

	c := NewController(Options{}, nil)
	panels, charts := newPanels(3)
	s, _ := c.InitSection("financial", panels)

	c.Handle(Event{Kind: EventTouchStart, Section: "financial", X: 51})
	moved := c.Handle(Event{Kind: EventTouchEnd, Section: "financial", X: 0})
	if !moved || s.Current() != 1 {
		t.Fatalf("moved=%v current=%d, want one next", moved, s.Current())
	}
	if charts[1].redraws != 1 || charts[2].redraws != 0 {
		t.Fatalf("redraws = %d/%d, want exactly one navigation", charts[1].redraws, charts[2].redraws)
	}
}

func TestHandle_TouchEndWithoutStartIsIgnored(t *testing.T) {
	t.Parallel()

	c := NewController(Options{}, nil)
	panels, _ := newPanels(3)
	s, _ := c.InitSection("financial", panels)

	if c.Handle(Event{Kind: EventTouchEnd, Section: "financial", X: -500}) {
		t.Fatal("touch end without start navigated")
	}
	if s.Current() != 0 {
		t.Fatalf("current = %d, want 0", s.Current())
	}
}

func TestHandle_UnknownSection(t *testing.T) {
	t.Parallel()

	c := NewController(Options{}, nil)
	if c.Handle(Event{Kind: EventNextClick, Section: "nope"}) {
		t.Fatal("unknown section handled")
	}
}

func TestNewController_CustomThreshold(t *testing.T) {
	t.Parallel()

	c := NewController(Options{SwipeThreshold: 5}, nil)
	panels, _ := newPanels(2)
	s, _ := c.InitSection("financial", panels)

	c.Handle(Event{Kind: EventTouchStart, Section: "financial", X: 10})
	c.Handle(Event{Kind: EventTouchEnd, Section: "financial", X: 4})
	if s.Current() != 1 {
		t.Fatalf("current = %d, want 1", s.Current())
	}
}
