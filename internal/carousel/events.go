package carousel

import "go.uber.org/zap"

// EventKind is an input channel of a section.
type EventKind int

const (
	EventPrevClick EventKind = iota
	EventNextClick
	EventDotClick
	EventKeyLeft
	EventKeyRight
	EventTouchStart
	EventTouchEnd
)

func (k EventKind) String() string {
	switch k {
	case EventPrevClick:
		return "prev-click"
	case EventNextClick:
		return "next-click"
	case EventDotClick:
		return "dot-click"
	case EventKeyLeft:
		return "key-left"
	case EventKeyRight:
		return "key-right"
	case EventTouchStart:
		return "touch-start"
	case EventTouchEnd:
		return "touch-end"
	}
	return "unknown"
}

// Event is one input addressed to a section. Index is used by dot clicks,
// X by touch events.
type Event struct {
	Kind    EventKind
	Section string
	Index   int
	X       int
}

type handler func(s *Section, ev Event) bool

// bind installs the section's handlers. The table is keyed by event kind, so
// binding the same section twice replaces handlers instead of stacking them.
func (c *Controller) bind(s *Section) {
	s.handlers[EventPrevClick] = func(s *Section, _ Event) bool { return c.step(s, -1) }
	s.handlers[EventNextClick] = func(s *Section, _ Event) bool { return c.step(s, 1) }
	s.handlers[EventKeyLeft] = func(s *Section, _ Event) bool { return c.step(s, -1) }
	s.handlers[EventKeyRight] = func(s *Section, _ Event) bool { return c.step(s, 1) }
	s.handlers[EventDotClick] = func(s *Section, ev Event) bool { return s.goTo(ev.Index) }
	s.handlers[EventTouchStart] = func(s *Section, ev Event) bool {
		s.touching = true
		s.touchStartX = ev.X
		return false
	}
	s.handlers[EventTouchEnd] = func(s *Section, ev Event) bool {
		if !s.touching {
			return false
		}
		s.touching = false
		return c.swipe(s, s.touchStartX, ev.X)
	}
}

// swipe navigates when the horizontal travel exceeds the threshold: a
// leftward swipe (start right of end) moves forward.
func (c *Controller) swipe(s *Section, startX, endX int) bool {
	diff := startX - endX
	if abs(diff) <= c.opts.SwipeThreshold {
		return false
	}
	if diff > 0 {
		return c.step(s, 1)
	}
	return c.step(s, -1)
}

// Handle dispatches ev to its section's handler. It reports whether the
// visible panel changed.
func (c *Controller) Handle(ev Event) bool {
	s, ok := c.sections[ev.Section]
	if !ok {
		return false
	}
	h, ok := s.handlers[ev.Kind]
	if !ok {
		return false
	}
	moved := h(s, ev)
	if moved {
		c.logger.Debug("section navigated",
			zap.String("section", s.name),
			zap.Stringer("event", ev.Kind),
			zap.Int("index", s.current))
	}
	return moved
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
