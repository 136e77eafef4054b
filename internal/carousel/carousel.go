// Package carousel keeps, for every dashboard section, exactly one chart
// panel visible and the indicator strip in step with it.
//
// Input arrives as Events addressed to a single section. Keyboard events are
// routed by the caller to the section that has focus; there is no global key
// handler, so one section can never shadow another.
package carousel

import (
	"errors"
	"fmt"

	"github.com/tinytelemetry/boardroom/internal/model"

	"go.uber.org/zap"
)

// ErrMissingTarget is returned when a section cannot be bound because one of
// its affordances or charts does not exist.
var ErrMissingTarget = errors.New("missing target")

// Redrawer is the chart capability a panel needs: charts laid out while
// hidden must be redrawn when they become visible.
type Redrawer interface {
	Redraw()
}

// Panel is one navigable chart view.
type Panel struct {
	ID      string
	Chart   Redrawer
	Visible bool
}

// Indicator is the dot mirroring one panel's visibility.
type Indicator struct {
	Section string
	Index   int
	Active  bool
}

// Affordances is the enabled/disabled look of the prev and next arrows.
type Affordances struct {
	PrevDisabled bool
	NextDisabled bool
}

// Options configures navigation.
type Options struct {
	// SwipeThreshold is the horizontal distance a swipe must exceed.
	SwipeThreshold int
	// Wrap makes next/prev wrap around instead of stopping at the ends.
	Wrap bool
}

// Controller owns every section's carousel state.
type Controller struct {
	opts     Options
	sections map[string]*Section
	order    []string
	logger   *zap.Logger
}

// NewController creates a controller. A zero SwipeThreshold uses the default.
func NewController(opts Options, logger *zap.Logger) *Controller {
	if opts.SwipeThreshold <= 0 {
		opts.SwipeThreshold = model.DefaultSwipeThreshold
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		opts:     opts,
		sections: make(map[string]*Section),
		logger:   logger,
	}
}

// InitSection builds the indicator strip for panels, binds the section's
// handlers and shows panel 0. Calling it again for the same section replaces
// its panels and resets it to panel 0 without adding handlers.
func (c *Controller) InitSection(name string, panels []*Panel) (*Section, error) {
	if name == "" {
		return nil, fmt.Errorf("carousel: %w: section has no name", ErrMissingTarget)
	}
	seen := make(map[string]bool, len(panels))
	for i, p := range panels {
		switch {
		case p == nil:
			return nil, fmt.Errorf("carousel: section %s: %w: panel %d is nil", name, ErrMissingTarget, i)
		case p.ID == "":
			return nil, fmt.Errorf("carousel: section %s: %w: panel %d has no id", name, ErrMissingTarget, i)
		case p.Chart == nil:
			return nil, fmt.Errorf("carousel: section %s: %w: panel %q has no chart", name, ErrMissingTarget, p.ID)
		case seen[p.ID]:
			return nil, fmt.Errorf("carousel: section %s: %w: duplicate panel %q", name, ErrMissingTarget, p.ID)
		}
		seen[p.ID] = true
	}

	s, exists := c.sections[name]
	if !exists {
		s = &Section{name: name, handlers: make(map[EventKind]handler)}
		c.sections[name] = s
		c.order = append(c.order, name)
	}

	s.panels = append([]*Panel(nil), panels...)
	s.indicators = make([]Indicator, len(panels))
	for i := range s.indicators {
		s.indicators[i] = Indicator{Section: name, Index: i}
	}
	s.current = 0
	s.touching = false
	c.bind(s)
	s.render(-1)

	c.logger.Debug("section initialized",
		zap.String("section", name),
		zap.Int("panels", len(panels)),
		zap.Bool("rebound", exists))
	return s, nil
}

// Section returns the named section.
func (c *Controller) Section(name string) (*Section, bool) {
	s, ok := c.sections[name]
	return s, ok
}

// Sections returns all sections in initialization order.
func (c *Controller) Sections() []*Section {
	out := make([]*Section, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.sections[name])
	}
	return out
}

// GoTo shows panel index of the named section. Out-of-range indexes and
// unknown sections are no-ops. It reports whether the visible panel changed.
func (c *Controller) GoTo(name string, index int) bool {
	s, ok := c.sections[name]
	if !ok {
		return false
	}
	return s.goTo(index)
}

// Next moves the named section one panel forward.
func (c *Controller) Next(name string) bool {
	s, ok := c.sections[name]
	if !ok {
		return false
	}
	return c.step(s, 1)
}

// Prev moves the named section one panel back.
func (c *Controller) Prev(name string) bool {
	s, ok := c.sections[name]
	if !ok {
		return false
	}
	return c.step(s, -1)
}

func (c *Controller) step(s *Section, delta int) bool {
	n := len(s.panels)
	if n == 0 {
		return false
	}
	target := s.current + delta
	if c.opts.Wrap {
		target = (target + n) % n
	}
	return s.goTo(target)
}

// Bindings returns how many handlers are bound to the named section.
func (c *Controller) Bindings(name string) int {
	s, ok := c.sections[name]
	if !ok {
		return 0
	}
	return len(s.handlers)
}

// Section is the carousel state of one chart group.
type Section struct {
	name       string
	panels     []*Panel
	indicators []Indicator
	current    int
	arrows     Affordances

	handlers map[EventKind]handler

	touching    bool
	touchStartX int
}

// Name returns the section identifier.
func (s *Section) Name() string { return s.name }

// Len returns the number of panels.
func (s *Section) Len() int { return len(s.panels) }

// Current returns the index of the visible panel.
func (s *Section) Current() int { return s.current }

// Affordances returns the arrow state for the current index.
func (s *Section) Affordances() Affordances { return s.arrows }

// Panels returns the section's panels.
func (s *Section) Panels() []*Panel {
	return append([]*Panel(nil), s.panels...)
}

// Indicators returns a copy of the indicator strip.
func (s *Section) Indicators() []Indicator {
	return append([]Indicator(nil), s.indicators...)
}

// Visible returns the visible panel, or nil for an empty section.
func (s *Section) Visible() *Panel {
	if len(s.panels) == 0 {
		return nil
	}
	return s.panels[s.current]
}

func (s *Section) goTo(index int) bool {
	if index < 0 || index >= len(s.panels) || index == s.current {
		return false
	}
	prev := s.current
	s.current = index
	s.render(prev)
	return true
}

// render applies the current index to panels, indicators and arrows, and
// redraws the panel that became visible. prev < 0 means every panel is
// refreshed, as on initialization.
func (s *Section) render(prev int) {
	n := len(s.panels)
	if n == 0 {
		s.arrows = Affordances{PrevDisabled: true, NextDisabled: true}
		return
	}

	if prev >= 0 && prev < n {
		s.panels[prev].Visible = false
		s.indicators[prev].Active = false
	} else {
		for i := range s.panels {
			s.panels[i].Visible = false
			s.indicators[i].Active = false
		}
	}
	s.panels[s.current].Visible = true
	s.indicators[s.current].Active = true
	s.arrows = Affordances{
		PrevDisabled: s.current == 0,
		NextDisabled: s.current == n-1,
	}
	s.panels[s.current].Chart.Redraw()
}
