package theme

import (
	"context"
	"fmt"
	"time"

	"github.com/tinytelemetry/boardroom/internal/charts"
	"github.com/tinytelemetry/boardroom/internal/model"

	"go.uber.org/zap"
)

// Persister is the part of a preferences store the synchronizer needs.
type Persister interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Synchronizer owns the theme state and keeps every registered chart in step
// with it.
type Synchronizer struct {
	store      Persister
	registry   *charts.Registry
	logger     *zap.Logger
	state      State
	palette    Palette
	transition Transition
	duration   time.Duration
	now        func() time.Time
}

// NewSynchronizer reads the stored theme flag (falling back to fallback when
// it is missing, unreadable or unknown) and applies the matching palette to
// every chart in registry. Charts must be registered before this is called.
func NewSynchronizer(ctx context.Context, store Persister, registry *charts.Registry, fallback State, transition time.Duration, logger *zap.Logger) *Synchronizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if registry == nil {
		registry = charts.NewRegistry()
	}
	s := &Synchronizer{
		store:    store,
		registry: registry,
		logger:   logger,
		state:    fallback,
		duration: transition,
		now:      time.Now,
	}
	if store != nil {
		v, ok, err := store.Get(ctx, model.ThemeKey)
		switch {
		case err != nil:
			logger.Warn("read stored theme", zap.Error(err))
		case ok:
			if st, valid := ParseState(v); valid {
				s.state = st
			} else {
				logger.Warn("ignoring unknown stored theme", zap.String("value", v))
			}
		}
	}
	s.palette = PaletteFor(s.state == Dark)
	s.transition = Transition{From: s.palette.Background, To: s.palette.Background}
	n := ApplyPalette(registry.Descriptors(), s.palette)
	logger.Debug("theme applied", zap.Stringer("state", s.state), zap.Int("charts", n))
	return s
}

// State returns the current theme state.
func (s *Synchronizer) State() State { return s.state }

// Dark reports whether the dark theme is active.
func (s *Synchronizer) Dark() bool { return s.state == Dark }

// Palette returns the active palette.
func (s *Synchronizer) Palette() Palette { return s.palette }

// Transition returns the most recent background transition.
func (s *Synchronizer) Transition() Transition { return s.transition }

// Background returns the background color to paint at now, which differs from
// the palette background only while a transition is running.
func (s *Synchronizer) Background(now time.Time) string {
	return s.transition.Color(now)
}

// Toggle flips the theme, persists it and applies the new palette. A persist
// failure is returned, but the flip and palette still take effect.
func (s *Synchronizer) Toggle(ctx context.Context) error {
	next := s.state.Toggled()
	var err error
	if s.store != nil {
		if err = s.store.Set(ctx, model.ThemeKey, next.String()); err != nil {
			s.logger.Error("persist theme", zap.Stringer("state", next), zap.Error(err))
			err = fmt.Errorf("persist theme %s: %w", next, err)
		}
	}
	s.switchTo(next)
	return err
}

// Apply switches to state without persisting it. It is used when another
// process changed the stored flag. It reports whether anything changed.
func (s *Synchronizer) Apply(state State) bool {
	if state == s.state {
		return false
	}
	s.switchTo(state)
	return true
}

// Reload applies the stored flag after a change notification. The notified
// state can be stale: a watcher reports this process's own writes late, so a
// quick double toggle would otherwise replay the first value. The stored flag
// wins; notified is used only when storage cannot be read or holds no valid
// value. It reports whether anything changed.
func (s *Synchronizer) Reload(ctx context.Context, notified State) bool {
	target := notified
	if s.store != nil {
		v, ok, err := s.store.Get(ctx, model.ThemeKey)
		switch {
		case err != nil:
			s.logger.Warn("reload stored theme", zap.Error(err))
		case ok:
			if st, valid := ParseState(v); valid {
				target = st
			}
		}
	}
	if target != notified {
		s.logger.Debug("ignoring stale theme notification",
			zap.Stringer("notified", notified), zap.Stringer("stored", target))
	}
	return s.Apply(target)
}

func (s *Synchronizer) switchTo(state State) {
	from := s.Background(s.now())
	s.state = state
	s.palette = PaletteFor(state == Dark)
	n := ApplyPalette(s.registry.Descriptors(), s.palette)
	s.transition = Transition{
		From:     from,
		To:       s.palette.Background,
		Start:    s.now(),
		Duration: s.duration,
	}
	s.logger.Info("theme changed", zap.Stringer("state", state), zap.Int("charts", n))
}
