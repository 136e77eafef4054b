package theme

import "time"

// Transition blends the background from one palette to the next. It is
// presentation only; chart colors are already final when it starts.
type Transition struct {
	From     string
	To       string
	Start    time.Time
	Duration time.Duration
}

// Progress returns how far the transition is at now, in [0,1].
func (t Transition) Progress(now time.Time) float64 {
	if t.Duration <= 0 {
		return 1
	}
	p := float64(now.Sub(t.Start)) / float64(t.Duration)
	return max(0, min(1, p))
}

// Done reports whether the transition has finished at now.
func (t Transition) Done(now time.Time) bool {
	return t.Progress(now) >= 1
}

// Color returns the blended background at now.
func (t Transition) Color(now time.Time) string {
	p := t.Progress(now)
	switch {
	case p >= 1:
		return t.To
	case p <= 0:
		return t.From
	}
	return Blend(t.From, t.To, p)
}
