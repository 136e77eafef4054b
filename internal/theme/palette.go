// Package theme derives the color palette from the light/dark flag and pushes
// it into every live chart instance.
package theme

import (
	"github.com/lucasb-eyer/go-colorful"
)

// State is the persisted theme flag.
type State int

const (
	Light State = iota
	Dark
)

func (s State) String() string {
	if s == Dark {
		return "dark"
	}
	return "light"
}

// Toggled returns the opposite state.
func (s State) Toggled() State {
	if s == Dark {
		return Light
	}
	return Dark
}

// ParseState parses a stored value. Anything but "dark" or "light" is
// rejected.
func ParseState(v string) (State, bool) {
	switch v {
	case "dark":
		return Dark, true
	case "light":
		return Light, true
	}
	return Light, false
}

// RoleColors are the colors of one chart role.
type RoleColors struct {
	Primary       string
	Secondary     string
	GradientStops []string
}

// Palette is every color derived from a theme state.
type Palette struct {
	Background  string
	Text        string
	Grid        string
	Financial   RoleColors
	Operational RoleColors
}

// PaletteFor returns the palette for the given state. It has no side effects
// and returns a fresh value on every call.
func PaletteFor(dark bool) Palette {
	if dark {
		return Palette{
			Background: "#111827",
			Text:       "#F9FAFB",
			Grid:       "#1E40AF",
			Financial: RoleColors{
				Primary:       "#60A5FA",
				Secondary:     "#3B82F6",
				GradientStops: []string{"#1E40AF", "#1E3A8A"},
			},
			Operational: RoleColors{
				Primary:       "#34D399",
				Secondary:     "#10B981",
				GradientStops: []string{"#065F46", "#064E3B"},
			},
		}
	}
	return Palette{
		Background: "#FFFFFF",
		Text:       "#1F2937",
		Grid:       "#E5E7EB",
		Financial: RoleColors{
			Primary:       "#1D4ED8",
			Secondary:     "#2563EB",
			GradientStops: []string{"#BFDBFE", "#DBEAFE"},
		},
		Operational: RoleColors{
			Primary:       "#059669",
			Secondary:     "#047857",
			GradientStops: []string{"#A7F3D0", "#D1FAE5"},
		},
	}
}

// opacityTiers is the pie/doughnut ramp.
var opacityTiers = []float64{1.0, 0.8, 0.6, 0.4}

// OpacityRamp returns color at each opacity tier, composited over
// background since terminal cells have no alpha channel.
func OpacityRamp(color, background string) []string {
	ramp := make([]string, len(opacityTiers))
	fgc, err := colorful.Hex(color)
	if err != nil {
		for i := range ramp {
			ramp[i] = color
		}
		return ramp
	}
	bgc, err := colorful.Hex(background)
	if err != nil {
		bgc = colorful.Color{}
	}
	for i, op := range opacityTiers {
		if op >= 1 {
			ramp[i] = color
			continue
		}
		ramp[i] = fgc.BlendRgb(bgc, 1-op).Clamped().Hex()
	}
	return ramp
}

// Blend mixes from toward to by t in [0,1]. Unparseable inputs return to.
func Blend(from, to string, t float64) string {
	a, err := colorful.Hex(from)
	if err != nil {
		return to
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return to
	}
	t = max(0, min(1, t))
	return a.BlendLab(b, t).Clamped().Hex()
}
