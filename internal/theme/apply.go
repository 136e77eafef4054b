package theme

import (
	"github.com/tinytelemetry/boardroom/internal/charts"
	"github.com/tinytelemetry/boardroom/internal/model"
)

// ApplyPalette writes p into every descriptor whose kind has a theming rule
// and redraws it. Kinds without a rule are skipped. It returns the number of
// instances themed. Applying the same palette twice has the same result as
// applying it once.
func ApplyPalette(descs []charts.Descriptor, p Palette) int {
	themed := 0
	for _, d := range descs {
		if d.Instance == nil || !applyToInstance(d.Kind, d.Instance, p) {
			continue
		}
		d.Instance.Redraw()
		themed++
	}
	return themed
}

func applyToInstance(kind model.ChartKind, inst *charts.Instance, p Palette) bool {
	switch kind {
	case model.ChartLine, model.ChartArea:
		applyPair(inst.Datasets, p.Financial, true)
	case model.ChartBar:
		applyPair(inst.Datasets, p.Operational, false)
	case model.ChartPie, model.ChartDoughnut:
		if len(inst.Datasets) > 0 {
			ramp := OpacityRamp(p.Operational.Primary, p.Background)
			ds := &inst.Datasets[0]
			// Categories past the ramp reuse it from the start; see
			// charts.renderPie.
			ds.BackgroundColors = ramp
			ds.BackgroundColor = ramp[0]
			ds.BorderColor = p.Background
		}
	case model.ChartRadar:
		for i := 0; i < min(2, len(inst.Datasets)); i++ {
			main, accent := p.Operational.Primary, p.Operational.Secondary
			if i == 1 {
				main, accent = accent, main
			}
			ds := &inst.Datasets[i]
			ds.BackgroundColor = main
			ds.BorderColor = main
			ds.PointBackgroundColor = main
			ds.PointBorderColor = accent
		}
	default:
		return false
	}

	inst.Colors = charts.Colors{
		Title:  p.Text,
		Legend: p.Text,
		Tick:   p.Text,
		Grid:   p.Grid,
	}
	return true
}

// applyPair colors dataset 0 with the role's primary and dataset 1 (if any)
// with its secondary. With gradient set, fills take the matching stop.
func applyPair(datasets []charts.Dataset, role RoleColors, gradient bool) {
	colors := []string{role.Primary, role.Secondary}
	for i := 0; i < min(2, len(datasets)); i++ {
		datasets[i].BorderColor = colors[i]
		datasets[i].BackgroundColor = colors[i]
		if gradient && i < len(role.GradientStops) {
			datasets[i].BackgroundColor = role.GradientStops[i]
		}
	}
}
