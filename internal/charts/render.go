package charts

import (
	"fmt"
	"math"
	"strings"

	"github.com/tinytelemetry/boardroom/internal/model"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

const (
	gutterWidth = 8
	minPlotW    = 10
)

func fg(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

func block(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Background(lipgloss.Color(color))
}

// render draws the whole frame: header, body and legend, clipped to the
// instance size.
func render(i *Instance) string {
	if i.width <= 0 || i.height <= 0 {
		return ""
	}

	header := renderHeader(i)
	bodyH := max(1, i.height-2)

	var body []string
	switch i.Kind {
	case model.ChartLine, model.ChartArea:
		body = renderSeries(i, bodyH)
	case model.ChartBar:
		body = renderBars(i, bodyH)
	case model.ChartPie, model.ChartDoughnut:
		body = renderPie(i, bodyH)
	case model.ChartRadar:
		body = renderRadar(i, bodyH)
	case model.ChartTable:
		body = renderTable(i, bodyH)
	}

	lines := append([]string{header}, body...)
	if i.Kind != model.ChartTable && i.Kind != model.ChartPie && i.Kind != model.ChartDoughnut {
		lines = append(lines, renderLegend(i))
	}

	return lipgloss.NewStyle().
		Width(i.width).
		MaxWidth(i.width).
		MaxHeight(i.height).
		Render(strings.Join(lines, "\n"))
}

func renderHeader(i *Instance) string {
	title := fg(i.Colors.Title).Bold(true).Render(i.Title)
	if i.Kind == model.ChartTable {
		title = lipgloss.NewStyle().Bold(true).Render(i.Title)
	}
	if i.Subtitle == "" {
		return title
	}
	sub := fg(i.Colors.Tick).Render(i.Subtitle)
	if i.Kind == model.ChartTable {
		sub = lipgloss.NewStyle().Faint(true).Render(i.Subtitle)
	}
	gap := i.width - lipgloss.Width(title) - lipgloss.Width(sub)
	if gap < 1 {
		return title
	}
	return title + strings.Repeat(" ", gap) + sub
}

func renderLegend(i *Instance) string {
	parts := make([]string, 0, len(i.Datasets))
	for _, ds := range i.Datasets {
		swatch := ds.BorderColor
		if i.Kind == model.ChartBar {
			swatch = ds.BackgroundColor
		}
		parts = append(parts, fg(swatch).Render("■")+" "+fg(i.Colors.Legend).Render(ds.Label))
	}
	return strings.Join(parts, "  ")
}

func seriesMax(i *Instance) float64 {
	hi := 0.0
	for _, ds := range i.Datasets {
		for _, v := range ds.Values {
			hi = math.Max(hi, v)
		}
	}
	return hi
}

// scaleMax is the plot ceiling. ntcharts divides by it, so an all-zero or
// all-negative chart still gets a positive scale.
func scaleMax(i *Instance) float64 {
	if hi := seriesMax(i); hi > 0 {
		return hi
	}
	return 1
}

// nonNegative clamps values below the zero baseline, which is where every
// plot starts.
func nonNegative(values []float64) []float64 {
	out := make([]float64, len(values))
	for k, v := range values {
		out[k] = math.Max(0, v)
	}
	return out
}

func formatTick(v float64) string {
	if v >= 100 {
		return humanize.Comma(int64(math.Round(v)))
	}
	return humanize.CommafWithDigits(v, 1)
}

// resample linearly interpolates values onto n evenly spaced columns so a
// three-point series still fills the plot width.
func resample(values []float64, n int) []float64 {
	if n <= 0 || len(values) == 0 {
		return nil
	}
	if len(values) == 1 || n == 1 {
		out := make([]float64, n)
		for k := range out {
			out[k] = values[0]
		}
		return out
	}
	out := make([]float64, n)
	span := float64(len(values) - 1)
	for k := 0; k < n; k++ {
		pos := float64(k) * span / float64(n-1)
		lo := int(math.Floor(pos))
		if lo >= len(values)-1 {
			out[k] = values[len(values)-1]
			continue
		}
		frac := pos - float64(lo)
		out[k] = values[lo] + (values[lo+1]-values[lo])*frac
	}
	return out
}

func axisLabels(labels []string, width int, style lipgloss.Style) string {
	if len(labels) == 0 || width <= 0 {
		return ""
	}
	row := []rune(strings.Repeat(" ", width))
	for k, l := range labels {
		pos := 0
		if len(labels) > 1 {
			pos = k * (width - 1) / (len(labels) - 1)
		}
		start := pos - len([]rune(l))/2
		start = max(0, min(start, width-len([]rune(l))))
		for j, r := range []rune(l) {
			if start+j < width {
				row[start+j] = r
			}
		}
	}
	return style.Render(string(row))
}

// renderSeries draws line and area charts as one sparkline strip per dataset
// on a shared scale.
func renderSeries(i *Instance, bodyH int) []string {
	plotW := max(minPlotW, i.width-gutterWidth)
	plotH := max(1, bodyH-2)
	stripH := max(1, plotH/len(i.Datasets))
	hi := scaleMax(i)

	tick := fg(i.Colors.Tick)
	var lines []string
	for k, ds := range i.Datasets {
		sl := sparkline.New(plotW, stripH,
			sparkline.WithStyle(fg(ds.BorderColor)),
			sparkline.WithMaxValue(hi),
		)
		sl.PushAll(resample(nonNegative(ds.Values), plotW))
		if i.Kind == model.ChartArea {
			sl.Draw()
		} else {
			sl.DrawBraille()
		}
		strip := strings.Split(sl.View(), "\n")
		for row, s := range strip {
			gutter := strings.Repeat(" ", gutterWidth)
			if k == 0 && row == 0 {
				gutter = fmt.Sprintf("%*s ", gutterWidth-1, formatTick(hi))
			}
			lines = append(lines, tick.Render(gutter)+s)
		}
	}

	grid := fg(i.Colors.Grid)
	lines = append(lines,
		tick.Render(fmt.Sprintf("%*s ", gutterWidth-1, "0"))+grid.Render(strings.Repeat("─", plotW)),
		strings.Repeat(" ", gutterWidth)+axisLabels(i.Labels, plotW, tick),
	)
	return lines
}

// renderBars draws grouped bars: one bar per dataset for every label.
func renderBars(i *Instance, bodyH int) []string {
	plotW := max(minPlotW, i.width-gutterWidth)
	plotH := max(1, bodyH-2)
	bars := len(i.Labels) * len(i.Datasets)
	groupGap := 2
	barWidth := max(1, (plotW-groupGap*len(i.Labels))/max(1, bars))

	bc := barchart.New(plotW, plotH,
		barchart.WithBarGap(0),
		barchart.WithBarWidth(barWidth),
		barchart.WithNoAxis(),
	)
	for k := range i.Labels {
		for _, ds := range i.Datasets {
			bc.Push(barchart.BarData{
				Label: "",
				Values: []barchart.BarValue{
					{Name: ds.Label, Value: math.Max(0, ds.Values[k]), Style: block(ds.BackgroundColor)},
				},
			})
		}
		bc.Push(barchart.BarData{
			Label: "",
			Values: []barchart.BarValue{
				{Name: "gap", Value: 0, Style: lipgloss.NewStyle()},
			},
		})
	}
	bc.Draw()

	tick := fg(i.Colors.Tick)
	var lines []string
	for row, s := range strings.Split(bc.View(), "\n") {
		gutter := strings.Repeat(" ", gutterWidth)
		if row == 0 {
			gutter = fmt.Sprintf("%*s ", gutterWidth-1, formatTick(scaleMax(i)))
		}
		lines = append(lines, tick.Render(gutter)+s)
	}
	lines = append(lines,
		tick.Render(fmt.Sprintf("%*s ", gutterWidth-1, "0"))+fg(i.Colors.Grid).Render(strings.Repeat("─", plotW)),
		strings.Repeat(" ", gutterWidth)+axisLabels(i.Labels, plotW, tick),
	)
	return lines
}

// renderPie draws the share of each category as one proportional band,
// followed by a legend with percentages.
func renderPie(i *Instance, bodyH int) []string {
	ds := i.Datasets[0]
	total := 0.0
	for _, v := range ds.Values {
		total += v
	}
	if total <= 0 {
		return []string{fg(i.Colors.Tick).Render("No data")}
	}

	colorAt := func(k int) string {
		if len(ds.BackgroundColors) == 0 {
			return ds.BackgroundColor
		}
		return ds.BackgroundColors[k%len(ds.BackgroundColors)]
	}

	glyph := "█"
	if i.Kind == model.ChartDoughnut {
		glyph = "▆"
	}

	var band strings.Builder
	used := 0
	for k, v := range ds.Values {
		n := int(math.Round(v / total * float64(i.width)))
		if k == len(ds.Values)-1 {
			n = i.width - used
		}
		n = max(0, min(n, i.width-used))
		used += n
		band.WriteString(fg(colorAt(k)).Render(strings.Repeat(glyph, n)))
	}

	bandRows := max(1, min(3, bodyH-len(ds.Values)))
	var lines []string
	for r := 0; r < bandRows; r++ {
		lines = append(lines, band.String())
	}
	for k, v := range ds.Values {
		label := fmt.Sprintf("%-16s %8s %5.1f%%", i.Labels[k], humanize.Comma(int64(v)), v/total*100)
		lines = append(lines, fg(colorAt(k)).Render("■")+" "+fg(i.Colors.Legend).Render(label))
	}
	return lines
}

// renderRadar draws each axis as a row with one scaled bar per dataset,
// capped by a point marker.
func renderRadar(i *Instance, bodyH int) []string {
	labelW := 0
	for _, l := range i.Labels {
		labelW = max(labelW, len([]rune(l)))
	}
	labelW = min(labelW, 18)
	barW := max(4, (i.width-labelW-3)/len(i.Datasets)-8)
	hi := seriesMax(i)

	tick := fg(i.Colors.Tick)
	grid := fg(i.Colors.Grid)
	var lines []string
	for k, l := range i.Labels {
		if len(lines) >= bodyH {
			break
		}
		row := tick.Render(fmt.Sprintf("%-*.*s", labelW, labelW, l)) + grid.Render(" │ ")
		for _, ds := range i.Datasets {
			n := 0
			if hi > 0 {
				n = int(math.Round(ds.Values[k] / hi * float64(barW-1)))
			}
			n = max(0, min(n, barW-1))
			bar := fg(ds.BackgroundColor).Render(strings.Repeat("▬", n)) +
				lipgloss.NewStyle().
					Foreground(lipgloss.Color(ds.PointBackgroundColor)).
					Background(lipgloss.Color(ds.PointBorderColor)).
					Render("●") +
				strings.Repeat(" ", barW-1-n)
			row += bar + fg(ds.BorderColor).Render(fmt.Sprintf(" %6s ", formatTick(ds.Values[k])))
		}
		lines = append(lines, row)
	}
	return lines
}

func renderTable(i *Instance, bodyH int) []string {
	var lines []string
	for _, r := range i.Rows {
		if len(lines) >= bodyH {
			break
		}
		gap := i.width - len([]rune(r.Label)) - len([]rune(r.Value))
		if gap < 1 {
			gap = 1
		}
		lines = append(lines, lipgloss.NewStyle().Faint(true).Render(r.Label)+
			strings.Repeat(" ", gap)+
			lipgloss.NewStyle().Bold(true).Render(r.Value))
	}
	return lines
}
