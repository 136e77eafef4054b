// Package charts owns live chart instances: their data, the color fields the
// theme writes into, and rendering through ntcharts.
package charts

import (
	"errors"
	"fmt"

	"github.com/tinytelemetry/boardroom/internal/model"

	"github.com/google/uuid"
)

// ErrInvalidChart is returned when a chart definition cannot be constructed.
var ErrInvalidChart = errors.New("invalid chart")

const defaultColor = "#9CA3AF"

// Dataset holds the values and color fields of one series.
type Dataset struct {
	Label  string
	Values []float64

	BorderColor          string
	BackgroundColor      string
	BackgroundColors     []string // pie/doughnut, one per category
	PointBackgroundColor string
	PointBorderColor     string
}

// Colors are the chrome color fields shared by every chart kind.
type Colors struct {
	Title  string
	Legend string
	Tick   string
	Grid   string
}

// Instance is a constructed chart. Color fields are mutated in place by the
// theme; Redraw re-renders the cached frame from the current fields.
type Instance struct {
	Handle   uuid.UUID
	ID       string
	Kind     model.ChartKind
	Title    string
	Subtitle string
	Labels   []string
	Datasets []Dataset
	Rows     []model.InfoRow
	Colors   Colors

	width   int
	height  int
	frame   string
	redraws int
	err     error
}

// New constructs an instance from its definition.
func New(def model.ChartDefinition) (*Instance, error) {
	if err := validate(def); err != nil {
		return nil, err
	}

	inst := &Instance{
		Handle:   uuid.New(),
		ID:       def.ID,
		Kind:     def.Kind,
		Title:    def.Title,
		Subtitle: def.Subtitle,
		Labels:   append([]string(nil), def.Labels...),
		Rows:     append([]model.InfoRow(nil), def.Rows...),
		Colors: Colors{
			Title:  defaultColor,
			Legend: defaultColor,
			Tick:   defaultColor,
			Grid:   defaultColor,
		},
	}
	for _, s := range def.Series {
		inst.Datasets = append(inst.Datasets, Dataset{
			Label:           s.Label,
			Values:          append([]float64(nil), s.Values...),
			BorderColor:     defaultColor,
			BackgroundColor: defaultColor,
		})
	}
	return inst, nil
}

// construct wraps New so a panic while building one chart is reported as an
// error for that chart only.
func construct(def model.ChartDefinition) (inst *Instance, err error) {
	defer func() {
		if r := recover(); r != nil {
			inst = nil
			err = fmt.Errorf("chart %q: %w: panic: %v", def.ID, ErrInvalidChart, r)
		}
	}()
	return New(def)
}

func validate(def model.ChartDefinition) error {
	fail := func(format string, args ...any) error {
		return fmt.Errorf("chart %q: %w: %s", def.ID, ErrInvalidChart, fmt.Sprintf(format, args...))
	}

	if def.ID == "" {
		return fail("id is empty")
	}

	switch def.Kind {
	case model.ChartTable:
		if len(def.Rows) == 0 {
			return fail("table has no rows")
		}
		return nil
	case model.ChartLine, model.ChartArea, model.ChartBar, model.ChartPie, model.ChartDoughnut, model.ChartRadar:
	default:
		return fail("unknown kind %q", def.Kind)
	}

	if len(def.Labels) == 0 {
		return fail("no labels")
	}
	if len(def.Series) == 0 {
		return fail("no series")
	}
	for i, s := range def.Series {
		if len(s.Values) != len(def.Labels) {
			return fail("series %d has %d values for %d labels", i, len(s.Values), len(def.Labels))
		}
	}

	switch def.Kind {
	case model.ChartPie, model.ChartDoughnut:
		if len(def.Series) != 1 {
			return fail("%s takes exactly one series, got %d", def.Kind, len(def.Series))
		}
	case model.ChartRadar:
		if len(def.Labels) < 3 {
			return fail("radar needs at least 3 axes, got %d", len(def.Labels))
		}
	}
	return nil
}

// Resize sets the area the instance renders into. The frame is not redrawn
// until Redraw is called.
func (i *Instance) Resize(width, height int) {
	i.width = width
	i.height = height
}

// Size returns the current render area.
func (i *Instance) Size() (int, int) {
	return i.width, i.height
}

// Redraw re-renders the cached frame from the current data and colors. A
// render panic leaves a placeholder frame and is reported by Err.
func (i *Instance) Redraw() {
	i.redraws++
	defer func() {
		if r := recover(); r != nil {
			i.err = fmt.Errorf("chart %q: render: panic: %v", i.ID, r)
			i.frame = "Chart unavailable"
		}
	}()
	i.frame = render(i)
	i.err = nil
}

// Err returns the failure of the last Redraw, if any.
func (i *Instance) Err() error {
	return i.err
}

// Redraws returns how many times the instance has been redrawn.
func (i *Instance) Redraws() int {
	return i.redraws
}

// View returns the last rendered frame.
func (i *Instance) View() string {
	return i.frame
}
