package charts

import (
	"fmt"

	"github.com/tinytelemetry/boardroom/internal/model"

	"go.uber.org/zap"
)

// Descriptor tags a live instance with its kind so callers can branch on the
// kind without inspecting the instance.
type Descriptor struct {
	ID       string
	Kind     model.ChartKind
	Instance *Instance
}

// Registry maps chart identifiers to descriptors, in construction order.
type Registry struct {
	order []string
	byID  map[string]Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]Descriptor)}
}

// Register adds an instance. Identifiers must be unique.
func (r *Registry) Register(inst *Instance) error {
	if inst == nil {
		return fmt.Errorf("register: %w: nil instance", ErrInvalidChart)
	}
	if _, exists := r.byID[inst.ID]; exists {
		return fmt.Errorf("register %q: %w: duplicate id", inst.ID, ErrInvalidChart)
	}
	r.byID[inst.ID] = Descriptor{ID: inst.ID, Kind: inst.Kind, Instance: inst}
	r.order = append(r.order, inst.ID)
	return nil
}

// Get returns the descriptor for id.
func (r *Registry) Get(id string) (Descriptor, bool) {
	d, ok := r.byID[id]
	return d, ok
}

// Descriptors returns all descriptors in registration order.
func (r *Registry) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// Len returns the number of registered instances.
func (r *Registry) Len() int {
	return len(r.order)
}

// Resize sets the render area of every instance and redraws it. Charts that
// fail to render are returned; the others are unaffected.
func (r *Registry) Resize(width, height int) []error {
	var errs []error
	for _, id := range r.order {
		inst := r.byID[id].Instance
		inst.Resize(width, height)
		inst.Redraw()
		if err := inst.Err(); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// Build constructs and registers every definition. A failing chart is
// logged and reported in errs; the remaining charts are still built.
func Build(defs []model.ChartDefinition, logger *zap.Logger) (*Registry, []error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	reg := NewRegistry()
	var errs []error
	for _, def := range defs {
		inst, err := construct(def)
		if err == nil {
			err = reg.Register(inst)
		}
		if err != nil {
			logger.Warn("chart construction failed", zap.String("chart", def.ID), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		logger.Debug("chart constructed",
			zap.String("chart", inst.ID),
			zap.String("kind", string(inst.Kind)),
			zap.Stringer("handle", inst.Handle))
	}
	return reg, errs
}
