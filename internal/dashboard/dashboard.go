// Package dashboard holds the static dashboard definition shipped with the
// binary and the loader that turns it into a model.Dashboard.
package dashboard

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tinytelemetry/boardroom/internal/model"

	"gopkg.in/yaml.v3"
)

//go:embed dashboard.yaml
var embedded []byte

// Default returns the built-in dashboard.
func Default() (*model.Dashboard, error) {
	return Parse(embedded)
}

// Load reads a dashboard definition from path. An empty path returns the
// built-in dashboard.
func Load(path string) (*model.Dashboard, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dashboard: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML dashboard definition.
func Parse(data []byte) (*model.Dashboard, error) {
	var d model.Dashboard
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("dashboard: decode: %w", err)
	}
	if err := Validate(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Validate checks the structural rules the TUI relies on. Chart contents are
// not checked here: a bad chart only degrades its own panel and is reported
// when the chart is constructed.
func Validate(d *model.Dashboard) error {
	var errs []error

	if strings.TrimSpace(d.Company) == "" {
		errs = append(errs, errors.New("company is empty"))
	}

	chartIDs := make(map[string]bool, len(d.Charts))
	for i, c := range d.Charts {
		if c.ID == "" {
			errs = append(errs, fmt.Errorf("charts[%d]: id is empty", i))
			continue
		}
		if chartIDs[c.ID] {
			errs = append(errs, fmt.Errorf("charts[%d]: duplicate id %q", i, c.ID))
		}
		chartIDs[c.ID] = true
	}

	sectionNames := make(map[string]bool, len(d.Sections))
	for i, s := range d.Sections {
		if s.Name == "" {
			errs = append(errs, fmt.Errorf("sections[%d]: name is empty", i))
			continue
		}
		if sectionNames[s.Name] {
			errs = append(errs, fmt.Errorf("sections[%d]: duplicate name %q", i, s.Name))
		}
		sectionNames[s.Name] = true
	}

	if len(errs) > 0 {
		return fmt.Errorf("dashboard: invalid definition: %w", errors.Join(errs...))
	}
	return nil
}
