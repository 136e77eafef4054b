package model

// ChartKind identifies how a chart is drawn and which theming rule applies.
type ChartKind string

const (
	ChartLine     ChartKind = "line"
	ChartArea     ChartKind = "area"
	ChartBar      ChartKind = "bar"
	ChartPie      ChartKind = "pie"
	ChartDoughnut ChartKind = "doughnut"
	ChartRadar    ChartKind = "radar"
	ChartTable    ChartKind = "table" // key/value list, no theming rule
)

// Series is one named dataset of a chart.
type Series struct {
	Label  string    `yaml:"label"`
	Values []float64 `yaml:"values"`
}

// InfoRow is a single label/value line of a card or table chart.
type InfoRow struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// ChartDefinition is the static configuration of one chart.
type ChartDefinition struct {
	ID       string    `yaml:"id"`
	Title    string    `yaml:"title"`
	Subtitle string    `yaml:"subtitle"`
	Kind     ChartKind `yaml:"kind"`
	Labels   []string  `yaml:"labels"`
	Series   []Series  `yaml:"series"`
	Rows     []InfoRow `yaml:"rows"` // table charts only
}

// SectionDefinition groups charts that share one carousel.
type SectionDefinition struct {
	Name   string   `yaml:"name"`
	Title  string   `yaml:"title"`
	Charts []string `yaml:"charts"` // chart IDs, in carousel order
}

// Metric is one headline tile. Numeric tiles set Value; tiles like
// "Real-time" set Text instead.
type Metric struct {
	Title    string  `yaml:"title"`
	Value    float64 `yaml:"value"`
	Text     string  `yaml:"text"`
	Prefix   string  `yaml:"prefix"`
	Suffix   string  `yaml:"suffix"`
	Decimals int     `yaml:"decimals"`
	Comma    bool    `yaml:"comma"`
	Change   string  `yaml:"change"`
}

// Numeric reports whether the tile animates a number.
func (m Metric) Numeric() bool {
	return m.Text == ""
}

// InfoCard is a titled block of label/value rows.
type InfoCard struct {
	Title string    `yaml:"title"`
	Rows  []InfoRow `yaml:"rows"`
}

// Dashboard is the complete static definition rendered by the TUI.
type Dashboard struct {
	Company  string              `yaml:"company"`
	Tagline  string              `yaml:"tagline"`
	Badges   []string            `yaml:"badges"`
	Metrics  [][]Metric          `yaml:"metrics"`
	Cards    []InfoCard          `yaml:"cards"`
	Charts   []ChartDefinition   `yaml:"charts"`
	Sections []SectionDefinition `yaml:"sections"`
}

// Chart returns the chart definition with the given ID.
func (d *Dashboard) Chart(id string) (ChartDefinition, bool) {
	for _, c := range d.Charts {
		if c.ID == id {
			return c, true
		}
	}
	return ChartDefinition{}, false
}
