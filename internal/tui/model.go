package tui

import (
	"context"
	"errors"
	"time"

	"github.com/tinytelemetry/boardroom/internal/carousel"
	"github.com/tinytelemetry/boardroom/internal/charts"
	"github.com/tinytelemetry/boardroom/internal/model"
	"github.com/tinytelemetry/boardroom/internal/theme"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// errorTTL is how long a transient error stays in the status line.
const errorTTL = 30 * time.Second

// Config wires the dashboard to its collaborators. Charts must be registered,
// themed and bound to sections before the model is created.
type Config struct {
	Context        context.Context
	Dashboard      model.Dashboard
	Registry       *charts.Registry
	Carousel       *carousel.Controller
	Theme          *theme.Synchronizer
	Diagnostics    []error
	CellWidthPx    int
	RevealDuration time.Duration
	Mouse          bool
	Logger         *zap.Logger
}

// ThemeChangedMsg reports a theme flag written by another process.
type ThemeChangedMsg struct {
	State theme.State
}

// dragState tracks a mouse drag that started over a chart.
type dragState struct {
	active  bool
	section string
}

// DashboardModel represents the main TUI model.
type DashboardModel struct {
	ctx    context.Context
	logger *zap.Logger
	now    func() time.Time

	dash     model.Dashboard
	titles   map[string]string
	registry *charts.Registry
	carousel *carousel.Controller
	theme    *theme.Synchronizer

	keys   KeyMap
	help   help.Model
	styles Styles

	// Window dimensions
	width  int
	height int

	// Index into carousel.Sections() of the section receiving keys.
	focus int
	drag  dragState

	reveal      reveal
	tickPending bool

	cellWidthPx int
	mouse       bool

	// Startup problems, shown until the program exits.
	diagnostics []string

	// Last runtime error for status line display (auto-clears after errorTTL).
	lastError   string
	lastErrorAt time.Time
}

// NewDashboardModel creates a new dashboard model.
func NewDashboardModel(cfg Config) *DashboardModel {
	if cfg.Context == nil {
		cfg.Context = context.Background()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Registry == nil {
		cfg.Registry = charts.NewRegistry()
	}
	if cfg.Carousel == nil {
		cfg.Carousel = carousel.NewController(carousel.Options{}, cfg.Logger)
	}
	if cfg.Theme == nil {
		cfg.Theme = theme.NewSynchronizer(cfg.Context, nil, cfg.Registry, theme.Dark, 0, cfg.Logger)
	}
	if cfg.CellWidthPx <= 0 {
		cfg.CellWidthPx = model.DefaultCellWidthPx
	}

	titles := make(map[string]string, len(cfg.Dashboard.Sections))
	for _, s := range cfg.Dashboard.Sections {
		titles[s.Name] = s.Title
	}

	m := &DashboardModel{
		ctx:         cfg.Context,
		logger:      cfg.Logger,
		now:         time.Now,
		dash:        cfg.Dashboard,
		titles:      titles,
		registry:    cfg.Registry,
		carousel:    cfg.Carousel,
		theme:       cfg.Theme,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		cellWidthPx: cfg.CellWidthPx,
		mouse:       cfg.Mouse,
	}
	for _, err := range cfg.Diagnostics {
		if err != nil {
			m.diagnostics = append(m.diagnostics, err.Error())
		}
	}
	m.reveal = reveal{start: m.now(), duration: cfg.RevealDuration}
	m.refreshStyles()
	return m
}

// BindSections creates one carousel section per dashboard section, in
// definition order. Panels whose chart is not registered make their section
// fail with carousel.ErrMissingTarget; other sections are unaffected.
func BindSections(c *carousel.Controller, dash model.Dashboard, reg *charts.Registry) []error {
	var errs []error
	for _, def := range dash.Sections {
		panels := make([]*carousel.Panel, 0, len(def.Charts))
		for _, id := range def.Charts {
			p := &carousel.Panel{ID: id}
			if d, ok := reg.Get(id); ok {
				p.Chart = d.Instance
			}
			panels = append(panels, p)
		}
		if _, err := c.InitSection(def.Name, panels); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// Init initializes the model
func (m *DashboardModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.mouse {
		cmds = append(cmds, tea.EnableMouseCellMotion)
	}
	cmds = append(cmds, m.startAnimationIfNeeded())
	return tea.Batch(cmds...)
}

// sections returns the sections that initialized successfully.
func (m *DashboardModel) sections() []*carousel.Section {
	return m.carousel.Sections()
}

// focused returns the section receiving keyboard input.
func (m *DashboardModel) focused() (*carousel.Section, bool) {
	secs := m.sections()
	if len(secs) == 0 {
		return nil, false
	}
	m.focus = max(0, min(m.focus, len(secs)-1))
	return secs[m.focus], true
}

func (m *DashboardModel) cycleFocus(delta int) {
	n := len(m.sections())
	if n == 0 {
		return
	}
	m.focus = ((m.focus+delta)%n + n) % n
}

func (m *DashboardModel) focusSection(name string) {
	for i, s := range m.sections() {
		if s.Name() == name {
			m.focus = i
			return
		}
	}
}

func (m *DashboardModel) sectionTitle(name string) string {
	if t := m.titles[name]; t != "" {
		return t
	}
	return name
}

// dispatch routes ev to the carousel.
func (m *DashboardModel) dispatch(ev carousel.Event) bool {
	return m.carousel.Handle(ev)
}

// toggleTheme flips the theme; a persistence failure is surfaced but the
// new palette stays applied.
func (m *DashboardModel) toggleTheme() tea.Cmd {
	if err := m.theme.Toggle(m.ctx); err != nil {
		m.setError(err)
	}
	m.refreshStyles()
	return m.startAnimationIfNeeded()
}

func (m *DashboardModel) applyExternalTheme(state theme.State) tea.Cmd {
	if !m.theme.Reload(m.ctx, state) {
		return nil
	}
	m.refreshStyles()
	return m.startAnimationIfNeeded()
}

func (m *DashboardModel) refreshStyles() {
	m.styles = NewStyles(m.theme.Palette(), m.theme.Background(m.now()))
}

func (m *DashboardModel) setError(err error) {
	if err == nil {
		return
	}
	m.lastError = err.Error()
	m.lastErrorAt = m.now()
	if errors.Is(err, context.Canceled) {
		return
	}
	m.logger.Warn("dashboard error", zap.Error(err))
}

// statusError returns the error to show, if any.
func (m *DashboardModel) statusError() string {
	if m.lastError != "" && m.now().Sub(m.lastErrorAt) < errorTTL {
		return m.lastError
	}
	if len(m.diagnostics) > 0 {
		return m.diagnostics[0]
	}
	return ""
}

// DashboardPage adapts DashboardModel to the Page interface.
type DashboardPage struct {
	Model *DashboardModel
}

// NewDashboardPage wraps a DashboardModel as a Page.
func NewDashboardPage(m *DashboardModel) *DashboardPage {
	return &DashboardPage{Model: m}
}

func (p *DashboardPage) ID() string { return PageDashboard }

func (p *DashboardPage) Init() tea.Cmd {
	return p.Model.Init()
}

func (p *DashboardPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, p.Model.keys.Help) {
		return nil, &PageNav{PageID: PageHelp}
	}
	_, cmd := p.Model.Update(msg)
	return cmd, nil
}

func (p *DashboardPage) View(width, height int) string {
	p.Model.width = width
	p.Model.height = height
	return p.Model.View()
}

// Styles returns the styles of the current theme.
func (m *DashboardModel) Styles() Styles {
	return m.styles
}

// Diagnostics returns the startup problems shown in the status line.
func (m *DashboardModel) Diagnostics() []string {
	return append([]string(nil), m.diagnostics...)
}

// Theme returns the theme synchronizer.
func (m *DashboardModel) Theme() *theme.Synchronizer {
	return m.theme
}

// Carousel returns the carousel controller.
func (m *DashboardModel) Carousel() *carousel.Controller {
	return m.carousel
}
