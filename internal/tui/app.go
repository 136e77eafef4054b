package tui

import tea "github.com/charmbracelet/bubbletea"

// App is the top-level Bubble Tea model that routes between pages.
type App struct {
	pages      map[string]Page
	activePage string
	width      int
	height     int
}

// NewApp creates a new App with the given pages. The first page is the default.
func NewApp(pages ...Page) *App {
	pageMap := make(map[string]Page, len(pages))
	var firstID string
	for i, p := range pages {
		pageMap[p.ID()] = p
		if i == 0 {
			firstID = p.ID()
		}
	}
	return &App{
		pages:      pageMap,
		activePage: firstID,
	}
}

// NewDashboardApp routes between the dashboard and its help page.
func NewDashboardApp(m *DashboardModel) *App {
	return NewApp(NewDashboardPage(m), NewHelpPage(m.keys, m))
}

// ActivePage returns the ID of the page being shown.
func (a *App) ActivePage() string {
	return a.activePage
}

func (a *App) Init() tea.Cmd {
	if p, ok := a.pages[a.activePage]; ok {
		return p.Init()
	}
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Every page tracks dimensions and theme changes, not only the active one.
	switch msg.(type) {
	case tea.WindowSizeMsg, ThemeChangedMsg, AnimationTickMsg:
		if wsm, ok := msg.(tea.WindowSizeMsg); ok {
			a.width = wsm.Width
			a.height = wsm.Height
		}
		for id, p := range a.pages {
			if id == a.activePage {
				continue
			}
			cmd, _ := p.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	p, ok := a.pages[a.activePage]
	if !ok {
		return a, tea.Batch(cmds...)
	}

	cmd, nav := p.Update(msg)
	cmds = append(cmds, cmd)

	if nav != nil {
		if _, exists := a.pages[nav.PageID]; exists {
			a.activePage = nav.PageID
			cmds = append(cmds, a.pages[a.activePage].Init())
		}
	}

	return a, tea.Batch(cmds...)
}

func (a *App) View() string {
	if p, ok := a.pages[a.activePage]; ok {
		return p.View(a.width, a.height)
	}
	return "No active page"
}
