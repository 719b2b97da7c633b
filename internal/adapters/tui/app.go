package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"clearscene/internal/adapters/tui/views"
	"clearscene/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBrowser ViewState = iota
	ViewHelp
)

// App is the main TUI application model
type App struct {
	repo ports.CatalogRepository

	state   ViewState
	browser *views.BrowserModel
	help    *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(repo ports.CatalogRepository) *App {
	return &App{
		repo:    repo,
		state:   ViewBrowser,
		browser: views.NewBrowserModel(repo),
		help:    views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.browser.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.browser.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToBrowserMsg:
		a.state = ViewBrowser
		return a, a.browser.Reload()
	}

	var cmd tea.Cmd
	switch a.state {
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	default:
		_, cmd = a.browser.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewHelp:
		return a.help.View()
	default:
		return a.browser.View()
	}
}
