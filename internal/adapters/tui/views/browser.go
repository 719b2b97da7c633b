package views

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"clearscene/internal/adapters/tui/styles"
	"clearscene/internal/domain"
	"clearscene/internal/ports"
)

// BrowserKeyMap defines key bindings for the catalog browser
type BrowserKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Back   key.Binding
	Enter  key.Binding
	Toggle key.Binding
	Yank   key.Binding
	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Back: key.NewBinding(
		key.WithKeys("h", "left", "esc"),
		key.WithHelp("h/←", "back"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter", "l", "right"),
		key.WithHelp("enter", "open"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "toggle cloudy"),
	),
	Yank: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy id"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type browserLevel int

const (
	levelTiles browserLevel = iota
	levelYears
	levelScenes
)

// BrowserModel drills down tile -> year -> scene over the catalog
type BrowserModel struct {
	repo ports.CatalogRepository

	level  browserLevel
	tiles  []domain.Tile
	years  []int
	scenes []domain.SceneFile

	tile domain.Tile
	year int

	cursor     int
	tileCursor int
	yearCursor int
	width      int
	height     int
	message    string
	messageErr bool
	loaded     bool
}

// NewBrowserModel creates a new browser model
func NewBrowserModel(repo ports.CatalogRepository) *BrowserModel {
	return &BrowserModel{repo: repo}
}

// Init initializes the browser
func (m *BrowserModel) Init() tea.Cmd {
	return m.loadTiles
}

type tilesLoadedMsg struct{ tiles []domain.Tile }
type yearsLoadedMsg struct{ years []int }
type scenesLoadedMsg struct{ scenes []domain.SceneFile }
type errMsg struct{ err error }
type successMsg struct{ message string }

func (m *BrowserModel) loadTiles() tea.Msg {
	tiles, err := m.repo.ListTiles()
	if err != nil {
		return errMsg{err}
	}
	return tilesLoadedMsg{tiles}
}

func (m *BrowserModel) loadYears(tile domain.Tile) tea.Cmd {
	return func() tea.Msg {
		years, err := m.repo.ListYears(tile)
		if err != nil {
			return errMsg{err}
		}
		return yearsLoadedMsg{years}
	}
}

func (m *BrowserModel) loadScenes(tile domain.Tile, year int) tea.Cmd {
	return func() tea.Msg {
		scenes, err := m.repo.ListScenes(tile, year)
		if err != nil {
			return errMsg{err}
		}
		return scenesLoadedMsg{scenes}
	}
}

func (m *BrowserModel) toggleScene(file domain.SceneFile) tea.Cmd {
	return func() tea.Msg {
		moved, err := m.repo.MoveScene(file)
		if err != nil {
			return errMsg{err}
		}
		return successMsg{fmt.Sprintf("%s marked %s", moved.Stem(), moved.Classification)}
	}
}

func (m *BrowserModel) yankScene(file domain.SceneFile) tea.Cmd {
	return func() tea.Msg {
		token := file.Stem()
		if id, err := domain.ResolveStem(token, file.Tile); err == nil {
			token = id.EncodeShort()
		}
		if err := clipboard.WriteAll(token); err != nil {
			return errMsg{err}
		}
		return successMsg{fmt.Sprintf("copied %s", token)}
	}
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tilesLoadedMsg:
		m.tiles = msg.tiles
		m.loaded = true
		m.clampCursor()
		return m, nil

	case yearsLoadedMsg:
		m.years = msg.years
		m.clampCursor()
		return m, nil

	case scenesLoadedMsg:
		m.scenes = msg.scenes
		m.clampCursor()
		return m, nil

	case errMsg:
		m.message = msg.err.Error()
		m.messageErr = true
		return m, nil

	case successMsg:
		m.message = msg.message
		m.messageErr = false
		return m, m.reloadLevel()

	case tea.KeyMsg:
		m.message = ""

		switch {
		case key.Matches(msg, BrowserKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BrowserKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Down):
			if m.cursor < m.entryCount()-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Enter):
			return m, m.descend()

		case key.Matches(msg, BrowserKeys.Back):
			m.ascend()
			return m, nil

		case key.Matches(msg, BrowserKeys.Toggle):
			if scene, ok := m.selectedScene(); ok {
				return m, m.toggleScene(scene)
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Yank):
			if scene, ok := m.selectedScene(); ok {
				return m, m.yankScene(scene)
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Reload):
			return m, m.reloadLevel()

		case key.Matches(msg, BrowserKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

func (m *BrowserModel) descend() tea.Cmd {
	switch m.level {
	case levelTiles:
		if m.cursor < len(m.tiles) {
			m.tile = m.tiles[m.cursor]
			m.tileCursor = m.cursor
			m.level = levelYears
			m.cursor = 0
			m.years = nil
			return m.loadYears(m.tile)
		}
	case levelYears:
		if m.cursor < len(m.years) {
			m.year = m.years[m.cursor]
			m.yearCursor = m.cursor
			m.level = levelScenes
			m.cursor = 0
			m.scenes = nil
			return m.loadScenes(m.tile, m.year)
		}
	}
	return nil
}

func (m *BrowserModel) ascend() {
	switch m.level {
	case levelYears:
		m.level = levelTiles
		m.cursor = m.tileCursor
	case levelScenes:
		m.level = levelYears
		m.cursor = m.yearCursor
	}
	m.clampCursor()
}

func (m *BrowserModel) reloadLevel() tea.Cmd {
	switch m.level {
	case levelYears:
		return m.loadYears(m.tile)
	case levelScenes:
		return m.loadScenes(m.tile, m.year)
	default:
		return m.loadTiles
	}
}

func (m *BrowserModel) entryCount() int {
	switch m.level {
	case levelYears:
		return len(m.years)
	case levelScenes:
		return len(m.scenes)
	default:
		return len(m.tiles)
	}
}

func (m *BrowserModel) selectedScene() (domain.SceneFile, bool) {
	if m.level == levelScenes && m.cursor >= 0 && m.cursor < len(m.scenes) {
		return m.scenes[m.cursor], true
	}
	return domain.SceneFile{}, false
}

func (m *BrowserModel) clampCursor() {
	if n := m.entryCount(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the browser
func (m *BrowserModel) View() string {
	if !m.loaded {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(styles.Title.Render("Clearscene"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(m.breadcrumb()))
	b.WriteString("\n\n")

	switch m.level {
	case levelTiles:
		if len(m.tiles) == 0 {
			b.WriteString(styles.Subtitle.Render("no tiles in catalog"))
			b.WriteString("\n")
		}
		for i, tile := range m.tiles {
			b.WriteString(m.renderEntry(tile.String(), i == m.cursor, styles.Entry))
			b.WriteString("\n")
		}
	case levelYears:
		if len(m.years) == 0 {
			b.WriteString(styles.Subtitle.Render("no year folders"))
			b.WriteString("\n")
		}
		for i, year := range m.years {
			b.WriteString(m.renderEntry(fmt.Sprintf("%d", year), i == m.cursor, styles.Entry))
			b.WriteString("\n")
		}
	case levelScenes:
		if len(m.scenes) == 0 {
			b.WriteString(styles.Subtitle.Render("no scene files"))
			b.WriteString("\n")
		}
		for i, scene := range m.scenes {
			b.WriteString(m.renderScene(scene, i == m.cursor))
			b.WriteString("\n")
		}
	}

	if m.message != "" {
		b.WriteString("\n")
		if m.messageErr {
			b.WriteString(styles.ErrorMsg.Render(m.message))
		} else {
			b.WriteString(styles.Success.Render(m.message))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelpLine())

	return styles.App.Render(b.String())
}

func (m *BrowserModel) breadcrumb() string {
	switch m.level {
	case levelYears:
		return fmt.Sprintf("%s › %s", m.repo.Root(), m.tile)
	case levelScenes:
		return fmt.Sprintf("%s › %s › %d", m.repo.Root(), m.tile, m.year)
	default:
		return m.repo.Root()
	}
}

func (m *BrowserModel) renderEntry(text string, selected bool, style lipgloss.Style) string {
	if selected {
		return styles.EntrySelected.Render(text)
	}
	return style.Render(text)
}

func (m *BrowserModel) renderScene(scene domain.SceneFile, selected bool) string {
	var tag string
	style := styles.Entry
	if scene.Classification == domain.Cloudy {
		tag = styles.CloudyTag.Render(" [cloudy]")
		style = styles.EntryCloudy
	} else {
		tag = styles.ClearTag.Render(" [clear]")
	}

	text := scene.Name
	if selected {
		return styles.EntrySelected.Render(text) + tag
	}
	return style.Render(text) + tag
}

func (m *BrowserModel) renderHelpLine() string {
	keys := []struct {
		key  string
		desc string
	}{
		{"j/k", "navigate"},
		{"enter", "open"},
		{"h", "back"},
		{"c", "toggle cloudy"},
		{"y", "copy id"},
		{"r", "reload"},
		{"?", "help"},
		{"q", "quit"},
	}

	var parts []string
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s",
			styles.HelpKey.Render(k.key),
			styles.HelpDesc.Render(k.desc),
		))
	}

	return strings.Join(parts, styles.HelpSeparator.String())
}

// SetSize updates the view dimensions
func (m *BrowserModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Reload refetches the current level from disk
func (m *BrowserModel) Reload() tea.Cmd {
	return m.reloadLevel()
}

// Messages for view switching
type SwitchToHelpMsg struct{}

type SwitchToBrowserMsg struct{}
