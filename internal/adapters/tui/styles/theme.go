package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary = lipgloss.Color("#7C3AED") // Purple
	Muted   = lipgloss.Color("#6B7280") // Gray
	Error   = lipgloss.Color("#EF4444") // Red
	Green   = lipgloss.Color("#10B981")
	Amber   = lipgloss.Color("#F59E0B")
	White   = lipgloss.Color("#FFFFFF")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// List entries
	Entry = lipgloss.NewStyle()

	EntrySelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	EntryCloudy = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	ClearTag = lipgloss.NewStyle().
			Foreground(Green)

	CloudyTag = lipgloss.NewStyle().
			Foreground(Amber)

	// Status messages
	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error)

	Success = lipgloss.NewStyle().
		Foreground(Green)

	MutedText = lipgloss.NewStyle().
			Foreground(Muted)

	SectionLabel = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString("  ·  ")
)
