package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"clearscene/internal/adapters/filesystem"
	"clearscene/internal/adapters/tui"
	"clearscene/internal/config"
)

func main() {
	repo := filesystem.NewRepository(config.RootPath())

	app := tui.NewApp(repo)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
