package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"drover/internal/logging"
	"drover/internal/ui"
)

// WatchCmd shows a live view of sessions and their windows
type WatchCmd struct{}

// Run executes the watch command
func (w *WatchCmd) Run(cli *CLI) error {
	container, err := NewContainer(cli.Settings())
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer container.Close()

	if err := container.Tmux.Available(); err != nil {
		return err
	}

	logging.Logger.Info("Starting watch view")
	model := ui.NewWatchModel(container.Watch)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("watch view failed: %w", err)
	}
	return nil
}
