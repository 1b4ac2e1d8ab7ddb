package cmd

import (
	"fmt"

	"drover/internal/config"
	"drover/internal/domain"
	"drover/internal/logging"
)

// AttachCmd attaches the terminal to a running session
type AttachCmd struct {
	Session string `arg:"" optional:"" help:"Session name (default: the configured launch session)"`
}

// Run executes the attach command
func (a *AttachCmd) Run(cli *CLI) error {
	settings := cli.Settings()

	container, err := NewContainer(settings)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer container.Close()

	sessionName := a.Session
	if sessionName == "" {
		sessionName = settings.SessionName
	}
	if sessionName == "" {
		sessionName = config.DefaultSessionName
	}
	sessionName = domain.SanitizeName(sessionName)

	if err := container.Tmux.Available(); err != nil {
		return err
	}

	logging.Logger.Info("Attaching to session", "name", sessionName)
	fmt.Printf("Attaching to %q (Ctrl+Q to detach)\n", sessionName)
	return container.Tmux.Attach(sessionName)
}
