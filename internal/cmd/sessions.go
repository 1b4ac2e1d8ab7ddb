package cmd

import (
	"fmt"

	"drover/internal/domain"
)

// SessionsCmd groups session management subcommands
type SessionsCmd struct {
	List SessionsListCmd `cmd:"list" help:"List active tmux sessions" default:"1"`
	Kill SessionsKillCmd `cmd:"kill" help:"Kill a tmux session and everything running in it"`
}

// SessionsListCmd lists active sessions
type SessionsListCmd struct{}

// Run executes the list command
func (s *SessionsListCmd) Run(cli *CLI) error {
	container, err := NewContainer(cli.Settings())
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer container.Close()

	if err := container.Tmux.Available(); err != nil {
		return err
	}

	sessions, err := container.Tmux.ListSessions()
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	if len(sessions) == 0 {
		fmt.Println("No active sessions")
		return nil
	}

	for _, s := range sessions {
		fmt.Printf("%s\t%d window(s)\n", s.Name, s.Windows)
	}
	return nil
}

// SessionsKillCmd kills a session
type SessionsKillCmd struct {
	Name string `arg:"" help:"Name of the session to kill"`
}

// Run executes the kill command
func (s *SessionsKillCmd) Run(cli *CLI) error {
	container, err := NewContainer(cli.Settings())
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer container.Close()

	if err := container.Tmux.Available(); err != nil {
		return err
	}

	name := domain.SanitizeName(s.Name)
	if !container.Tmux.SessionExists(name) {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, name)
	}

	if err := container.Tmux.KillSession(name); err != nil {
		return err
	}

	fmt.Printf("Session %q killed\n", name)
	return nil
}
