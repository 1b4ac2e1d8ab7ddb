package cmd

import (
	"fmt"

	"drover/internal/server"
)

// ServeCmd serves the watch view over SSH
type ServeCmd struct {
	Host string `help:"Host to bind to" default:"localhost"`
	Port string `help:"Port to listen on" default:"23234"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	container, err := NewContainer(cli.Settings())
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer container.Close()

	if err := container.Tmux.Available(); err != nil {
		return err
	}

	srv, err := server.NewServer(s.Host, s.Port, container.Tmux)
	if err != nil {
		return err
	}
	return srv.Start()
}
