package cmd

import (
	adapterstorage "drover/internal/adapters/storage"
	adaptertmux "drover/internal/adapters/tmux"
	"drover/internal/config"
	"drover/internal/logging"
	"drover/internal/ports"
	"drover/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	Launcher *services.Launcher
	Tmux     *adaptertmux.Client
	Watch    *services.WatchService

	// Internal - for cleanup only
	launchRepo ports.LaunchRepository
}

// NewContainer creates a new Container with all dependencies wired.
// A broken history database degrades to a launcher without history.
func NewContainer(settings *config.Settings) (*Container, error) {
	tmuxClient := adaptertmux.NewClient()

	var launchRepo ports.LaunchRepository
	repo, err := adapterstorage.NewSQLiteRepository(config.GetDBPath())
	if err != nil {
		logging.Logger.Warn("Launch history unavailable", "error", err)
	} else {
		launchRepo = repo
	}

	var recorder ports.LaunchRecorder
	if launchRepo != nil {
		recorder = launchRepo
	}

	launcher := services.NewLauncher(tmuxClient, recorder, services.LauncherOptions{
		Interpreter: settings.Interpreter,
		Shell:       settings.Shell,
	})

	return &Container{
		Launcher:   launcher,
		Tmux:       tmuxClient,
		Watch:      services.NewWatchService(tmuxClient),
		launchRepo: launchRepo,
	}, nil
}

// History returns the launch repository, or nil when history is unavailable
func (c *Container) History() ports.LaunchRepository {
	return c.launchRepo
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.launchRepo != nil {
		return c.launchRepo.Close()
	}
	return nil
}
