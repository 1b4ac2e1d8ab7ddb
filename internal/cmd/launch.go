package cmd

import (
	"context"
	"fmt"

	"drover/internal/config"
	"drover/internal/domain"
	"drover/internal/logging"
	"drover/internal/ui"
)

// LaunchCmd launches jobs into a detached tmux session
type LaunchCmd struct {
	Interactive bool     `help:"Pick jobs, mode and session name interactively" short:"i"`
	Manifest    string   `help:"Path to the job manifest (default: $DROVER_HOME/jobs.json)"`
	Mode        string   `help:"Run mode: sequential or concurrent" short:"m" default:""`
	Session     string   `help:"Session name (sequential mode reclaims it, concurrent mode fails if it exists)" short:"s" default:""`
	Paths       []string `arg:"" optional:"" help:"Job paths to launch (default: all manifest jobs)"`
}

// Run executes the launch command
func (l *LaunchCmd) Run(cli *CLI) error {
	settings := cli.Settings()

	container, err := NewContainer(settings)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer container.Close()

	mode, err := l.resolveMode(settings)
	if err != nil {
		return err
	}
	sessionName := l.resolveSessionName(settings)

	var jobs []domain.Job
	if len(l.Paths) > 0 {
		jobs = domain.NewJobs(l.Paths)
	} else {
		jobs, err = l.manifestJobs(settings)
		if err != nil {
			return err
		}
	}

	if l.Interactive {
		selection, err := ui.RunLaunchForm(jobs, mode, sessionName)
		if err != nil {
			return fmt.Errorf("launch cancelled: %w", err)
		}
		jobs = selection.Jobs
		mode = selection.Mode
		sessionName = selection.SessionName
	}

	logging.Logger.Info("Launching jobs",
		"count", len(jobs),
		"mode", string(mode),
		"session", sessionName)

	result, err := container.Launcher.Launch(context.Background(), jobs, mode, sessionName)
	if err != nil {
		return err
	}

	logging.Logger.Info("Launch injected", "launch_id", result.Launch.ID)
	return nil
}

func (l *LaunchCmd) resolveMode(settings *config.Settings) (domain.Mode, error) {
	mode := l.Mode
	if mode == "" {
		mode = settings.Mode
	}
	if mode == "" {
		mode = string(domain.ModeSequential)
	}
	return domain.ParseMode(mode)
}

func (l *LaunchCmd) resolveSessionName(settings *config.Settings) string {
	if l.Session != "" {
		return domain.SanitizeName(l.Session)
	}
	if settings.SessionName != "" {
		return domain.SanitizeName(settings.SessionName)
	}
	return config.DefaultSessionName
}

func (l *LaunchCmd) manifestJobs(settings *config.Settings) ([]domain.Job, error) {
	path := l.Manifest
	if path == "" {
		path = settings.ManifestPath
	}
	if path == "" {
		path = config.GetManifestPath()
	}

	manifest, err := config.LoadManifest(path)
	if err != nil {
		return nil, fmt.Errorf("no job paths given and manifest could not be loaded: %w", err)
	}
	return manifest.ToJobs()
}
