package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"drover/internal/config"
	"drover/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Launch   LaunchCmd   `cmd:"" help:"Launch jobs into a tmux session (default)" default:"1"`
	Attach   AttachCmd   `cmd:"attach" help:"Attach to a session (Ctrl+Q detaches)"`
	Jobs     JobsCmd     `cmd:"jobs" help:"List the jobs in the manifest"`
	Sessions SessionsCmd `cmd:"sessions" help:"Manage tmux sessions (list, kill)"`
	History  HistoryCmd  `cmd:"history" help:"Show recent launches"`
	Watch    WatchCmd    `cmd:"watch" help:"Live view of sessions and windows"`
	Serve    ServeCmd    `cmd:"serve" help:"Serve the watch view over SSH"`

	// Internal fields (not flags)
	settings *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// Settings returns the loaded settings (never nil)
func (c *CLI) Settings() *config.Settings {
	if c.settings == nil {
		return &config.Settings{}
	}
	return c.settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults.
	// Only apply a setting if the flag is at its default and no env var is set.
	if c.settings != nil {
		if c.MaxLogFiles == 1000 {
			if _, hasEnv := os.LookupEnv("DROVER_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("DROVER_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Set environment variables AFTER initialization so the shells running
	// inside launched tmux windows inherit debug settings and append to the
	// same log file.
	if c.Debug || c.DebugFile != "" {
		os.Setenv("DROVER_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("DROVER_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != 1000 {
		os.Setenv("DROVER_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	return nil
}
