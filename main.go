package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"drover/internal/cmd"
	"drover/internal/config"
	"drover/internal/version"
)

func main() {
	// Load settings before parsing so AfterApply can apply precedence
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var cli cmd.CLI
	cli.SetSettings(settings)
	ctx := kong.Parse(&cli,
		kong.Name("drover"),
		kong.Description(version.Tagline),
		kong.UsageOnError(),
		kong.Vars{"version": version.Info()},
	)

	if err := ctx.Run(&cli); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
