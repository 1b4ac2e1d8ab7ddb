package cmd

import (
	"fmt"

	"drover/internal/config"
)

// JobsCmd lists the jobs declared in the manifest, in execution order
type JobsCmd struct {
	Manifest string `help:"Path to the job manifest (default: $DROVER_HOME/jobs.json)"`
}

// Run executes the jobs command
func (j *JobsCmd) Run(cli *CLI) error {
	settings := cli.Settings()

	path := j.Manifest
	if path == "" {
		path = settings.ManifestPath
	}
	if path == "" {
		path = config.GetManifestPath()
	}

	manifest, err := config.LoadManifest(path)
	if err != nil {
		return err
	}

	jobs, err := manifest.ToJobs()
	if err != nil {
		return err
	}

	if len(jobs) == 0 {
		fmt.Printf("No jobs in %s\n", path)
		return nil
	}

	for i, job := range jobs {
		fmt.Printf("%d\t%s\t%s\n", i, job.DisplayName, job.Path)
	}
	return nil
}
