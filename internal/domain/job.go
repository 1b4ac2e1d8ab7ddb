package domain

import (
	"path/filepath"
	"strings"
)

// Job is one launchable program: an executable path plus a derived display
// name. Jobs are immutable and ordered; their position in a job list is their
// execution order in sequential mode and their window index in concurrent mode.
type Job struct {
	Path        string
	DisplayName string
	Interpreter string
}

// NewJob builds a Job from an executable path. The display name is the path
// basename with its extension stripped, sanitized for tmux compatibility.
func NewJob(path string) Job {
	return Job{
		Path:        path,
		DisplayName: DisplayNameFor(path),
	}
}

// NewJobs builds an ordered job list from paths, preserving declaration order.
func NewJobs(paths []string) []Job {
	jobs := make([]Job, 0, len(paths))
	for _, p := range paths {
		jobs = append(jobs, NewJob(p))
	}
	return jobs
}

// DisplayNameFor derives the display name for an executable path:
// basename, extension stripped, sanitized.
func DisplayNameFor(path string) string {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return SanitizeName(name)
}
