package config

import (
	"encoding/json"
	"fmt"
	"os"

	"drover/internal/domain"
)

// ManifestEntry supports "path/to/job.py" or {"path": ..., "name": ...,
// "interpreter": ...} in JSON
type ManifestEntry struct {
	Path        string `json:"path"`
	Name        string `json:"name,omitempty"`
	Interpreter string `json:"interpreter,omitempty"`
}

// UnmarshalJSON implements custom unmarshaling for ManifestEntry
func (e *ManifestEntry) UnmarshalJSON(data []byte) error {
	// Try bare string format first
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		e.Path = str
		return nil
	}

	// Fall back to object format
	type entryAlias ManifestEntry
	var obj entryAlias
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*e = ManifestEntry(obj)
	return nil
}

// MarshalJSON implements custom marshaling for ManifestEntry
func (e ManifestEntry) MarshalJSON() ([]byte, error) {
	if e.Name == "" && e.Interpreter == "" {
		return json.Marshal(e.Path)
	}
	type entryAlias ManifestEntry
	return json.Marshal(entryAlias(e))
}

// Manifest is the externally supplied, ordered job list. Entry order is
// execution order in sequential mode and window order in concurrent mode.
type Manifest struct {
	Jobs []ManifestEntry `json:"jobs"`
}

// LoadManifest reads a job manifest from path. The file may be either a bare
// JSON array of entries or an object with a "jobs" field.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	// Try bare array format first
	var entries []ManifestEntry
	if err := json.Unmarshal(data, &entries); err == nil {
		return &Manifest{Jobs: entries}, nil
	}

	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}
	return &manifest, nil
}

// ToJobs converts manifest entries to domain jobs, preserving order. Entries
// without a path are rejected; explicit names are sanitized for tmux.
func (m *Manifest) ToJobs() ([]domain.Job, error) {
	jobs := make([]domain.Job, 0, len(m.Jobs))
	for i, e := range m.Jobs {
		if e.Path == "" {
			return nil, fmt.Errorf("manifest entry %d has no path", i)
		}
		job := domain.NewJob(ExpandPath(e.Path))
		if e.Name != "" {
			job.DisplayName = domain.SanitizeName(e.Name)
		}
		job.Interpreter = e.Interpreter
		jobs = append(jobs, job)
	}
	return jobs, nil
}
