package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultSessionName is the session drover launches into unless overridden.
const DefaultSessionName = "drover"

// DefaultInterpreter runs .py jobs unless a job overrides it.
const DefaultInterpreter = "python3"

// Settings represents the structure of $DROVER_HOME/settings.json
type Settings struct {
	Debug        *bool  `json:"debug,omitempty"`
	Interpreter  string `json:"interpreter,omitempty"`
	ManifestPath string `json:"manifest_path,omitempty"`
	MaxLogFiles  *int   `json:"max_log_files,omitempty"`
	Mode         string `json:"mode,omitempty"`
	SessionName  string `json:"session_name,omitempty"`
	Shell        string `json:"shell,omitempty"`
}

// LoadSettings loads settings from $DROVER_HOME/settings.json (or
// ~/.drover/settings.json if not set).
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	// Expand paths that may start with ~
	if settings.ManifestPath != "" {
		settings.ManifestPath = ExpandPath(settings.ManifestPath)
	}

	return &settings, nil
}

// SaveSettings saves settings to $DROVER_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(GetDroverHome(), 0755); err != nil {
		return fmt.Errorf("failed to create drover home: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
