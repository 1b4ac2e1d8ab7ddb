package config

import (
	"os"
	"path/filepath"
)

// GetDroverHome returns DROVER_HOME or ~/.drover default
func GetDroverHome() string {
	droverHome := os.Getenv("DROVER_HOME")
	if droverHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".drover"
		}
		return filepath.Join(homeDir, ".drover")
	}
	return ExpandPath(droverHome)
}

// GetDBPath returns $DROVER_HOME/history.db
func GetDBPath() string {
	return filepath.Join(GetDroverHome(), "history.db")
}

// GetSettingsPath returns $DROVER_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetDroverHome(), "settings.json")
}

// GetManifestPath returns $DROVER_HOME/jobs.json
func GetManifestPath() string {
	return filepath.Join(GetDroverHome(), "jobs.json")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
