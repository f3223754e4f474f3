package config

import (
	"os"
	"path/filepath"
)

// GetHome returns PITMASTER_HOME or the ~/.pitmaster default
func GetHome() string {
	home := os.Getenv("PITMASTER_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".pitmaster"
		}
		return filepath.Join(homeDir, ".pitmaster")
	}
	return ExpandPath(home)
}

// GetDBPath returns $PITMASTER_HOME/journal.db
func GetDBPath() string {
	return filepath.Join(GetHome(), "journal.db")
}

// GetSettingsPath returns $PITMASTER_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
}

// GetLockPath returns $PITMASTER_HOME/pitmaster.lock
func GetLockPath() string {
	return filepath.Join(GetHome(), "pitmaster.lock")
}

// GetHostKeyPath returns $PITMASTER_HOME/ssh_host_ed25519
func GetHostKeyPath() string {
	return filepath.Join(GetHome(), "ssh_host_ed25519")
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
