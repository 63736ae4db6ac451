// Package config handles configuration loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"
)

const (
	// GlobalDirName is the name of the global platewatch directory.
	GlobalDirName = ".platewatch"

	// LogsDirName is the name of the logs directory.
	LogsDirName = "logs"
)

// File names
const (
	PlatesFileName   = "plates.yaml"
	SettingsFileName = "settings.yaml"
	InstanceFileName = "tray.yaml"
	LogFileName      = "platewatch.log"
)

// GlobalDir returns the path to the global platewatch directory (~/.platewatch/).
func GlobalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

func globalFile(name string) (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// GlobalPlatesFile returns the path to the plates.yaml file.
func GlobalPlatesFile() (string, error) {
	return globalFile(PlatesFileName)
}

// GlobalSettingsFile returns the path to the settings.yaml file.
func GlobalSettingsFile() (string, error) {
	return globalFile(SettingsFileName)
}

// GlobalInstanceFile returns the path to the tray.yaml file.
func GlobalInstanceFile() (string, error) {
	return globalFile(InstanceFileName)
}

// GlobalLogsDir returns the path to the logs directory.
func GlobalLogsDir() (string, error) {
	return globalFile(LogsDirName)
}

// EnsureGlobalDir creates the global platewatch directory if it doesn't exist.
func EnsureGlobalDir() error {
	dir, err := GlobalDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o755)
}

// EnsureGlobalLogsDir creates the global logs directory if it doesn't exist.
func EnsureGlobalLogsDir() error {
	dir, err := GlobalLogsDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o755)
}
