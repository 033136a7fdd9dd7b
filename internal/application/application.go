package application

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// AppName is the application name used for directories and identification
	AppName = "countries"

	// ConfigFileName is the name of the configuration file inside the config directory
	ConfigFileName = "config.ini"

	// ConfigDirEnv overrides the config directory when set
	ConfigDirEnv = "COUNTRIES_CONFIG_DIR"
)

// Version is overridden at build time with -ldflags "-X ...application.Version=..."
var Version = "dev"

// userConfigDir is os.UserConfigDir, replaceable in tests.
var (
	osUserConfigDir = os.UserConfigDir
	userConfigDir   = osUserConfigDir
)

// ConfigDir returns the directory holding the configuration file:
// $COUNTRIES_CONFIG_DIR when set, otherwise "countries" under the user
// config directory (~/.config on Linux, %AppData% on Windows).
//
// The directory is not created; nothing is written there unless the user asks.
func ConfigDir() (string, error) {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return filepath.Clean(dir), nil
	}

	base, err := userConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}

	return filepath.Join(base, AppName), nil
}

// ConfigFilePath returns the default configuration file location.
func ConfigFilePath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, ConfigFileName), nil
}
