// Package config loads and scaffolds the YAML configuration for obsidian-logging.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "obsidian-logging"

// Dir returns the configuration directory.
//
// Resolution:
//   - $OBSIDIAN_LOGGING_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/obsidian-logging if set
//   - %AppData%/obsidian-logging on Windows
//   - ~/.config/obsidian-logging on macOS and Linux
func Dir() string {
	if dir := os.Getenv("OBSIDIAN_LOGGING_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// Path returns the location of the YAML configuration file.
func Path() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, appName+".yaml")
}
