// Package fs reads source files and locates configuration on disk.
package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/elbaro/devon"
)

// LocalConfigName is the configuration file looked up in the working directory.
const LocalConfigName = ".devon.toml"

// EnvConfig overrides the configuration file path.
const EnvConfig = "DEVON_CONFIG"

// DefaultConfigPath returns the user-wide configuration file for devon.
// Uses XDG_CONFIG_HOME if set, otherwise falls back to ~/.config/devon.
// Returns "" when the home directory is unknown.
func DefaultConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "devon", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "devon", "config.toml")
}

// ConfigPath picks the configuration file to load: $DEVON_CONFIG, then
// ./.devon.toml if it exists, then DefaultConfigPath.
func ConfigPath() string {
	if env := os.Getenv(EnvConfig); env != "" {
		return env
	}
	if _, err := os.Stat(LocalConfigName); err == nil {
		return LocalConfigName
	}
	return DefaultConfigPath()
}

// ReadSource reads a whole file and indexes its lines. The file is closed
// before ReadSource returns.
func ReadSource(path string) (*devon.Source, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", devon.ErrSourceUnreadable, err)
	}
	return devon.NewSource(path, content), nil
}
