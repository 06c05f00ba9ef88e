package config

import (
	"os"
	"path/filepath"
)

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultConfigDir is where slowtime.toml is looked up after the working
// directory.
func DefaultConfigDir() string {
	return filepath.Join(XDGConfigHome(), "slowtime")
}
