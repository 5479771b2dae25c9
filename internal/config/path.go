// Package config provides configuration and path utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands ~ and environment variables in a file path.
// It handles both ~ for home directory and $VAR style environment variables.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	// First expand tilde if present
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	// Then expand environment variables
	return os.ExpandEnv(path)
}

// DataDir returns the directory holding the session state file and the
// category-memory database, honoring XDG_DATA_HOME when set.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "finsift")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "finsift-data"
	}
	return filepath.Join(home, ".local", "share", "finsift")
}

// DefaultStatePath is the default location of the working session snapshot.
func DefaultStatePath() string {
	return filepath.Join(DataDir(), "session.json")
}

// DefaultDatabasePath is the default location of the category-memory store.
func DefaultDatabasePath() string {
	return filepath.Join(DataDir(), "finsift.db")
}
