// Package appdata resolves the per-user application data directory
// where dungeon-desktop keeps its private stores.
package appdata

import (
	"os"
	"path/filepath"
	"runtime"
)

// appName is the directory name used under the platform data root.
const appName = "dungeon-desktop"

// EnvOverride forces the data directory when set, mainly for tests and
// portable installs.
const EnvOverride = "DUNGEON_DESKTOP_DATA_DIR"

// Dir returns the platform-appropriate per-user data directory. It does
// not create the directory; writers ensure it exists before writing.
func Dir() (string, error) {
	if custom := os.Getenv(EnvOverride); custom != "" {
		return custom, nil
	}

	switch runtime.GOOS {
	case "windows":
		if base := os.Getenv("APPDATA"); base != "" {
			return filepath.Join(base, appName), nil
		}
		if base := os.Getenv("LOCALAPPDATA"); base != "" {
			return filepath.Join(base, appName), nil
		}
	case "darwin":
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, "Library", "Application Support", appName), nil
		}
	default: // Linux and friends
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, ".local", "share", appName), nil
		}
	}

	// No platform root was available; fall back to a dot directory.
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "."+appName), nil
}

// File joins the data directory with the given file name.
func File(name string) (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}
