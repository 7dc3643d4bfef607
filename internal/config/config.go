// Package config persists window preferences across runs.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/DuannCoetzer/dungeon-desktop/internal/appdata"
)

// fileName is the preferences file under the application data directory.
const fileName = "window.json"

// Config holds the persisted window preferences.
type Config struct {
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`
}

// DefaultConfig returns the default window preferences.
func DefaultConfig() Config {
	return Config{Width: 1280, Height: 800}
}

// LoadFrom reads the preferences from the given path, or returns
// defaults if the file is missing or invalid.
func LoadFrom(path string) Config {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	var loaded Config
	if err := json.Unmarshal(data, &loaded); err != nil {
		return cfg
	}

	// Keep defaults for anything missing or nonsensical.
	if loaded.Width > 0 {
		cfg.Width = loaded.Width
	}
	if loaded.Height > 0 {
		cfg.Height = loaded.Height
	}

	return cfg
}

// SaveTo writes the preferences to the given path.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Load reads the preferences from the application data directory, or
// returns defaults if they cannot be resolved.
func Load() Config {
	path, err := appdata.File(fileName)
	if err != nil {
		return DefaultConfig()
	}
	return LoadFrom(path)
}

// Save writes the preferences to the application data directory.
func Save(cfg Config) error {
	path, err := appdata.File(fileName)
	if err != nil {
		return err
	}
	return SaveTo(path, cfg)
}
