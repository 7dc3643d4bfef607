// Package catalog persists the imported-assets and imported-tiles
// stores as opaque JSON documents under the application data directory.
// The payloads are owned by the front end; this layer never parses them.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
)

// Catalogue file names under the data directory.
const (
	AssetsFile = "imported_assets.json"
	TilesFile  = "tile-store.json"
)

// Empty-state defaults returned while a catalogue file does not exist.
const (
	EmptyAssets = "[]"
	EmptyTiles  = `{"tiles":[],"version":2}`
)

// DirFunc resolves the directory a Store keeps its file in. It is
// called on every operation so a late failure (e.g. no home directory)
// surfaces on the command that hit it.
type DirFunc func() (string, error)

// Store is one opaque JSON document at a fixed file name under the
// application data directory.
//
// Access is not serialized: the front end issues at most one write per
// catalogue at a time, and concurrent writers are last-writer-wins.
type Store struct {
	dir   DirFunc
	name  string
	empty string
}

// NewStore creates a store for the given file name and empty-state default.
func NewStore(dir DirFunc, name, empty string) *Store {
	return &Store{dir: dir, name: name, empty: empty}
}

// NewAssetsStore creates the imported-assets catalogue store.
func NewAssetsStore(dir DirFunc) *Store {
	return NewStore(dir, AssetsFile, EmptyAssets)
}

// NewTilesStore creates the imported-tiles catalogue store.
func NewTilesStore(dir DirFunc) *Store {
	return NewStore(dir, TilesFile, EmptyTiles)
}

// Name returns the catalogue file name.
func (s *Store) Name() string { return s.name }

// Path resolves the absolute path of the catalogue file.
func (s *Store) Path() (string, error) {
	dir, err := s.dir()
	if err != nil {
		return "", fmt.Errorf("Failed to get app data directory: %v", err)
	}
	return filepath.Join(dir, s.name), nil
}

// Read returns the catalogue contents. A missing or unreadable file
// yields the empty-state default so a first run is never an error.
func (s *Store) Read() (string, error) {
	path, err := s.ensure()
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s.empty, nil
	}
	return string(data), nil
}

// Write replaces the catalogue contents wholesale, creating the data
// directory on first use.
func (s *Store) Write(data string) error {
	path, err := s.ensure()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("Failed to write file: %v", err)
	}
	return nil
}

// Clear removes the catalogue file. Clearing a missing file is a no-op.
func (s *Store) Clear() error {
	path, err := s.Path()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("Failed to delete file: %v", err)
	}
	return nil
}

// ensure resolves the catalogue path and creates the data directory.
func (s *Store) ensure() (string, error) {
	dir, err := s.dir()
	if err != nil {
		return "", fmt.Errorf("Failed to get app data directory: %v", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("Failed to create app data directory: %v", err)
	}
	return filepath.Join(dir, s.name), nil
}
