package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func fixedDir(dir string) DirFunc {
	return func() (string, error) { return dir, nil }
}

func failingDir(err error) DirFunc {
	return func() (string, error) { return "", err }
}

func TestReadMissingAssetsReturnsDefault(t *testing.T) {
	s := NewAssetsStore(fixedDir(t.TempDir()))

	got, err := s.Read()
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if got != "[]" {
		t.Errorf("Read() = %q, want []", got)
	}
}

func TestReadMissingTilesReturnsDefault(t *testing.T) {
	s := NewTilesStore(fixedDir(t.TempDir()))

	got, err := s.Read()
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if got != `{"tiles":[],"version":2}` {
		t.Errorf("Read() = %q, want tiles default", got)
	}
}

func TestWriteThenReadRoundTrip(t *testing.T) {
	s := NewAssetsStore(fixedDir(t.TempDir()))

	data := `[{"id":1}]`
	if err := s.Write(data); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	got, err := s.Read()
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if got != data {
		t.Errorf("Read() = %q, want %q", got, data)
	}
}

func TestWriteCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s := NewTilesStore(fixedDir(dir))

	if err := s.Write(`{"tiles":[{"k":"a"}],"version":2}`); err != nil {
		t.Fatalf("Write() error with missing data dir: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("data dir not created: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, TilesFile)); err != nil {
		t.Errorf("catalogue file not created: %v", err)
	}
}

func TestReadCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "fresh")
	s := NewAssetsStore(fixedDir(dir))

	if _, err := s.Read(); err != nil {
		t.Fatalf("Read() error with missing data dir: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("data dir not created on read: %v", err)
	}
}

func TestClearMissingFileSucceeds(t *testing.T) {
	s := NewAssetsStore(fixedDir(t.TempDir()))

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear() of missing file should be a no-op, got: %v", err)
	}
}

func TestClearThenReadReturnsDefault(t *testing.T) {
	s := NewAssetsStore(fixedDir(t.TempDir()))

	if err := s.Write(`[{"id":1}]`); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	got, err := s.Read()
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if got != "[]" {
		t.Errorf("Read() after Clear() = %q, want []", got)
	}
	// Clearing again must still succeed.
	if err := s.Clear(); err != nil {
		t.Fatalf("second Clear() error: %v", err)
	}
}

func TestReadUnreadableFileReturnsDefault(t *testing.T) {
	dir := t.TempDir()
	// A directory at the catalogue path makes the read fail without the
	// file being missing.
	if err := os.Mkdir(filepath.Join(dir, AssetsFile), 0o755); err != nil {
		t.Fatal(err)
	}

	s := NewAssetsStore(fixedDir(dir))
	got, err := s.Read()
	if err != nil {
		t.Fatalf("Read() of unreadable file should fall back, got: %v", err)
	}
	if got != "[]" {
		t.Errorf("Read() = %q, want []", got)
	}
}

func TestDirResolverFailureSurfaces(t *testing.T) {
	s := NewAssetsStore(failingDir(errors.New("no home directory")))

	if _, err := s.Read(); err == nil || !strings.HasPrefix(err.Error(), "Failed to get app data directory:") {
		t.Errorf("Read() error = %v, want app data directory failure", err)
	}
	if err := s.Write("[]"); err == nil || !strings.HasPrefix(err.Error(), "Failed to get app data directory:") {
		t.Errorf("Write() error = %v, want app data directory failure", err)
	}
	if err := s.Clear(); err == nil || !strings.HasPrefix(err.Error(), "Failed to get app data directory:") {
		t.Errorf("Clear() error = %v, want app data directory failure", err)
	}
}

func TestWriteFailureSurfaces(t *testing.T) {
	dir := t.TempDir()
	// Occupy the catalogue path with a directory so the write fails.
	if err := os.Mkdir(filepath.Join(dir, TilesFile), 0o755); err != nil {
		t.Fatal(err)
	}

	s := NewTilesStore(fixedDir(dir))
	err := s.Write(`{"tiles":[],"version":2}`)
	if err == nil || !strings.HasPrefix(err.Error(), "Failed to write file:") {
		t.Errorf("Write() error = %v, want write failure", err)
	}
}

func TestClearFailureSurfaces(t *testing.T) {
	dir := t.TempDir()
	// A non-empty directory at the catalogue path cannot be removed.
	nested := filepath.Join(dir, AssetsFile, "child")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(nested, "f"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewAssetsStore(fixedDir(dir))
	err := s.Clear()
	if err == nil || !strings.HasPrefix(err.Error(), "Failed to delete file:") {
		t.Errorf("Clear() error = %v, want delete failure", err)
	}
}

func TestStoresKeepSeparateFiles(t *testing.T) {
	dir := t.TempDir()
	assets := NewAssetsStore(fixedDir(dir))
	tiles := NewTilesStore(fixedDir(dir))

	if err := assets.Write(`[{"id":1}]`); err != nil {
		t.Fatalf("assets Write() error: %v", err)
	}
	if err := tiles.Write(`{"tiles":[{"k":"a"}],"version":2}`); err != nil {
		t.Fatalf("tiles Write() error: %v", err)
	}

	gotAssets, _ := assets.Read()
	gotTiles, _ := tiles.Read()
	if gotAssets != `[{"id":1}]` {
		t.Errorf("assets Read() = %q", gotAssets)
	}
	if gotTiles != `{"tiles":[{"k":"a"}],"version":2}` {
		t.Errorf("tiles Read() = %q", gotTiles)
	}
}
