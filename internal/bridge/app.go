// Package bridge exposes the host commands the web-view front end
// invokes: native file dialogs, raw file I/O, and the imported-asset
// and imported-tile catalogues.
package bridge

import (
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/DuannCoetzer/dungeon-desktop/internal/appdata"
	"github.com/DuannCoetzer/dungeon-desktop/internal/catalog"
	"github.com/DuannCoetzer/dungeon-desktop/internal/config"
)

// Version is set at build time via ldflags.
var Version = "dev"

// App is the Wails binding target; every exported method is a command
// callable from the front end.
type App struct {
	ctx     context.Context
	dialogs Dialogs
	assets  *catalog.Store
	tiles   *catalog.Store
	watcher *catalog.Watcher
}

// New wires an App against the per-user data directory and the native
// dialog subsystem.
func New() *App {
	return &App{
		dialogs: nativeDialogs{},
		assets:  catalog.NewAssetsStore(appdata.Dir),
		tiles:   catalog.NewTilesStore(appdata.Dir),
	}
}

// Startup captures the runtime context and starts forwarding catalogue
// changes to the front end. Called by Wails.
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx

	// The watcher is best-effort; the command surface works without it.
	dir, err := appdata.Dir()
	if err != nil {
		runtime.LogWarningf(ctx, "catalogue watcher disabled: %v", err)
		return
	}
	w, err := catalog.NewWatcher(dir)
	if err != nil {
		runtime.LogWarningf(ctx, "catalogue watcher disabled: %v", err)
		return
	}
	a.watcher = w
	go a.forwardCatalogEvents()
}

// Shutdown stops the watcher and records the window size. Called by Wails.
func (a *App) Shutdown(ctx context.Context) {
	if a.watcher != nil {
		a.watcher.Close()
	}

	w, h := runtime.WindowGetSize(ctx)
	if w > 0 && h > 0 {
		if err := config.Save(config.Config{Width: w, Height: h}); err != nil {
			runtime.LogWarningf(ctx, "could not save window preferences: %v", err)
		}
	}
}

func (a *App) forwardCatalogEvents() {
	for ev := range a.watcher.Events {
		runtime.EventsEmit(a.ctx, "catalog:changed", ev)
	}
}

// GetVersion returns the application version.
func (a *App) GetVersion() string {
	return Version
}

// MapDocument is the outcome of a dialog-gated map load. Cancelled
// reports that the user dismissed the picker without choosing a file;
// Data is only meaningful when Cancelled is false.
type MapDocument struct {
	Cancelled bool   `json:"cancelled"`
	Data      string `json:"data"`
}

// OpenFileDialog shows the native open picker filtered to JSON files.
// Returns the chosen path, or "" if the user cancelled.
func (a *App) OpenFileDialog() (string, error) {
	return a.dialogs.OpenFile(a.ctx)
}

// SaveFileDialog shows the native save picker pre-filled with
// dungeon_map.json. Returns the chosen path, or "" if the user cancelled.
func (a *App) SaveFileDialog() (string, error) {
	return a.dialogs.SaveFile(a.ctx)
}

// ReadFile returns the UTF-8 contents of the file at path.
func (a *App) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("Failed to read file: %v", err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("Failed to read file: %s is not valid UTF-8", path)
	}
	return string(data), nil
}

// WriteFile writes contents to path, creating or truncating the file.
func (a *App) WriteFile(path, contents string) error {
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		return fmt.Errorf("Failed to write file: %v", err)
	}
	return nil
}

// LoadMap shows the open picker and reads the chosen map file.
// Cancelling the dialog is not an error.
func (a *App) LoadMap() (MapDocument, error) {
	path, err := a.dialogs.OpenFile(a.ctx)
	if err != nil {
		return MapDocument{}, err
	}
	if path == "" {
		return MapDocument{Cancelled: true}, nil
	}

	data, err := a.ReadFile(path)
	if err != nil {
		return MapDocument{}, err
	}
	return MapDocument{Data: data}, nil
}

// SaveMap shows the save picker and writes mapData to the chosen path.
// Returns false without error when the user cancelled.
func (a *App) SaveMap(mapData string) (bool, error) {
	path, err := a.dialogs.SaveFile(a.ctx)
	if err != nil {
		return false, err
	}
	if path == "" {
		return false, nil
	}

	if err := a.WriteFile(path, mapData); err != nil {
		return false, err
	}
	return true, nil
}

// ReadImportedAssets returns the imported-assets catalogue, or "[]" on
// first run.
func (a *App) ReadImportedAssets() (string, error) {
	return a.assets.Read()
}

// WriteImportedAssets replaces the imported-assets catalogue wholesale.
func (a *App) WriteImportedAssets(data string) error {
	return a.assets.Write(data)
}

// ClearImportedAssets removes the imported-assets catalogue file.
func (a *App) ClearImportedAssets() error {
	return a.assets.Clear()
}

// ReadImportedTiles returns the imported-tiles store, or its versioned
// empty state on first run.
func (a *App) ReadImportedTiles() (string, error) {
	return a.tiles.Read()
}

// WriteImportedTiles replaces the imported-tiles store wholesale.
func (a *App) WriteImportedTiles(data string) error {
	return a.tiles.Write(data)
}

// ClearImportedTiles removes the imported-tiles store file.
func (a *App) ClearImportedTiles() error {
	return a.tiles.Clear()
}
