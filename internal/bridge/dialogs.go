package bridge

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// defaultMapFilename pre-fills the save dialog.
const defaultMapFilename = "dungeon_map.json"

// Dialogs abstracts the native file pickers so commands can be tested
// without a display. An empty path with a nil error means the user
// dismissed the dialog.
type Dialogs interface {
	OpenFile(ctx context.Context) (string, error)
	SaveFile(ctx context.Context) (string, error)
}

// nativeDialogs presents the Wails runtime file pickers.
type nativeDialogs struct{}

func mapFilters() []runtime.FileFilter {
	return []runtime.FileFilter{
		{DisplayName: "JSON Files", Pattern: "*.json"},
		{DisplayName: "All Files", Pattern: "*"},
	}
}

func (nativeDialogs) OpenFile(ctx context.Context) (string, error) {
	return runtime.OpenFileDialog(ctx, runtime.OpenDialogOptions{
		Filters: mapFilters(),
	})
}

func (nativeDialogs) SaveFile(ctx context.Context) (string, error) {
	return runtime.SaveFileDialog(ctx, runtime.SaveDialogOptions{
		DefaultFilename: defaultMapFilename,
		Filters:         mapFilters(),
	})
}
