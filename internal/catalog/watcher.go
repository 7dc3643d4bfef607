package catalog

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Event reports an on-disk change to one of the catalogue files.
type Event struct {
	Name string `json:"name"` // catalogue file name, AssetsFile or TilesFile
	Op   string `json:"op"`   // "write" or "remove"
}

// Watcher watches the data directory for changes to the catalogue
// files, so the front end can refresh when something else touches them.
type Watcher struct {
	Events chan Event
	Errors chan error
	done   chan struct{}
	fw     *fsnotify.Watcher
}

// NewWatcher creates and starts a watcher over the given data
// directory, creating the directory if missing.
func NewWatcher(dir string) (*Watcher, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		Events: make(chan Event, 16),
		Errors: make(chan error, 4),
		done:   make(chan struct{}),
		fw:     fw,
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.Events)
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			// Only the two catalogue files matter; the data directory
			// also holds window preferences and the like.
			name := filepath.Base(event.Name)
			if name != AssetsFile && name != TilesFile {
				continue
			}
			var op string
			switch {
			case event.Op&(fsnotify.Write|fsnotify.Create) != 0:
				op = "write"
			case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				op = "remove"
			default:
				continue
			}
			select {
			case w.Events <- Event{Name: name, Op: op}:
			default:
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() {
	close(w.done)
	w.fw.Close()
}
