// Package watch reloads workspace catalog overrides when their files change.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/flowlabs/flowmap/pkg/storage"
)

// CatalogWatcher watches the workspace's .flowmap directory and fires a
// callback when a catalog override file changes. Rapid event bursts (editor
// save sequences) collapse into a single callback per debounce window.
type CatalogWatcher struct {
	watcher  *fsnotify.Watcher
	dir      string
	debounce time.Duration
	onChange func(path string)
}

// NewCatalogWatcher creates a watcher for the workspace root's .flowmap
// directory. The directory must exist.
func NewCatalogWatcher(root string, debounce time.Duration, onChange func(path string)) (*CatalogWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if debounce == 0 {
		debounce = 500 * time.Millisecond
	}

	dir := filepath.Join(root, storage.FlowmapDir)
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	return &CatalogWatcher{
		watcher:  w,
		dir:      dir,
		debounce: debounce,
		onChange: onChange,
	}, nil
}

// Run starts the event loop. It blocks until the context is cancelled.
func (w *CatalogWatcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := ""

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
			if w.onChange != nil && pending != "" {
				w.onChange(pending)
			}
			pending = ""
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !isCatalogFile(event.Name) {
				continue
			}
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) &&
				!event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
				continue
			}
			pending = event.Name
			timer.Reset(w.debounce)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}

func isCatalogFile(path string) bool {
	switch filepath.Base(path) {
	case storage.TemplatesFile, storage.ResourcesFile:
		return true
	default:
		return false
	}
}
