package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Dicklesworthstone/ribbon/pkg/config"
	"github.com/Dicklesworthstone/ribbon/pkg/loader"
)

// ConfigWatcher watches one config file and hands every valid new version to
// OnChange. Invalid versions go to OnError and the old config stays in use.
type ConfigWatcher struct {
	path     string
	wait     time.Duration
	OnChange func(config.Config)
	OnError  func(error)
}

// NewConfigWatcher creates a watcher for path. A zero wait uses the default
// debounce duration.
func NewConfigWatcher(path string, wait time.Duration) *ConfigWatcher {
	return &ConfigWatcher{path: path, wait: wait}
}

// Path returns the watched file
func (w *ConfigWatcher) Path() string {
	return w.path
}

// Run blocks until ctx is cancelled. The parent directory is watched rather
// than the file so that editors which replace the file by rename are seen.
// A missing directory means there is nothing to watch and Run just waits.
func (w *ConfigWatcher) Run(ctx context.Context) error {
	dir := filepath.Dir(w.path)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		<-ctx.Done()
		return nil
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	reload := NewDebouncer(w.wait, w.reload)
	defer reload.Stop()

	target := filepath.Clean(w.path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				reload.Poke()
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.fail(fmt.Errorf("file watcher: %w", err))
		}
	}
}

func (w *ConfigWatcher) reload() {
	cfg, err := loader.LoadConfigFromFile(w.path)
	if err != nil {
		w.fail(err)
		return
	}
	if w.OnChange != nil {
		w.OnChange(cfg)
	}
}

func (w *ConfigWatcher) fail(err error) {
	if w.OnError != nil {
		w.OnError(err)
	}
}
