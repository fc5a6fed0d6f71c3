// Package watcher re-applies an external .cfg file to the engine whenever
// it changes on disk.
package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/cfgsmith/cfgsmith/internal/logging"
)

// debounceDelay coalesces the event bursts editors emit on save.
const debounceDelay = 100 * time.Millisecond

// Watcher watches one config file and delivers its contents on change.
type Watcher struct {
	path     string
	onChange func(text string)

	mu      sync.Mutex
	fsw     *fsnotify.Watcher
	pending *time.Timer
	closed  bool
}

// New creates a watcher for path. onChange receives the full file contents
// after each settled change.
func New(path string, onChange func(text string)) (*Watcher, error) {
	if onChange == nil {
		return nil, fmt.Errorf("onChange callback is required")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	return &Watcher{path: abs, onChange: onChange}, nil
}

// Start begins watching. It watches the parent directory rather than the
// file itself so atomic-rename saves keep working. Blocks until ctx is
// cancelled or the watcher is closed.
func (w *Watcher) Start(ctx context.Context) error {
	log := logging.FromContext(ctx)

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	w.mu.Lock()
	w.fsw = fsw
	w.mu.Unlock()
	defer func() { _ = fsw.Close() }()

	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}

	log.Info().Str("file", w.path).Msg("watching config file")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			log.Debug().Str("op", event.Op.String()).Msg("config file changed")
			w.scheduleReload(log)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("watch error")
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.closed = true
	if w.pending != nil {
		w.pending.Stop()
	}
	if w.fsw != nil {
		return w.fsw.Close()
	}
	return nil
}

// scheduleReload (re)arms the debounce timer; the reload fires once the
// event burst settles.
func (w *Watcher) scheduleReload(log *zerolog.Logger) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if w.pending != nil {
		w.pending.Stop()
	}
	w.pending = time.AfterFunc(debounceDelay, func() {
		data, err := os.ReadFile(w.path)
		if err != nil {
			log.Warn().Err(err).Str("file", w.path).Msg("failed to read changed config")
			return
		}
		w.onChange(string(data))
	})
}
