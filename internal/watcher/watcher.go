package watcher

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/blackwell-systems/triage/internal/triage"
)

// Event is one observed change.
type Event struct {
	Op   string // e.g. "CREATE", "WRITE", "REMOVE|RENAME"
	Path string
}

// String renders the event as "<OP> <path>".
func (e Event) String() string {
	return e.Op + " " + e.Path
}

// Watcher delivers change events for a single directory.
type Watcher struct {
	dir    string
	fsw    *fsnotify.Watcher
	logger zerolog.Logger
}

// New starts watching dir. dir must be an existing directory.
func New(dir string, logger zerolog.Logger) (*Watcher, error) {
	abs, err := triage.RequireDir(dir)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsw.Add(abs); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", abs, err)
	}

	return &Watcher{dir: abs, fsw: fsw, logger: logger}, nil
}

// Dir returns the absolute path being watched.
func (w *Watcher) Dir() string {
	return w.dir
}

// Run calls handle for each event until ctx is done or the watcher is closed.
// handle is called from the Run goroutine only.
func (w *Watcher) Run(ctx context.Context, handle func(Event)) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if ev.Op == fsnotify.Chmod {
				continue
			}
			w.logger.Debug().Str("op", ev.Op.String()).Str("path", ev.Name).Msg("watch event")
			handle(Event{Op: ev.Op.String(), Path: filepath.Clean(ev.Name)})

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Str("dir", w.dir).Msg("watcher error")
		}
	}
}

// Close stops the underlying watch.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
