package theme

import (
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the stylesheet when the user override file changes.
// Reloads are marshalled onto the GTK main loop.
type Watcher struct {
	watcher *fsnotify.Watcher
	loader  *Loader
	path    string
	logger  *slog.Logger
	done    chan struct{}
	mu      sync.Mutex
	running bool
}

// NewWatcher creates a watcher for the loader's user override stylesheet.
func NewWatcher(loader *Loader, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		watcher: fsw,
		loader:  loader,
		path:    loader.UserPath(),
		logger:  logger,
		done:    make(chan struct{}),
	}, nil
}

// Start begins watching for changes.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	// Watch the directory containing the file (more reliable for writes).
	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return err
	}

	go w.watch()
	w.logger.Debug("stylesheet watcher started", "path", w.path)
	return nil
}

// watch is the main watch loop.
func (w *Watcher) watch() {
	filename := filepath.Base(w.path)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filename {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.logger.Debug("user stylesheet changed", "file", w.path)
				glib.IdleAdd(func() {
					w.loader.Reload()
				})
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("stylesheet watcher error", "error", err)

		case <-w.done:
			return
		}
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return nil
	}

	w.running = false
	close(w.done)
	return w.watcher.Close()
}
