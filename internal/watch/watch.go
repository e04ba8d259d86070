// Package watch re-renders charts when their data or config files change.
package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reports debounced changes to a set of files. Parent directories
// are watched so editors that replace files on save still trigger a change.
type Watcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	log      *zap.Logger

	mu    sync.Mutex
	files map[string]bool
	dirs  map[string]bool
}

func New(files []string, debounce time.Duration, log *zap.Logger) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher:  fw,
		debounce: debounce,
		log:      log,
		files:    make(map[string]bool, len(files)),
		dirs:     make(map[string]bool),
	}
	if err := w.Add(files...); err != nil {
		fw.Close()
		return nil, err
	}
	return w, nil
}

// Add starts watching files. Files already watched are ignored, so it is
// safe to call with the full list after every config reload.
func (w *Watcher) Add(files ...string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		if w.files[abs] {
			continue
		}
		dir := filepath.Dir(abs)
		if !w.dirs[dir] {
			if err := w.watcher.Add(dir); err != nil {
				return err
			}
			w.dirs[dir] = true
		}
		w.files[abs] = true
		w.log.Debug("watching", zap.String("path", abs))
	}
	return nil
}

// Run blocks until ctx is done, calling onChange once per burst of events.
// Callback errors are logged and do not stop the loop.
func (w *Watcher) Run(ctx context.Context, onChange func(ctx context.Context, path string) error) error {
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	var pending string
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.log.Debug("file changed", zap.String("path", event.Name), zap.String("op", event.Op.String()))
			pending = event.Name
			timer.Reset(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", zap.Error(err))

		case <-timer.C:
			if err := onChange(ctx, pending); err != nil {
				w.log.Error("re-render failed", zap.String("path", pending), zap.Error(err))
			}
		}
	}
}

func (w *Watcher) relevant(e fsnotify.Event) bool {
	if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) && !e.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(e.Name)
	if err != nil {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.files[abs]
}

func (w *Watcher) Close() error {
	return w.watcher.Close()
}
