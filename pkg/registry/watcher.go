package registry

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce batches bursts of file events into a single rescan.
const DefaultDebounce = 250 * time.Millisecond

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) WatchOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithExtensions limits which file changes trigger a rescan. Defaults to ".md".
func WithExtensions(exts ...string) WatchOption {
	return func(w *Watcher) {
		if len(exts) == 0 {
			return
		}
		w.extensions = make(map[string]struct{}, len(exts))
		for _, ext := range exts {
			ext = strings.ToLower(strings.TrimSpace(ext))
			if ext == "" {
				continue
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			w.extensions[ext] = struct{}{}
		}
	}
}

// Watcher rescans a Registry whenever candidate files under its roots change.
type Watcher struct {
	registry   *Registry
	watcher    *fsnotify.Watcher
	debounce   time.Duration
	extensions map[string]struct{}

	stopOnce sync.Once
	stopCh   chan struct{}
	done     chan struct{}
}

// Watch starts watching roots (recursively) and returns the running Watcher.
// Callers must Stop it.
func (r *Registry) Watch(roots []string, options ...WatchOption) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("registry: create watcher: %w", err)
	}

	w := &Watcher{
		registry:   r,
		watcher:    fsw,
		debounce:   DefaultDebounce,
		extensions: map[string]struct{}{".md": {}},
		stopCh:     make(chan struct{}),
		done:       make(chan struct{}),
	}
	for _, opt := range options {
		if opt != nil {
			opt(w)
		}
	}

	for _, root := range roots {
		if err := w.addTree(root); err != nil {
			fsw.Close()
			return nil, err
		}
	}

	go w.loop()

	r.logger.Info().Strs("roots", roots).Dur("debounce", w.debounce).Msg("watching schema files for changes")
	return w, nil
}

// Stop halts the watcher and waits for its goroutine to exit.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		w.watcher.Close()
	})
	<-w.done
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("registry: watch %s: %w", path, err)
		}
		if !entry.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(entry.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("registry: watch %s: %w", path, err)
		}
		return nil
	})
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	_, ok := w.extensions[strings.ToLower(filepath.Ext(event.Name))]
	return ok
}

func (w *Watcher) loop() {
	defer close(w.done)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addTree(event.Name); err != nil {
						w.registry.logger.Error().Err(err).Msg("watch new directory failed")
					}
					continue
				}
			}
			if !w.relevant(event) {
				continue
			}
			w.registry.logger.Debug().
				Str("event", event.Op.String()).
				Str("file", event.Name).
				Msg("schema candidate changed")
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-fire:
			if err := w.registry.Rescan(context.Background()); err != nil {
				w.registry.logger.Error().Err(err).Msg("rescan after file change failed")
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.registry.logger.Error().Err(err).Msg("file watcher error")

		case <-w.stopCh:
			return
		}
	}
}
