package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/yildizm/datagov/internal/logger"
)

const reloadDebounce = 150 * time.Millisecond

// Watcher reloads a catalog file whenever it changes on disk
type Watcher struct {
	path     string
	onReload func(*Catalog)
	log      *logger.Logger
	debounce time.Duration
}

// NewWatcher creates a watcher for path. onReload receives every catalog
// that parsed successfully; broken edits are logged and skipped.
func NewWatcher(path string, onReload func(*Catalog)) *Watcher {
	return &Watcher{
		path:     filepath.Clean(path),
		onReload: onReload,
		log:      logger.New("catalog"),
		debounce: reloadDebounce,
	}
}

// Run watches until ctx is cancelled. The parent directory is watched so
// editors that replace the file on save are still seen.
func (w *Watcher) Run(ctx context.Context) error {
	if err := validateCatalogPath(w.path); err != nil {
		return fmt.Errorf("invalid catalog path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.path, err)
	}
	w.log.Info("watching %s", w.path)

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !w.relevant(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			w.reload()

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.log.WarnWithFields("watcher error", []logger.Field{logger.Error(err)})
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

func (w *Watcher) reload() {
	c, err := Load(w.path)
	if err != nil {
		w.log.WarnWithFields("catalog reload failed, keeping previous catalog", []logger.Field{logger.Error(err)})
		return
	}
	w.log.InfoWithFields("catalog reloaded", []logger.Field{logger.F("path", w.path), logger.Count(len(c.Objects))})
	w.onReload(c)
}
