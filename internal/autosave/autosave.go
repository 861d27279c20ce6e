// Package autosave watches the live game directory and snapshots it into
// the store whenever it goes quiet after a change. Snapshots are named
// auto-<timestamp>; old ones are pruned so the autosave history stays
// bounded. Manually named saves are never touched.
package autosave

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/mlahtinen/savekeeper/internal/domain"
	"github.com/mlahtinen/savekeeper/internal/store"
)

const autoPrefix = "auto-"
const nameFormat = "20060102-150405"

// Config holds tuning for the watcher.
type Config struct {
	// Interval is the quiet period after the last change before a
	// snapshot is taken.
	Interval time.Duration

	// Keep is how many auto-* saves are retained; older ones are pruned
	// through the trash (remove then delete).
	Keep int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Interval: 30 * time.Second,
		Keep:     10,
	}
}

// Watcher snapshots the live directory on quiescence after changes.
type Watcher struct {
	store *store.Store
	cfg   Config
	log   zerolog.Logger

	mu       sync.Mutex
	debounce *time.Timer
	fireCh   chan struct{}
}

// New creates a Watcher over the store's live directory.
func New(st *store.Store, cfg Config, logger zerolog.Logger) *Watcher {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultConfig().Interval
	}
	if cfg.Keep <= 0 {
		cfg.Keep = DefaultConfig().Keep
	}
	return &Watcher{
		store:  st,
		cfg:    cfg,
		log:    logger,
		fireCh: make(chan struct{}, 1),
	}
}

// Run watches until the context is canceled. Snapshots run on the loop
// goroutine, so at most one is in flight at a time.
func (w *Watcher) Run(ctx context.Context) error {
	liveDir := w.store.LiveDir()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()
	defer w.stopDebounce()

	if err := addRecursive(watcher, liveDir); err != nil {
		return fmt.Errorf("watch %s: %w", liveDir, err)
	}

	w.log.Info().Str("dir", liveDir).Dur("interval", w.cfg.Interval).Int("keep", w.cfg.Keep).Msg("autosave watching")

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			// New directories must be added to the watch; fsnotify
			// does not recurse on its own.
			if event.Op&fsnotify.Create != 0 {
				if fi, err := os.Stat(event.Name); err == nil && fi.IsDir() {
					_ = watcher.Add(event.Name)
				}
			}
			w.scheduleSnapshot()

		case <-w.fireCh:
			w.snapshot(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Error().Err(err).Msg("autosave: watcher error")
		}
	}
}

// scheduleSnapshot resets the quiet-period timer; the snapshot fires only
// once the live directory has stopped changing for the full interval.
func (w *Watcher) scheduleSnapshot() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(w.cfg.Interval, func() {
		select {
		case w.fireCh <- struct{}{}:
		default:
		}
	})
}

func (w *Watcher) stopDebounce() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
}

func (w *Watcher) snapshot(ctx context.Context) {
	name := autoPrefix + time.Now().Format(nameFormat)

	save, err := w.store.Create(ctx, name)
	if err != nil {
		// Two quiet periods inside one clock second collide on the
		// name; the snapshot already exists, nothing lost.
		if errors.Is(err, domain.ErrNameConflict) {
			w.log.Debug().Str("save", name).Msg("autosave: name collision, skipped")
			return
		}
		w.log.Error().Err(err).Str("save", name).Msg("autosave: snapshot failed")
		return
	}
	w.log.Info().Str("save", save.Name).Msg("autosave: snapshot taken")

	if err := w.prune(ctx); err != nil {
		w.log.Error().Err(err).Msg("autosave: prune failed")
	}
}

// prune trims auto-* saves beyond the keep count, oldest first. Pruned
// saves go through the normal lifecycle: trash, then permanent delete.
func (w *Watcher) prune(ctx context.Context) error {
	saves, err := w.store.List(ctx, domain.Active)
	if err != nil {
		return err
	}

	var auto []domain.Save
	for _, s := range saves {
		if strings.HasPrefix(s.Name, autoPrefix) {
			auto = append(auto, s)
		}
	}
	if len(auto) <= w.cfg.Keep {
		return nil
	}

	// List is oldest-first already.
	for _, s := range auto[:len(auto)-w.cfg.Keep] {
		if _, err := w.store.Remove(ctx, s.Name); err != nil {
			w.log.Warn().Err(err).Str("save", s.Name).Msg("autosave: prune skipped save")
			continue
		}
		if err := w.store.Delete(ctx, s.Name); err != nil {
			w.log.Warn().Err(err).Str("save", s.Name).Msg("autosave: prune left save in trash")
			continue
		}
		w.log.Debug().Str("save", s.Name).Msg("autosave: pruned")
	}
	return nil
}

// addRecursive registers dir and every subdirectory with the watcher.
func addRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}
