package kb

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const reloadDelay = 2 * time.Second // minimum gap between reloads

// Watcher watches a knowledge-base directory and reloads the index when any
// of its files change. Editors tend to fire several write events per save,
// so reloads are rate limited; at most one reload goes through per
// reloadDelay window.
type Watcher struct {
	dir     string
	limiter *rate.Limiter
	onLoad  func(*Index)
	log     zerolog.Logger
}

// NewWatcher creates a watcher for the KB directory. onLoad is invoked with
// the freshly built index after every successful reload.
func NewWatcher(dir string, onLoad func(*Index), log zerolog.Logger) *Watcher {
	return &Watcher{
		dir:     dir,
		limiter: rate.NewLimiter(rate.Every(reloadDelay), 1),
		onLoad:  onLoad,
		log:     log,
	}
}

// Run watches until ctx is cancelled. A reload failure keeps the previous
// index in place and is logged, never fatal.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer func() {
		if closeErr := watcher.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if err := watcher.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-watcher.Events:
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !w.limiter.Allow() {
				continue
			}
			idx, loadErr := Load(w.dir)
			if loadErr != nil {
				w.log.Warn().Err(loadErr).Str("dir", w.dir).Msg("knowledge base reload failed, keeping previous index")
				continue
			}
			w.log.Info().Str("version", idx.Version).Msg("knowledge base reloaded")
			w.onLoad(idx)
		case watchErr := <-watcher.Errors:
			w.log.Warn().Err(watchErr).Msg("file watcher error")
		}
	}
}
