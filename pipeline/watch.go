package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher re-runs the pipeline when watched input paths change. Events are
// debounced: a burst of writes (an ontology release being copied in) causes
// one re-run after the quiet period.
type Watcher struct {
	paths    []string
	debounce time.Duration
	logger   *slog.Logger
	run      func(context.Context)
}

// NewWatcher creates a watcher over the given files and directories.
// run is invoked after each debounced change burst.
func NewWatcher(paths []string, debounce time.Duration, logger *slog.Logger, run func(context.Context)) *Watcher {
	return &Watcher{
		paths:    paths,
		debounce: debounce,
		logger:   logger,
		run:      run,
	}
}

// Watch blocks until ctx is cancelled, re-running on input changes. Watches
// are registered on parent directories so that atomic replace (write temp,
// rename over) is observed.
func (w *Watcher) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	watched := make(map[string]struct{})
	for _, p := range w.paths {
		dir := filepath.Dir(p)
		if _, ok := watched[dir]; ok {
			continue
		}
		watched[dir] = struct{}{}
		if err := watcher.Add(dir); err != nil {
			w.logger.Warn("failed to watch directory", "dir", dir, "error", err)
			continue
		}
		w.logger.Debug("watching directory", "dir", dir)
	}

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			w.logger.Debug("input change detected", "path", event.Name, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "error", err)

		case <-timerC:
			timer = nil
			timerC = nil
			w.logger.Info("inputs changed, re-running pipeline")
			w.run(ctx)
		}
	}
}
