package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/bft-labs/tasker/internal/ports"
)

// DefaultWatchInterval is the minimum time between two redraws.
const DefaultWatchInterval = 250 * time.Millisecond

// Watcher re-renders the task table whenever the task file changes.
// It only reads; writes by other processes are picked up via fsnotify.
type Watcher struct {
	repo    ports.TaskRepository
	path    string
	out     io.Writer
	logger  zerolog.Logger
	limiter *rate.Limiter

	// rendered is called after each redraw. Used by tests.
	rendered func()
}

// NewWatcher creates a watcher for the task file at path.
// Redraws are spaced at least interval apart; bursts of writes in between
// collapse into one redraw.
func NewWatcher(repo ports.TaskRepository, path string, out io.Writer, logger zerolog.Logger, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = DefaultWatchInterval
	}
	return &Watcher{
		repo:    repo,
		path:    path,
		out:     out,
		logger:  logger,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}
}

// Run renders once, then blocks re-rendering on change until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory so replace-by-rename writes are seen too.
	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	name := filepath.Base(w.path)

	w.limiter.Allow()
	w.render(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := w.limiter.Wait(ctx); err != nil {
				// ctx canceled while waiting for the next redraw slot
				return nil
			}
			drain(watcher.Events)
			w.render(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Msg("watcher error")
		}
	}
}

func (w *Watcher) render(ctx context.Context) {
	tasks, err := w.repo.Load(ctx)
	if err != nil {
		// A concurrent writer may be mid-write; the next event retries.
		w.logger.Warn().Err(err).Str("path", w.path).Msg("reload failed")
		return
	}
	if err := RenderTable(w.out, tasks); err != nil {
		w.logger.Error().Err(err).Msg("render failed")
	}
	if w.rendered != nil {
		w.rendered()
	}
}

// drain discards events that queued up while waiting for the limiter.
func drain(events <-chan fsnotify.Event) {
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		default:
			return
		}
	}
}
