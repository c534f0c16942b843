package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/aastex/internal/platform"
)

// DefaultDebounce is the quiet period before a change is reported.
const DefaultDebounce = 50 * time.Millisecond

// Config configures a Watcher.
type Config struct {
	// Root is the directory watched recursively. Hidden directories are
	// skipped.
	Root string
	// Patterns are doublestar globs relative to Root, e.g. "figures/**/*.pdf".
	// A change is reported when any pattern matches; no patterns match all.
	Patterns     []string
	Debounce     time.Duration
	Logger       *slog.Logger
	ErrorHandler func(error)
}

// Watcher reports changes to the inputs of a paper: its manifest and the
// images it includes.
type Watcher struct {
	*worker.BaseWorker
	config    Config
	events    chan Event
	watcher   *fsnotify.Watcher
	debouncer *debouncer
	cancel    context.CancelFunc
}

// NewWatcher creates a stopped watcher.
func NewWatcher(cfg Config) *Watcher {
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	return &Watcher{
		BaseWorker: worker.NewBaseWorker("fs-watcher"),
		config:     cfg,
		events:     make(chan Event, 16),
	}
}

// Events is closed when the watcher stops.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Start begins watching. It returns once the directories are registered;
// events are delivered from a background goroutine until ctx is done or Stop
// is called.
func (w *Watcher) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	status := w.State().Status
	if status != worker.StatusCreated && status != worker.StatusPending {
		return fmt.Errorf("watcher already started (status: %s)", status)
	}

	for _, p := range w.config.Patterns {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid watch pattern %q: %w", p, doublestar.ErrBadPattern)
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.addTree(watcher, w.config.Root); err != nil {
		_ = watcher.Close()
		return err
	}

	w.watcher = watcher
	w.debouncer = newDebouncer(w.config.Debounce)

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.SetStatus(worker.StatusRunning)
	return w.StartFunc(runCtx, w.run)
}

// Stop ends the watch loop.
func (w *Watcher) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.StopRequested = true
		w.cancel()
	}
	return w.BaseWorker.Stop(ctx)
}

// State reports the worker state.
func (w *Watcher) State() worker.State {
	return w.ExportState(func(s *worker.State) {
		s.Metadata = map[string]string{
			worker.MetadataType: string(worker.TypeGoroutine),
			"root":              w.config.Root,
			"patterns":          strings.Join(w.config.Patterns, ","),
		}
	})
}

// addTree registers dir and every non-hidden directory below it.
func (w *Watcher) addTree(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}

// match reports whether the event path is one of the watched inputs.
func (w *Watcher) match(rel string) bool {
	if strings.HasPrefix(filepath.Base(rel), platform.TempFilePrefix) {
		return false
	}
	if len(w.config.Patterns) == 0 {
		return true
	}
	for _, p := range w.config.Patterns {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}
	return false
}

func (w *Watcher) processFilesystemEvent(ctx context.Context, ev fsnotify.Event) bool {
	if w.config.Logger != nil {
		w.config.Logger.Debug("event received", "name", ev.Name, "op", ev.Op.String())
	}

	t := eventType(ev)
	if t == "" {
		return false
	}

	// New directories may later hold matching files.
	if t == EventCreate {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			if err := w.addTree(w.watcher, ev.Name); err != nil {
				w.handleWatcherError(err)
			}
			return false
		}
	}

	rel, err := filepath.Rel(w.config.Root, ev.Name)
	if err != nil {
		w.handleWatcherError(fmt.Errorf("failed to resolve %s: %w", ev.Name, err))
		return false
	}
	rel = filepath.ToSlash(rel)
	if !w.match(rel) {
		return false
	}

	w.sendEvent(ctx, newEvent(t, rel))
	return true
}

func (w *Watcher) sendEvent(ctx context.Context, e Event) {
	w.debouncer.add(e, func(e Event) {
		select {
		case w.events <- e:
		case <-ctx.Done():
		}
	})
}

func (w *Watcher) handleWatcherError(err error) {
	if w.config.Logger != nil {
		w.config.Logger.Error("watch error", "error", err)
	}
	if w.config.ErrorHandler != nil {
		w.config.ErrorHandler(err)
	}
}

func (w *Watcher) run(ctx context.Context) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("watcher panic: %v", recovered)
			if w.config.Logger == nil {
				return
			}
			if w.config.Logger.Enabled(ctx, slog.LevelDebug) {
				w.config.Logger.Error("watcher panic", "error", err, "stack", string(debug.Stack()))
			} else {
				w.config.Logger.Error("watcher panic", "error", err)
			}
		}
	}()
	defer close(w.events)
	defer w.watcher.Close()

	err = w.loop(ctx)

	// Pending events must land before the channel closes.
	w.debouncer.stopAndWait(5 * time.Second)
	return err
}

func (w *Watcher) loop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.watcher.Events:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			w.processFilesystemEvent(ctx, ev)

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.handleWatcherError(wErr)
		}
	}
}
