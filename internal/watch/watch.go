// Package watch regenerates the site configuration when its source files
// change, and optionally on a fixed resync interval.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-co-op/gocron/v2"

	"git.home.luguber.info/inful/blogcfg/internal/generate"
	"git.home.luguber.info/inful/blogcfg/internal/logfields"
)

// DefaultDebounce coalesces bursts of editor writes into one run.
const DefaultDebounce = 500 * time.Millisecond

// Runner performs one generation.
type Runner interface {
	Run(ctx context.Context) (*generate.Report, error)
}

// FilesFunc lists the files whose changes trigger a run. It is re-evaluated
// after every run so newly referenced navbar files are picked up.
type FilesFunc func() []string

// Watcher drives a Runner from file system events.
type Watcher struct {
	runner   Runner
	files    FilesFunc
	debounce time.Duration
	resync   time.Duration
	onRun    func(*generate.Report, error)

	watched map[string]bool
	dirs    map[string]bool
}

// Option customizes a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period after the last change.
func WithDebounce(d time.Duration) Option { return func(w *Watcher) { w.debounce = d } }

// WithResync runs the generator every d in addition to file events. Zero
// disables the resync.
func WithResync(d time.Duration) Option { return func(w *Watcher) { w.resync = d } }

// WithOnRun registers a callback invoked after every run.
func WithOnRun(fn func(*generate.Report, error)) Option { return func(w *Watcher) { w.onRun = fn } }

// New returns a Watcher.
func New(runner Runner, files FilesFunc, opts ...Option) *Watcher {
	w := &Watcher{
		runner:   runner,
		files:    files,
		debounce: DefaultDebounce,
		watched:  map[string]bool{},
		dirs:     map[string]bool{},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run generates once, then regenerates on change until ctx is done. Failed
// runs are logged and do not stop the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() {
		if cerr := fsw.Close(); cerr != nil {
			slog.Error("Error closing file watcher", logfields.Error(cerr))
		}
	}()

	resyncC := make(chan struct{}, 1)
	if w.resync > 0 {
		sched, err := w.startResync(resyncC)
		if err != nil {
			return err
		}
		defer func() {
			if serr := sched.Shutdown(); serr != nil {
				slog.Error("Error stopping resync scheduler", logfields.Error(serr))
			}
		}()
	}

	w.cycle(ctx, fsw)
	slog.Info("Watching for changes", slog.Int("files", len(w.watched)))

	var timer *time.Timer
	var timerC <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Stopping watcher")
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			slog.Debug("Change detected", logfields.Path(event.Name), slog.String("op", event.Op.String()))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			timerC = timer.C
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			slog.Error("Watcher error", logfields.Error(err))
		case <-timerC:
			timerC = nil
			w.cycle(ctx, fsw)
		case <-resyncC:
			slog.Debug("Periodic resync")
			w.cycle(ctx, fsw)
		}
	}
}

func (w *Watcher) startResync(trigger chan<- struct{}) (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create gocron scheduler: %w", err)
	}
	_, err = sched.NewJob(
		gocron.DurationJob(w.resync),
		gocron.NewTask(func() {
			select {
			case trigger <- struct{}{}:
			default:
			}
		}),
		gocron.WithName("resync"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = sched.Shutdown()
		return nil, fmt.Errorf("failed to create resync job: %w", err)
	}
	sched.Start()
	return sched, nil
}

// cycle runs the generator and refreshes the watch set before reporting the
// result, so a change made right after the callback is observed.
func (w *Watcher) cycle(ctx context.Context, fsw *fsnotify.Watcher) {
	report, err := w.runner.Run(ctx)
	if err != nil {
		slog.Error("Regeneration failed", logfields.Error(err))
	}
	w.refresh(fsw)
	if w.onRun != nil {
		w.onRun(report, err)
	}
}

// refresh watches the directories of the current file set. Directories are
// watched rather than files so editors that replace files by rename are
// still observed.
func (w *Watcher) refresh(fsw *fsnotify.Watcher) {
	watched := map[string]bool{}
	for _, f := range w.files() {
		abs, err := filepath.Abs(f)
		if err != nil {
			continue
		}
		watched[abs] = true
		dir := filepath.Dir(abs)
		if w.dirs[dir] {
			continue
		}
		if err := fsw.Add(dir); err != nil {
			slog.Warn("Cannot watch directory", logfields.Path(dir), logfields.Error(err))
			continue
		}
		w.dirs[dir] = true
	}
	w.watched = watched
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return w.watched[abs]
}
