// Package selectionwatcher re-resolves a frame selection whenever the
// expression file or the dataset directories change. Every resolution
// reads the dataset again; nothing is cached between rounds.
package selectionwatcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/ycbvideo/pkg/dataset"
	"github.com/bft-labs/ycbvideo/pkg/log"
	"github.com/bft-labs/ycbvideo/pkg/ycbvideo"
)

// Handler receives the outcome of every resolution. Exactly one of set and
// err is non-nil.
type Handler func(set *ycbvideo.FrameSet, err error)

// Config holds configuration options for the selection watcher.
type Config struct {
	// ExpressionFile is the file holding one expression per line. Relative
	// paths are taken relative to the dataset root. When empty,
	// Expressions is used and only the dataset is watched.
	ExpressionFile string

	// Expressions is used when ExpressionFile is empty.
	Expressions []string

	// Shuffle permutes every resolved selection.
	Shuffle bool

	// DebounceDelay is the quiet period after the last change before the
	// selection is resolved again.
	// Default: 200 milliseconds
	DebounceDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{DebounceDelay: 200 * time.Millisecond}
}

// Watcher watches an expression file and a dataset.
type Watcher struct {
	loader   *ycbvideo.Loader
	handler  Handler
	exprPath string
	exprs    []string
	shuffle  bool
	debounce time.Duration
	logger   log.Logger
}

// New creates a watcher. It does nothing until Run is called.
func New(loader *ycbvideo.Loader, cfg Config, handler Handler, opts ...Option) (*Watcher, error) {
	if loader == nil {
		return nil, errors.New("selectionwatcher: loader is required")
	}
	if handler == nil {
		return nil, errors.New("selectionwatcher: handler is required")
	}
	if cfg.ExpressionFile == "" && len(cfg.Expressions) == 0 {
		return nil, fmt.Errorf("selectionwatcher: %w", ycbvideo.ErrNoExpressions)
	}
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = 200 * time.Millisecond
	}

	w := &Watcher{
		loader:   loader,
		handler:  handler,
		exprs:    cfg.Expressions,
		shuffle:  cfg.Shuffle,
		debounce: cfg.DebounceDelay,
		logger:   log.NewNoopLogger(),
	}
	if cfg.ExpressionFile != "" {
		w.exprPath = filepath.Clean(loader.ExpressionPath(cfg.ExpressionFile))
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Name returns the watcher identifier.
func (w *Watcher) Name() string {
	return "selectionwatcher"
}

// Run resolves the selection once, then again after every burst of
// changes, until ctx is done. The handler is called on the caller's
// goroutine. Run returns nil when ctx is canceled.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if w.exprPath != "" {
		if err := watcher.Add(filepath.Dir(w.exprPath)); err != nil {
			return fmt.Errorf("watch expression file directory: %w", err)
		}
	}
	w.watchDataset(watcher)

	w.resolve(ctx)

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
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(watcher, event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.resolve(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("selection watcher: watcher error", log.Err(err))
		}
	}
}

// watchDataset adds data/, every sequence directory and data_syn/. Missing
// directories are skipped; resolution reports them.
func (w *Watcher) watchDataset(watcher *fsnotify.Watcher) {
	root := w.loader.Root()
	dataDir := filepath.Join(root, dataset.DataDir)

	dirs := []string{dataDir, filepath.Join(root, dataset.DataSynDir)}
	if ents, err := os.ReadDir(dataDir); err == nil {
		for _, e := range ents {
			if e.IsDir() {
				dirs = append(dirs, filepath.Join(dataDir, e.Name()))
			}
		}
	}

	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			w.logger.Debug("selection watcher: not watching directory",
				log.String("dir", dir), log.Err(err))
		}
	}
}

// relevant reports whether event can change the selection. New sequence
// directories and a new data_syn directory are added to the watch list.
func (w *Watcher) relevant(watcher *fsnotify.Watcher, event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	name := filepath.Clean(event.Name)
	if w.exprPath != "" && name == w.exprPath {
		return true
	}

	root := w.loader.Root()
	dataDir := filepath.Join(root, dataset.DataDir)
	synDir := filepath.Join(root, dataset.DataSynDir)
	dir := filepath.Dir(name)

	switch {
	case name == synDir || dir == dataDir:
		if event.Op&fsnotify.Create != 0 {
			w.addDir(watcher, name)
		}
		return true
	case dir == synDir || filepath.Dir(dir) == dataDir:
		return true
	default:
		return false
	}
}

func (w *Watcher) addDir(watcher *fsnotify.Watcher, path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}
	if err := watcher.Add(path); err != nil {
		w.logger.Warn("selection watcher: failed to watch new directory",
			log.String("dir", path), log.Err(err))
	}
}

func (w *Watcher) resolve(ctx context.Context) {
	var (
		set *ycbvideo.FrameSet
		err error
	)
	if w.exprPath != "" {
		set, err = w.loader.FramesFromFile(ctx, w.exprPath, w.shuffle)
	} else {
		set, err = w.loader.Frames(ctx, w.exprs, w.shuffle)
	}
	if ctx.Err() != nil {
		return
	}

	if err != nil {
		w.logger.Warn("selection watcher: resolution failed", log.Err(err))
	} else {
		w.logger.Info("selection watcher: selection resolved", log.Int("frames", set.Len()))
	}
	w.handler(set, err)
}
