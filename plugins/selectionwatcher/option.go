package selectionwatcher

import "github.com/bft-labs/ycbvideo/pkg/log"

// Option configures optional behavior of a Watcher.
type Option func(*Watcher)

// WithLogger sets a custom logger. If not provided, a no-op logger is used.
//
// Usage:
//
//	w, err := selectionwatcher.New(loader, cfg, handler,
//	    selectionwatcher.WithLogger(logger),
//	)
func WithLogger(logger log.Logger) Option {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}
