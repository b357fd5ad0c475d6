// Package log provides the logging abstraction used across ycbvideo.
//
// Library code logs through the Logger interface so that embedding
// applications can plug in their own logging. Two implementations are
// provided: a zerolog adapter and a no-op logger, which is the default.
//
// # Usage
//
//	logger := log.NewZerologAdapter(zerolog.InfoLevel)
//	loader, err := ycbvideo.New(cfg, ycbvideo.WithLogger(logger))
//
// Fields are built with the typed helpers:
//
//	logger.Debug("resolved selector",
//	    log.String("expression", expr),
//	    log.Int("descriptors", n))
package log
