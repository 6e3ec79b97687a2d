// Package log provides the collector's structured logging facade.
//
// The package exposes a small Logger interface with leveled methods and a
// Field type for structured context, backed by the standard library slog.
// Construct once, tag with a component, and pass explicitly:
//
//	l := log.NewLogger(log.WithLevel(log.DebugLevel), log.WithFormat(log.FormatText))
//	l = l.With(log.Component("harbor"))
//	l.Info("segment sealed", log.Int("entries", n), log.Int64("bytes", used))
package log
