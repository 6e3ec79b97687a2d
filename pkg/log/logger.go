package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level represents the severity level of a log message.
type Level int

// Log levels
const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name ("debug", "info", "warn", "error").
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel, nil
	case "info", "":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	default:
		return InfoLevel, fmt.Errorf("log: unknown level %q", s)
	}
}

func (l Level) slog() slog.Level {
	switch l {
	case DebugLevel:
		return slog.LevelDebug
	case WarnLevel:
		return slog.LevelWarn
	case ErrorLevel:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Format selects the output encoding.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// ParseFormat converts a format name ("text", "json").
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("log: unknown format %q", s)
	}
}

// Logger is the leveled, field-based logging interface collector components
// receive by injection.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// With returns a logger that always carries the given fields.
	With(fields ...Field) Logger

	// SetLevel adjusts the minimum level at runtime.
	SetLevel(level Level)
}

// Option configures a logger under construction.
type Option func(*options)

type options struct {
	level  Level
	format Format
	out    io.Writer
}

// WithLevel sets the minimum log level.
func WithLevel(level Level) Option { return func(o *options) { o.level = level } }

// WithFormat sets the output encoding.
func WithFormat(f Format) Option { return func(o *options) { o.format = f } }

// WithOutput sets the destination writer (default stderr).
func WithOutput(w io.Writer) Option { return func(o *options) { o.out = w } }

type baseLogger struct {
	sl  *slog.Logger
	lvl *slog.LevelVar
}

// NewLogger creates a logger with the given options.
func NewLogger(opts ...Option) Logger {
	o := options{level: InfoLevel, format: FormatText, out: os.Stderr}
	for _, fn := range opts {
		fn(&o)
	}
	lvl := &slog.LevelVar{}
	lvl.Set(o.level.slog())
	ho := &slog.HandlerOptions{Level: lvl}
	var h slog.Handler
	if o.format == FormatJSON {
		h = slog.NewJSONHandler(o.out, ho)
	} else {
		h = slog.NewTextHandler(o.out, ho)
	}
	return &baseLogger{sl: slog.New(h), lvl: lvl}
}

// NewNop returns a logger that discards everything.
func NewNop() Logger {
	return &baseLogger{
		sl:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		lvl: &slog.LevelVar{},
	}
}

func attrs(fields []Field) []any {
	out := make([]any, 0, len(fields))
	for _, f := range fields {
		out = append(out, slog.Any(f.Key, f.Value))
	}
	return out
}

func (l *baseLogger) Debug(msg string, fields ...Field) { l.sl.Debug(msg, attrs(fields)...) }
func (l *baseLogger) Info(msg string, fields ...Field)  { l.sl.Info(msg, attrs(fields)...) }
func (l *baseLogger) Warn(msg string, fields ...Field)  { l.sl.Warn(msg, attrs(fields)...) }
func (l *baseLogger) Error(msg string, fields ...Field) { l.sl.Error(msg, attrs(fields)...) }

func (l *baseLogger) With(fields ...Field) Logger {
	return &baseLogger{sl: l.sl.With(attrs(fields)...), lvl: l.lvl}
}

func (l *baseLogger) SetLevel(level Level) { l.lvl.Set(level.slog()) }
