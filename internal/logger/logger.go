package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

var (
	defaultLogger *slog.Logger
	logLevel      *slog.LevelVar
	initOnce      sync.Once
)

// Init configures the package logger. Only the first call has an effect;
// a nil output discards everything.
func Init(cfg Config, output io.Writer) {
	initOnce.Do(func() {
		if output == nil {
			output = io.Discard
		}
		cfg.process()
		logLevel = new(slog.LevelVar)
		logLevel.Set(cfg.level)

		opts := slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				switch a.Key {
				case slog.SourceKey:
					if source, ok := a.Value.Any().(*slog.Source); ok {
						source.File = filepath.Base(source.File)
					}
				case slog.TimeKey:
					a.Value = slog.StringValue(a.Value.Time().Format(time.TimeOnly))
				}
				return a
			},
		}
		handler := newFilteringHandler(slog.NewTextHandler(output, &opts), &cfg)
		defaultLogger = slog.New(handler)
	})
}

// Open resolves cfg.LogFilePath into a writer: nothing is logged for an
// empty path and "-" means stderr. The returned close func is never nil.
func Open(cfg Config) (io.Writer, func() error, error) {
	switch cfg.LogFilePath {
	case "":
		return io.Discard, func() error { return nil }, nil
	case "-":
		return os.Stderr, func() error { return nil }, nil
	}
	f, err := os.OpenFile(cfg.LogFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, func() error { return nil }, fmt.Errorf("failed to open log file '%s': %w", cfg.LogFilePath, err)
	}
	return f, f.Close, nil
}

// ensureInitialized installs a discarding logger if Init was never called.
func ensureInitialized() {
	initOnce.Do(func() {
		logLevel = new(slog.LevelVar)
		logLevel.Set(slog.LevelInfo)
		defaultLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: logLevel}))
	})
}

// logAtLevel builds the record itself so the source points at the caller
// of Debugf/Infof and not at this package.
func logAtLevel(level slog.Level, tag string, format string, args ...any) {
	ensureInitialized()
	ctx := context.Background()
	if !defaultLogger.Enabled(ctx, level) {
		return
	}

	var pcs [1]uintptr
	// runtime.Callers, logAtLevel, the exported wrapper
	runtime.Callers(3, pcs[:])

	r := slog.NewRecord(time.Now(), level, fmt.Sprintf(format, args...), pcs[0])
	if tag != "" {
		r.AddAttrs(slog.String(tagKey, tag))
	}
	_ = defaultLogger.Handler().Handle(ctx, r)
}

// Debugf logs at debug level.
func Debugf(format string, args ...any) {
	logAtLevel(slog.LevelDebug, "", format, args...)
}

// DebugTagf logs at debug level with a filterable tag.
func DebugTagf(tag string, format string, args ...any) {
	logAtLevel(slog.LevelDebug, tag, format, args...)
}

// Infof logs at info level.
func Infof(format string, args ...any) {
	logAtLevel(slog.LevelInfo, "", format, args...)
}

// Warnf logs at warn level.
func Warnf(format string, args ...any) {
	logAtLevel(slog.LevelWarn, "", format, args...)
}

// Errorf logs at error level.
func Errorf(format string, args ...any) {
	logAtLevel(slog.LevelError, "", format, args...)
}

// SetLevel changes the level after Init.
func SetLevel(level slog.Level) {
	ensureInitialized()
	logLevel.Set(level)
}

// Get returns the underlying slog logger.
func Get() *slog.Logger {
	ensureInitialized()
	return defaultLogger
}
