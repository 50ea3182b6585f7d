package registry

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"

	"prettylog/internal/severity"
)

// Logger is a named logger with a console destination and an optional file
// destination. Per-severity convenience methods accept slog-style key/value
// args; Slog exposes the underlying structured logger.
type Logger struct {
	name string

	// level gates both destinations and is shared with their handlers.
	level *slog.LevelVar

	console  *destination
	file     *destination
	filePath string
	fileOut  *os.File

	slogger atomic.Pointer[slog.Logger]
}

// Name returns the logger's registry name.
func (l *Logger) Name() string { return l.name }

// Slog returns the structured logger backing the convenience methods.
func (l *Logger) Slog() *slog.Logger {
	return l.slogger.Load()
}

// rebuild refreshes the fanout over the current destinations. Callers hold
// the registry mutex.
func (l *Logger) rebuild() {
	handlers := make([]slog.Handler, 0, 2)
	if l.console != nil {
		handlers = append(handlers, l.console)
	}
	if l.file != nil {
		handlers = append(handlers, l.file)
	}
	l.slogger.Store(slog.New(newFanoutHandler(handlers...)))
}

func (l *Logger) log(level slog.Level, msg string, args ...any) {
	l.Slog().Log(context.Background(), level, msg, args...)
}

func (l *Logger) Trace(msg string, args ...any) { l.log(severity.Trace, msg, args...) }

func (l *Logger) Debug(msg string, args ...any) { l.log(severity.Debug, msg, args...) }

func (l *Logger) Info(msg string, args ...any) { l.log(severity.Info, msg, args...) }

func (l *Logger) Success(msg string, args ...any) { l.log(severity.Success, msg, args...) }

func (l *Logger) Warning(msg string, args ...any) { l.log(severity.Warning, msg, args...) }

func (l *Logger) Error(msg string, args ...any) { l.log(severity.Error, msg, args...) }

func (l *Logger) Critical(msg string, args ...any) { l.log(severity.Critical, msg, args...) }

// Err wraps an error for logging; the destinations render it as the trace
// block under the message.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Any("error", err)
}
