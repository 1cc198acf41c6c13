package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is the logging surface used across the service.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(err error, format string, args ...any)
}

type slogLogger struct {
	l *slog.Logger
}

// NewSlogLogger returns a text logger on stdout filtered at the given level
// (debug, info, warn, error). Unknown levels fall back to info.
func NewSlogLogger(level string) Logger {
	return newSlogLogger(os.Stdout, level)
}

// NewDiscardLogger drops every entry. Used by tests.
func NewDiscardLogger() Logger {
	return newSlogLogger(io.Discard, "error")
}

func newSlogLogger(w io.Writer, level string) Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(level)})
	return &slogLogger{l: slog.New(h)}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (s *slogLogger) Infof(format string, args ...any) {
	s.l.Info(fmt.Sprintf(format, args...))
}

func (s *slogLogger) Warnf(format string, args ...any) {
	s.l.Warn(fmt.Sprintf(format, args...))
}

func (s *slogLogger) Errorf(err error, format string, args ...any) {
	if err == nil {
		s.l.Error(fmt.Sprintf(format, args...))
		return
	}
	s.l.Error(fmt.Sprintf(format, args...), slog.String("error", err.Error()))
}
