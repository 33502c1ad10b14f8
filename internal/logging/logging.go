package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
)

// Setup installs the global slog default writing to stdout.
// level is anything ParseLevel accepts; format is "json" or "text".
// ERROR-level logs automatically include a stack trace.
func Setup(level, format string) {
	slog.SetDefault(New(os.Stdout, level, format))
}

// New builds a logger without touching the global default.
func New(w io.Writer, level, format string) *slog.Logger {
	lvl, err := ParseLevel(level)
	if err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{
		Level:     lvl,
		AddSource: true,
	}
	var h slog.Handler
	if strings.EqualFold(format, "text") {
		h = slog.NewTextHandler(w, opts)
	} else {
		h = slog.NewJSONHandler(w, opts)
	}
	return slog.New(&stackHandler{Handler: h})
}

// ParseLevel reads a LOG_LEVEL value. It accepts the slog names with an
// optional offset ("debug", "INFO+2", "warn-1") and WARNING as an alias.
// An empty value is INFO.
func ParseLevel(s string) (slog.Level, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return slog.LevelInfo, nil
	case strings.EqualFold(s, "WARNING"):
		return slog.LevelWarn, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
	return lvl, nil
}

// Fatal logs at Error level and exits with code 1.
func Fatal(msg string, args ...any) {
	slog.Error(msg, args...)
	os.Exit(1)
}

// maxStackBytes bounds the stack trace attached to ERROR records.
const maxStackBytes = 64 << 10

// stackHandler wraps a slog.Handler and appends the calling goroutine's
// stack trace for ERROR+.
type stackHandler struct {
	slog.Handler
}

func (h *stackHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelError {
		r.AddAttrs(slog.String("stacktrace", stackTrace()))
	}
	return h.Handler.Handle(ctx, r)
}

// stackTrace grows its buffer until the trace fits or maxStackBytes is hit.
func stackTrace() string {
	for size := 4096; ; size *= 2 {
		buf := make([]byte, size)
		n := runtime.Stack(buf, false)
		if n < size || size >= maxStackBytes {
			return string(buf[:n])
		}
	}
}

func (h *stackHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &stackHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *stackHandler) WithGroup(name string) slog.Handler {
	return &stackHandler{Handler: h.Handler.WithGroup(name)}
}
