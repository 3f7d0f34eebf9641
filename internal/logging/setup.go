package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Setup configures the default slog logger.
//
// level is one of "debug", "info", "warn", "error" (case-insensitive).
// format is "text" or "json". Output goes to w, typically os.Stderr so that
// command output on stdout stays machine-readable.
func Setup(w io.Writer, level, format string) error {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "", "info":
		l = slog.LevelInfo
	case "warn", "warning":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		return fmt.Errorf("unknown log level %q", level)
	}

	opts := &slog.HandlerOptions{Level: l}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "", "text":
		handler = slog.NewTextHandler(w, opts)
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		return fmt.Errorf("unknown log format %q", format)
	}

	slog.SetDefault(slog.New(handler))
	return nil
}
