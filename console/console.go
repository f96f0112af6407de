// Package console is the logger shared by the runtime, the CLI and the
// browser entry point. It discards everything until Init is called.
package console

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// L is the global logger instance. It's initialized to discard all output by default.
var L = slog.New(slog.NewTextHandler(io.Discard, nil))

// Options configures the logger initialization.
type Options struct {
	Level  slog.Level
	Format string    // "text", "json", or "" to pick by terminal
	Writer io.Writer // Default: os.Stderr
}

// Init replaces L with a logger built from opts.
func Init(opts Options) {
	L = New(opts)
}

// New builds a logger. With no explicit format it writes text to a
// terminal and JSON to anything else.
func New(opts Options) *slog.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	hopts := &slog.HandlerOptions{Level: opts.Level}

	switch opts.Format {
	case "json":
		return slog.New(slog.NewJSONHandler(w, hopts))
	case "text":
		return slog.New(slog.NewTextHandler(w, hopts))
	default:
		if isTerminal(w) {
			return slog.New(slog.NewTextHandler(w, hopts))
		}
		return slog.New(slog.NewJSONHandler(w, hopts))
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ParseLevel accepts debug, info, warn and error, case-insensitively.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, err)
	}
	return l, nil
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Log logs an info message with optional key-value pairs.
func Log(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) { L.Error(msg, args...) }
