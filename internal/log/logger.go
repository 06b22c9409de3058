// Package log provides the slog-based application logger with a small
// configuration surface: level, console or JSON format, and optional
// rotating file output.
package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	lj "gopkg.in/natefinch/lumberjack.v2"
)

// Options controls logger initialization.
type Options struct {
	Level  string // debug|info|warn|error
	Format string // "console" or "json"
	File   string // optional path; enables rotated file logging
}

var (
	mu     sync.RWMutex
	logger *slog.Logger
)

// L returns the application logger, defaulting to an info-level console
// logger if Init was never called.
func L() *slog.Logger {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l != nil {
		return l
	}
	Init(Options{})
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Init builds the logger from the given options.
func Init(opts Options) {
	var out io.Writer = os.Stderr
	if opts.File != "" {
		out = &lj.Logger{
			Filename:   opts.File,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
		}
	}

	hopts := &slog.HandlerOptions{Level: parseLevel(opts.Level)}
	var h slog.Handler
	if strings.EqualFold(opts.Format, "json") {
		h = slog.NewJSONHandler(out, hopts)
	} else {
		h = slog.NewTextHandler(out, hopts)
	}

	mu.Lock()
	logger = slog.New(h)
	mu.Unlock()
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
