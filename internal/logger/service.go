package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const (
	DefaultDir  = "logs"
	DefaultFile = "running_logs.log"
)

type Options struct {
	Level  slog.Level
	Format string // "json" or "text"
	Dir    string
	File   string
	// Console receives a copy of every record. Defaults to os.Stdout.
	Console io.Writer
}

// New builds the process logger. Records go to <Dir>/<File> and to the
// console. The returned closer releases the log file.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	if opts.Dir == "" {
		opts.Dir = DefaultDir
	}
	if opts.File == "" {
		opts.File = DefaultFile
	}
	if opts.Console == nil {
		opts.Console = os.Stdout
	}

	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	path := filepath.Join(opts.Dir, opts.File)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	out := io.MultiWriter(file, opts.Console)
	handlerOpts := &slog.HandlerOptions{Level: opts.Level}

	var handler slog.Handler
	if opts.Format == "text" {
		handler = slog.NewTextHandler(out, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(out, handlerOpts)
	}

	return slog.New(handler), file, nil
}

func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
}

func Named(logger *slog.Logger, name string) *slog.Logger {
	if logger == nil {
		return Discard()
	}

	return logger.With("name", name)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
