package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Mode selects a handler preset.
type Mode uint8

const (
	ModeDev Mode = iota
	ModeProd
	ModeSilence
)

// New returns a logger writing to w in the given mode.
func New(mode Mode, w io.Writer) *slog.Logger {
	return slog.New(buildHandler(mode, w))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return New(ModeSilence, nil)
}

// OpenFile creates (or appends to) the log file at path and returns a debug
// logger writing to it, plus the file so the caller can close it. The
// terminal belongs to the game, so logs never go to stdout or stderr.
func OpenFile(path string) (*slog.Logger, io.Closer, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, nil, fmt.Errorf("error creating log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening log file: %w", err)
	}
	return New(ModeDev, f), f, nil
}

func buildHandler(mode Mode, w io.Writer) slog.Handler {
	if w == nil {
		w = io.Discard
	}
	switch mode {
	case ModeDev:
		return slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	case ModeProd:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	case ModeSilence:
		return slog.NewTextHandler(io.Discard, nil)
	default:
		return slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}
}
