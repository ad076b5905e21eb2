// Package logging sets up the structured debug log.
//
// The terminal is in raw mode while the input field is running, so log records go to a
// file or nowhere at all.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ParseLevel converts a level name (debug, info, warn or error) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(strings.TrimSpace(s)))
	return l, errors.WithMessage(err, "log level")
}

// New returns a logger that writes JSON records at or above level to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h).With(slog.String("component", "lineinput"))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger { return New(io.Discard, slog.LevelError+1) }

// Open returns a logger that appends to the file at path. If path is empty, it returns
// Discard(). The returned close function must be called when the logger is no longer used.
func Open(path string, level slog.Level) (*slog.Logger, func() error, error) {
	if path == "" {
		return Discard(), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0600)
	if err != nil {
		return Discard(), func() error { return nil }, errors.Wrap(err, "open log")
	}
	return New(f, level), f.Close, nil
}
