// Package logging builds the structured loggers used across orrery.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

const timeFormat = "15:04:05.000"

// ParseLevel parses a log level string, defaulting to info.
func ParseLevel(s string) log.Level {
	level, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// New creates a logger writing to w at the given level.
func New(level log.Level, w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "orrery",
		ReportTimestamp: true,
		TimeFormat:      timeFormat,
	})
}

// Open creates a logger for the given file path. An empty path logs to
// stderr when interactive is false and discards otherwise, so the terminal
// UI is never overwritten. The returned closer must be called on exit.
func Open(level, path string, interactive bool) (*log.Logger, io.Closer, error) {
	if path == "" {
		if interactive {
			return Discard(), nopCloser{}, nil
		}
		return New(ParseLevel(level), os.Stderr), nopCloser{}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}
	return New(ParseLevel(level), f), f, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	l := log.New(io.Discard)
	l.SetLevel(log.FatalLevel + 1)
	return l
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
