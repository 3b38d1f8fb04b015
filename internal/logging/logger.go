// Package logging builds the application's zerolog logger. The terminal is
// owned by the UI, so log output always goes to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type Options struct {
	// File is the log destination. Empty discards all output.
	File    string
	Level   string
	Console bool
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New opens the log file in append mode and returns a logger writing to it.
// The caller closes the returned io.Closer on exit.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	if opts.File == "" {
		return zerolog.New(io.Discard).Level(level), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
	}

	var out io.Writer = file
	if opts.Console {
		out = zerolog.ConsoleWriter{Out: file, NoColor: true, TimeFormat: time.RFC3339}
	}

	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return logger, file, nil
}
