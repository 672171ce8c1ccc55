// Package logutils builds the zerolog logger used across sketchgrid.
package logutils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// New returns a logger that writes JSON lines to file, truncating it on
// start. When console is non-nil, warnings and errors are also written there
// in human-readable form. With neither a file nor a console the logger
// writes human-readable lines to stderr, since the TUI owns stdout.
//
// The level parameter can be one of: debug, info, warn, error, fatal.
func New(level string, file string, console io.Writer) (zerolog.Logger, func(), error) {
	closer := func() {}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, closer, fmt.Errorf("parse log level %q: %w", level, err)
	}

	if file == "" && console == nil {
		return NewWithWriter(lvl, zerolog.ConsoleWriter{Out: os.Stderr}), closer, nil
	}

	var writers []io.Writer
	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return zerolog.Logger{}, closer, fmt.Errorf("create logs dir: %w", err)
		}

		osFile, err := os.Create(file)
		if err != nil {
			return zerolog.Logger{}, closer, err
		}
		closer = func() { _ = osFile.Close() }
		writers = append(writers, osFile)
	}

	if console != nil {
		writers = append(writers, &zerolog.FilteredLevelWriter{
			Writer: zerolog.LevelWriterAdapter{Writer: zerolog.ConsoleWriter{Out: console, NoColor: true}},
			Level:  zerolog.WarnLevel,
		})
	}

	return NewWithWriter(lvl, zerolog.MultiLevelWriter(writers...)), closer, nil
}

// NewWithWriter returns a timestamped logger at lvl writing to w.
func NewWithWriter(lvl zerolog.Level, w io.Writer) zerolog.Logger {
	return zerolog.New(w).
		With().
		Timestamp().
		Logger().
		Level(lvl)
}

// Component returns a child logger tagged with the component name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}
