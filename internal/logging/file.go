package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// FileConfig controls the optional log file sink.
type FileConfig struct {
	Enabled       bool
	Dir           string
	MaxSizeMB     int
	MaxBackups    int
	WriteToStderr bool
}

// NewWithFile builds a logger that writes to a rotating file in fc.Dir and,
// when requested, to stderr as well. The returned cleanup closes the file.
// If the file cannot be opened the logger still works on stderr and the error is returned.
func NewWithFile(cfg Config, fc FileConfig) (zerolog.Logger, func(), error) {
	noop := func() {}

	if !fc.Enabled {
		if !fc.WriteToStderr && cfg.Output == nil {
			cfg.Output = io.Discard
		}
		return New(cfg), noop, nil
	}

	rot, err := NewRotator(fc.Dir, "subject.log", fc.MaxSizeMB, fc.MaxBackups)
	if err != nil {
		return New(cfg), noop, err
	}

	// the file always gets JSON, stderr follows cfg.Format
	fileLogger := zerolog.New(rot).Level(cfg.Level).With().Timestamp().Logger()
	if !fc.WriteToStderr {
		return fileLogger, func() { _ = rot.Close() }, nil
	}

	var stderr io.Writer = os.Stderr
	if cfg.Format != "json" {
		stderr = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: cfg.TimeFormat}
	}
	logger := zerolog.New(zerolog.MultiLevelWriter(stderr, rot)).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
	return logger, func() { _ = rot.Close() }, nil
}
