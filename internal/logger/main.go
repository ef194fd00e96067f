// Package logger configures the global zerolog logger for the CLI.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LevelWriter implements a struct to split logs by level.
// See func WriteLevel about the separation. Every writer points at stderr in
// practice: stdout is reserved for the generated password and must stay clean.
type LevelWriter struct {
	io.Writer
	ErrorWriter io.Writer
	InfoWriter  io.Writer
}

// WriteLevel splits logging by level and links the pointer to the target output.
func (lw *LevelWriter) WriteLevel(l zerolog.Level, p []byte) (n int, err error) {
	var w io.Writer

	// disabled logging
	if l == zerolog.Disabled {
		return 0, nil
	}

	// decide where to write this log content
	if l > zerolog.InfoLevel { // warn, error, fatal and panic
		w = lw.ErrorWriter
	} else {
		w = lw.InfoWriter // trace, debug and info
	}

	// return selected logger writer.
	return w.Write(p) //nolint:wrapcheck
}

// Init the zerolog logger. The default level only surfaces warnings and
// errors; debug lowers it so per-invocation detail shows up on stderr.
func Init(debug bool) {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}

	zerolog.SetGlobalLevel(level)

	log.Logger = zerolog.New(NewConsoleWriter()).With().Timestamp().Logger()
}

// NewConsoleWriter creates a zerolog ConsoleWriter pair with all levels on stderr.
func NewConsoleWriter() io.Writer {
	var lw LevelWriter

	lw.ErrorWriter = zerolog.ConsoleWriter{
		Out:        os.Stderr,
		NoColor:    false,
		TimeFormat: zerolog.TimeFieldFormat,
	}

	lw.InfoWriter = zerolog.ConsoleWriter{
		Out:        os.Stderr,
		NoColor:    false,
		TimeFormat: zerolog.TimeFieldFormat,
	}

	return &lw
}
