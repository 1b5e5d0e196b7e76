// Package logger wraps zerolog with the constructors used across
// salaryscope. Diagnostics go to stderr so report output on stdout stays
// machine-readable.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger embeds zerolog.Logger so the full zerolog API is available.
type Logger struct {
	zerolog.Logger
}

// New returns a console logger writing to stderr. With debug set the level
// drops to Debug, otherwise Info.
func New(debug bool) *Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	l := zerolog.New(out).Level(level).With().Timestamp().Logger()

	return &Logger{l}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}
