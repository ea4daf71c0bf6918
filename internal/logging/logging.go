// Package logging configures the global zerolog logger for the aoc2020 CLI
// and hands out component loggers to the puzzle packages.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LevelFor maps a -v count to a zerolog level:
// 0 warn, 1 info, 2 debug, 3 and above trace.
func LevelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// Setup points the global logger at w through a console writer and sets the
// global level from verbosity. Caller information is added from debug up.
func Setup(verbosity int, w io.Writer, color bool) {
	zerolog.SetGlobalLevel(LevelFor(verbosity))

	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    !color,
	}
	ctx := zerolog.New(out).With().Timestamp()
	if verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	log.Debug().Int("verbosity", verbosity).Msg("logger initialized")
}

// Component returns the global logger tagged with the given component name.
func Component(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}
