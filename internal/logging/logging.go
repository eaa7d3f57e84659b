// Package logging configures the CLI's zerolog logger. The library packages
// never log; only cmd/kcomp emits diagnostics.
package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup installs a console logger on stderr at the given level.
func Setup(levelStr string) {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(LevelOrInfo(levelStr)).
		With().
		Timestamp().
		Logger()
}

// LevelOrInfo parses a level name, defaulting to info on anything unknown.
func LevelOrInfo(levelStr string) zerolog.Level {
	levelStr = strings.ToLower(levelStr)
	if levelStr == "warning" {
		levelStr = "warn"
	}

	var level zerolog.Level
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		return zerolog.InfoLevel
	}

	return level
}
