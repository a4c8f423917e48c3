package logger

import (
	"strings"

	"github.com/martidominguez/nanolog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	NoLevel      = core.NoLevel
	ErrorLevel   = core.ErrorLevel
	WarningLevel = core.WarningLevel
	InfoLevel    = core.InfoLevel
	DebugLevel   = core.DebugLevel
)

// ParseLevel converts a string to a Level
func ParseLevel(s string) Level {
	switch strings.ToUpper(s) {
	case "NONE":
		return NoLevel
	case "ERROR":
		return ErrorLevel
	case "WARN", "WARNING":
		return WarningLevel
	case "INFO":
		return InfoLevel
	case "DEBUG":
		return DebugLevel
	default:
		return InfoLevel
	}
}
